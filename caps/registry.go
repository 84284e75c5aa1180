// Package caps provides a small heterogeneous key/value store used to attach
// derived or auxiliary state to a value without extending its type.
//
// Entries are keyed either by the dynamic type of the stored value or by a
// string. Both key spaces are last-write-wins.
//
//	r := caps.New()
//	r.Set(tz)                     // keyed by reflect.TypeOf(tz)
//	r.SetNamed("validated", true) // keyed by string
//	tz, ok := caps.Get[*TimeZone](r)
//
// A Registry is not safe for concurrent use.
package caps

import (
	"reflect"
	"slices"
)

type Registry struct {
	types  []reflect.Type
	byType map[reflect.Type]any
	named  map[string]any
}

func New() *Registry {
	return &Registry{}
}

// Set stores v keyed by its dynamic type, replacing any previous value of
// that exact type. A nil v is ignored.
func (r *Registry) Set(v any) {
	if v == nil {
		return
	}
	t := reflect.TypeOf(v)
	if r.byType == nil {
		r.byType = make(map[reflect.Type]any)
	}
	if _, present := r.byType[t]; !present {
		r.types = append(r.types, t)
	}
	r.byType[t] = v
}

// SetNamed stores v under name, replacing any previous value.
func (r *Registry) SetNamed(name string, v any) {
	if r.named == nil {
		r.named = make(map[string]any)
	}
	r.named[name] = v
}

// Lookup returns the value stored under name.
func (r *Registry) Lookup(name string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.named[name]
	return v, ok
}

// LookupType returns the value stored for exactly type t.
func (r *Registry) LookupType(t reflect.Type) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.byType[t]
	return v, ok
}

// Remove deletes the entry keyed by type t. Removing an absent type is a
// no-op.
func (r *Registry) Remove(t reflect.Type) {
	if r == nil {
		return
	}
	if _, ok := r.byType[t]; !ok {
		return
	}
	delete(r.byType, t)
	r.types = slices.DeleteFunc(r.types, func(x reflect.Type) bool { return x == t })
}

// RemoveNamed deletes the entry stored under name, if any.
func (r *Registry) RemoveNamed(name string) {
	if r == nil {
		return
	}
	delete(r.named, name)
}

// Len returns the total number of entries in both key spaces.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.byType) + len(r.named)
}

// Types returns the stored type keys in first-insertion order.
func (r *Registry) Types() []reflect.Type {
	if r == nil {
		return nil
	}
	return slices.Clone(r.types)
}

// Names returns the string keys, sorted.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	res := make([]string, 0, len(r.named))
	for k := range r.named {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

// Reset drops every entry.
func (r *Registry) Reset() {
	r.types = nil
	r.byType = nil
	r.named = nil
}

// Get returns the first type-keyed value assignable to T, in the order the
// types were first stored.
func Get[T any](r *Registry) (T, bool) {
	var zero T
	if r == nil {
		return zero, false
	}
	for _, t := range r.types {
		if v, ok := r.byType[t].(T); ok {
			return v, true
		}
	}
	return zero, false
}

// GetNamed returns the value stored under name if it is assignable to T.
func GetNamed[T any](r *Registry, name string) (T, bool) {
	var zero T
	v, ok := r.Lookup(name)
	if !ok {
		return zero, false
	}
	tv, ok := v.(T)
	if !ok {
		return zero, false
	}
	return tv, true
}

// RemoveOf deletes the entry keyed by the type T.
func RemoveOf[T any](r *Registry) {
	r.Remove(reflect.TypeFor[T]())
}
