package snap

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/ical-format/go-ical/debug"
	"github.com/signadot/ical-format/go-ical/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// ApplyPatch applies an RFC 6902 JSON Patch to the JSON snapshot of n and
// returns the restored result. n is not modified.
//
// Paths address the snapshot shape, for example /children/0/name.
func ApplyPatch(n *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch: %w", err)
	}
	d, err := json.Marshal(Capture(n))
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("error applying patch to %s: %w", n, err)
	}
	if debug.Snap() {
		debug.Logf("snap: patched %s\n", out)
	}
	return Unmarshal(out, WithFormat(JSONFormat))
}

// MergePatch applies an RFC 7386 JSON merge patch to the JSON snapshot of n
// and returns the restored result. Arrays, including children, are
// replaced whole.
func MergePatch(n *ir.Node, patch []byte) (*ir.Node, error) {
	d, err := json.Marshal(Capture(n))
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, fmt.Errorf("error applying merge patch to %s: %w", n, err)
	}
	return Unmarshal(out, WithFormat(JSONFormat))
}

// MergeDiff returns the JSON merge patch turning the snapshot of from into
// the snapshot of to.
func MergeDiff(from, to *ir.Node) ([]byte, error) {
	fd, err := json.Marshal(Capture(from))
	if err != nil {
		return nil, err
	}
	td, err := json.Marshal(Capture(to))
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(fd, td)
}
