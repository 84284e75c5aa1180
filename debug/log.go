package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

var out io.Writer = os.Stderr

// SetOutput redirects debug logging, returning the previous writer.
func SetOutput(w io.Writer) io.Writer {
	res := out
	out = w
	return res
}

// Logf writes a formatted debug message. Map and slice arguments are
// rendered as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}
