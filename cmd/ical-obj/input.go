package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/ical-format/go-ical/ir"
	"github.com/signadot/ical-format/go-ical/snap"
)

// loadFile reads the snapshot in file, "-" meaning in.
func loadFile(cfg *MainConfig, in io.Reader, file string) (*ir.Node, error) {
	var r io.Reader
	if file == "-" {
		r = in
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	n, err := loadReader(cfg, r)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	theLog.Debug("loaded", "file", file, "root", n.String(), "children", n.Children().Len())
	return n, nil
}

func loadReader(cfg *MainConfig, r io.Reader) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return snap.Unmarshal(d, cfg.snapOpts()...)
}

func files(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func writeSnapshot(cfg *MainConfig, w io.Writer, n *ir.Node) error {
	d, err := snap.Marshal(n, cfg.snapOpts()...)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", n, err)
	}
	if _, err := w.Write(d); err != nil {
		return err
	}
	if len(d) > 0 && d[len(d)-1] != '\n' {
		_, err = w.Write([]byte{'\n'})
	}
	return err
}
