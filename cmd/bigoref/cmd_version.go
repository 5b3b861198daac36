package main

import (
	"fmt"
	"io"

	"github.com/HerbHall/bigoref/internal/version"
)

func runVersion(args []string, w io.Writer) error {
	fs := newFlagSet("version", w)
	if err := fs.Parse(args); err != nil {
		return err
	}
	fmt.Fprintln(w, version.Info())
	return nil
}
