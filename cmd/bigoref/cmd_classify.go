package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/HerbHall/bigoref/pkg/complexity"
)

func runClassify(args []string, w io.Writer) error {
	fs := newFlagSet("classify", w)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("classify: at least one notation is required")
	}

	ratings := complexity.Rate(fs.Args()...)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, n := range fs.Args() {
		fmt.Fprintf(tw, "%s\t%s\n", n, ratings[i])
	}
	return tw.Flush()
}
