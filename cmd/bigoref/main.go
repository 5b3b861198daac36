// Command bigoref serves and queries the Big-O reference catalog.
//
//	@title			bigoref API
//	@version		1.0
//	@description	Big-O complexity reference and interview question catalog.
//	@BasePath		/api/v1
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

const usage = `Usage: bigoref <command> [flags]

Commands:
  serve       run the HTTP API (default)
  classify    rate one or more Big-O notations
  questions   list interview questions
  algorithms  list sorting, searching or data-structure costs
  version     print build information
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "bigoref: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, w io.Writer) error {
	cmd := "serve"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "serve":
		return runServe(args, w)
	case "classify":
		return runClassify(args, w)
	case "questions":
		return runQuestions(args, w)
	case "algorithms":
		return runAlgorithms(args, w)
	case "version":
		return runVersion(args, w)
	case "help":
		fmt.Fprint(w, usage)
		return nil
	default:
		fmt.Fprint(w, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func newFlagSet(name string, w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	return fs
}
