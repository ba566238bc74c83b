// Command scrubjay-manpage writes the scrubjay man pages. With no argument
// the root page goes to stdout; with a directory one page per command is
// written there.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/scrubjay/cmd/scrubjay"
	"github.com/arthur-debert/scrubjay/internal/version"
)

func main() {
	rootCmd := scrubjay.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "SCRUBJAY",
		Section: "1",
		Source:  "scrubjay " + version.Version,
		Manual:  "scrubjay manual",
	}

	var err error
	if len(os.Args) > 1 {
		dir := os.Args[1]
		if err = os.MkdirAll(dir, 0755); err == nil {
			err = doc.GenManTree(rootCmd, header, dir)
		}
	} else {
		err = doc.GenMan(rootCmd, header, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
