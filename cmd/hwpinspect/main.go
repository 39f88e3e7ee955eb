// Command hwpinspect is a thin CLI inspector over the hwp5 engine
// (spec.md §6.4): it reads a document and prints its CFB/DocInfo/Section
// structure, or manages hwpinspect's own configuration.
package main

import (
	"fmt"
	"os"

	"github.com/hwp5go/hwp5/internal/cli"
)

var buildVersion = "dev"

func main() {
	cli.SetVersion(buildVersion)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
