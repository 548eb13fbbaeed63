// Command sandhi joins Kannada words using vibhakti, samasa and sandhi rules.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/sandhi/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
