package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smarthub/hubfare/cmd/hubctl/commands"
)

func main() {
	root := &cobra.Command{
		Use:   "hubctl",
		Short: "Query hub routes, savings and recommendations from the command line",
	}
	commands.Register(root)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
