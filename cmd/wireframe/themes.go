package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonkeda/wireframe"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the built-in themes",
	RunE:  runThemes,
}

func runThemes(cmd *cobra.Command, args []string) error {
	for _, name := range wireframe.Themes() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
