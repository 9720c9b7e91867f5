package main

import (
	"github.com/spf13/cobra"
)

var (
	quiet      bool
	noColor    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "wireframe",
	Short: "Compile wireframe markup into SVG mockups",
	Long: `Wireframe compiles indentation-structured .wire markup into themed SVG mockups.

A document declares layouts, sections, and controls by indentation; the
compiler assigns every element a box and paints it with one of the built-in
themes (clean, sketch, blueprint, realistic).`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress diagnostics (errors only affect the exit code)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored diagnostics")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default wireframe.yaml in the working directory)")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
