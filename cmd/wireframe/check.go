package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jonkeda/wireframe"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.wire>...",
	Short: "Parse documents and report diagnostics without rendering",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}

	total := 0
	for _, input := range args {
		source, err := readSource(cmd.InOrStdin(), input)
		if err != nil {
			return err
		}
		_, errs, err := wireframe.Parse(source)
		if err != nil {
			return fmt.Errorf("%s: %w", sourceName(input), err)
		}
		total += printDiagnostics(cmd.ErrOrStderr(), sourceName(input), errs)
	}

	if total > 0 {
		return fmt.Errorf("%d diagnostic(s)", total)
	}
	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
	}
	return nil
}
