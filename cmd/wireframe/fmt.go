package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jonkeda/wireframe"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt <file.wire>...",
	Short: "Rewrite documents in canonical form",
	Long: `Fmt parses each document and reprints it in canonical form: explicit
wireframe envelope, four-space indentation, and a stable modifier and
attribute order.

By default the result goes to stdout. With --write the file is rewritten
in place. Files with diagnostics are left untouched.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

var fmtWrite bool

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "rewrite files in place instead of printing")
}

func runFmt(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}

	for _, input := range args {
		source, err := readSource(cmd.InOrStdin(), input)
		if err != nil {
			return err
		}
		doc, errs, err := wireframe.Parse(source)
		if err != nil {
			return fmt.Errorf("%s: %w", sourceName(input), err)
		}
		if n := printDiagnostics(cmd.ErrOrStderr(), sourceName(input), errs); n > 0 {
			return fmt.Errorf("%s: not formatted, %d diagnostic(s)", sourceName(input), n)
		}

		formatted := wireframe.Format(doc)
		if err := writeFormatted(cmd.OutOrStdout(), input, source, formatted); err != nil {
			return err
		}
	}
	return nil
}

// writeFormatted prints to out, or rewrites path in place when --write is set.
// In-place writes are skipped when nothing changed.
func writeFormatted(out io.Writer, path, source, formatted string) error {
	if !fmtWrite || path == "-" {
		_, err := io.WriteString(out, formatted)
		return err
	}
	if formatted == source {
		return nil
	}
	if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if !quiet {
		fmt.Fprintf(out, "formatted %s\n", path)
	}
	return nil
}
