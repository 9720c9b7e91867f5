package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jonkeda/wireframe"
)

var (
	renderTheme  string
	renderOutput string
	renderWidth  float64
	renderHeight float64
	renderScale  float64
	renderSeed   int64
	renderStrict bool
)

var renderCmd = &cobra.Command{
	Use:   "render <file.wire>",
	Short: "Render a wireframe document to SVG",
	Long: `Render a .wire document to an SVG file.

The output path defaults to the input name with a .svg extension. Use
"-" as the input to read from stdin, or as --output to write to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderTheme, "theme", "t", "", "Theme override: clean, sketch, blueprint, realistic")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output path (default input name with .svg)")
	renderCmd.Flags().Float64Var(&renderWidth, "width", 0, "Canvas width in pixels")
	renderCmd.Flags().Float64Var(&renderHeight, "height", 0, "Minimum canvas height in pixels")
	renderCmd.Flags().Float64Var(&renderScale, "scale", 0, "Output scale factor")
	renderCmd.Flags().Int64Var(&renderSeed, "seed", -1, "Sketch effect seed for reproducible output (-1 for random)")
	renderCmd.Flags().BoolVar(&renderStrict, "strict", false, "Exit non-zero when the document has any diagnostic")
}

func runRender(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	opts := renderOptions(cmd, cfg)

	input := args[0]
	source, err := readSource(cmd.InOrStdin(), input)
	if err != nil {
		return err
	}

	res, err := wireframe.RenderToSVG(source, opts)
	if err != nil {
		return err
	}
	printDiagnostics(cmd.ErrOrStderr(), sourceName(input), res.Errors)

	output := renderOutput
	if output == "" {
		output = outputPath(cfg, input)
	}
	if output == "-" {
		fmt.Fprint(cmd.OutOrStdout(), res.SVG)
	} else {
		if err := os.WriteFile(output, []byte(res.SVG), 0o644); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		if !quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%.0fx%.0f)\n", output, res.Width, res.Height)
		}
	}

	if (renderStrict || cfg.Strict) && len(res.Errors) > 0 {
		return fmt.Errorf("%d diagnostic(s)", len(res.Errors))
	}
	return nil
}

// renderOptions merges config file values with flags; an explicitly set
// flag wins.
func renderOptions(cmd *cobra.Command, cfg *Config) wireframe.Options {
	opts := wireframe.Options{
		Theme:  cfg.Theme,
		Width:  cfg.Width,
		Height: cfg.Height,
		Scale:  cfg.Scale,
		Seed:   cfg.Seed,
	}
	if renderTheme != "" {
		opts.Theme = renderTheme
	}
	if cmd.Flags().Changed("width") {
		opts.Width = renderWidth
	}
	if cmd.Flags().Changed("height") {
		opts.Height = renderHeight
	}
	if cmd.Flags().Changed("scale") {
		opts.Scale = renderScale
	}
	if cmd.Flags().Changed("seed") && renderSeed >= 0 {
		seed := renderSeed
		opts.Seed = &seed
	}
	return opts
}

// readSource reads the document from a file or, for "-", from stdin.
func readSource(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), nil
}

// sourceName is the name diagnostics are prefixed with.
func sourceName(input string) string {
	if input == "-" {
		return "<stdin>"
	}
	return input
}

// outputPath derives the default output path from the input name and the
// configured output directory.
func outputPath(cfg *Config, input string) string {
	if input == "-" {
		return "-"
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ".svg"
	if cfg.Output != "" {
		return filepath.Join(cfg.Output, base)
	}
	return filepath.Join(filepath.Dir(input), base)
}
