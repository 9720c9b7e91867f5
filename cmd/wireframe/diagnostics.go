package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/jonkeda/wireframe"
)

var (
	diagPos    = color.New(color.Bold)
	diagLex    = color.New(color.FgHiRed)
	diagSyntax = color.New(color.FgRed)
	diagSem    = color.New(color.FgYellow)
	diagRender = color.New(color.FgMagenta)
	diagHint   = color.New(color.FgHiBlack)
)

// kindColor returns the label color for a diagnostic kind.
func kindColor(kind wireframe.ErrorKind) *color.Color {
	switch kind {
	case wireframe.LexError:
		return diagLex
	case wireframe.SyntaxError:
		return diagSyntax
	case wireframe.SemanticError:
		return diagSem
	default:
		return diagRender
	}
}

// printDiagnostics writes one line per diagnostic, prefixed with the source
// name. Returns the number of diagnostics printed.
func printDiagnostics(w io.Writer, name string, errs []*wireframe.Error) int {
	if quiet {
		return len(errs)
	}
	for _, e := range errs {
		fmt.Fprintf(w, "%s %s %s",
			diagPos.Sprintf("%s:%s:", name, e.Pos),
			kindColor(e.Kind).Sprintf("%s error:", e.Kind),
			e.Message)
		if e.Hint != "" {
			fmt.Fprintf(w, " %s", diagHint.Sprintf("(%s)", e.Hint))
		}
		fmt.Fprintln(w)
	}
	return len(errs)
}
