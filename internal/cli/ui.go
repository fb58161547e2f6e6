package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/mffmt/pkg/errors"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
)

// =============================================================================
// Printer
// =============================================================================

// printer writes per-file result lines. Styles are bound to the output
// writer, so colors are dropped when it is not a terminal and the line text
// is always exactly "Formatted <path>" or "Error processing <path>: <msg>".
type printer struct {
	w io.Writer

	success lipgloss.Style
	failure lipgloss.Style
	warning lipgloss.Style
	value   lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:       w,
		success: r.NewStyle().Foreground(colorGreen),
		failure: r.NewStyle().Foreground(colorRed),
		warning: r.NewStyle().Foreground(colorYellow),
		value:   r.NewStyle().Foreground(colorWhite),
	}
}

// formatted prints a success line for a rewritten file.
func (p *printer) formatted(path string) {
	fmt.Fprintf(p.w, "%s %s\n", p.success.Render("Formatted"), p.value.Render(path))
}

// failed prints an error line for a file that was left untouched.
func (p *printer) failed(path string, err error) {
	fmt.Fprintf(p.w, "%s %s: %s\n", p.failure.Render("Error processing"), p.value.Render(path), errors.UserMessage(err))
}

// wouldReformat prints a check-mode line for a file that is not formatted.
func (p *printer) wouldReformat(path string) {
	fmt.Fprintf(p.w, "%s %s\n", p.warning.Render("Would reformat"), p.value.Render(path))
}

// contents writes formatted file bytes unstyled.
func (p *printer) contents(data []byte) {
	_, _ = p.w.Write(data)
}
