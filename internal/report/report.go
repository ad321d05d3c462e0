// Package report renders human-readable diagnostics for the operator.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-bot-launcher/internal/config"
)

var kindLabels = map[config.ViolationKind]string{
	config.ViolationMissing: "missing",
	config.ViolationFormat:  "format",
	config.ViolationRange:   "range",
	config.ViolationEnum:    "value",
}

// Reporter writes styled summaries to w. Styles are bound to w's renderer,
// so output to a file or pipe carries no escape codes.
type Reporter struct {
	w io.Writer

	titleStyle lipgloss.Style
	labelStyle lipgloss.Style
	keyStyle   lipgloss.Style
	helpStyle  lipgloss.Style
	boxStyle   lipgloss.Style
}

func New(w io.Writer) *Reporter {
	r := lipgloss.NewRenderer(w)
	return &Reporter{
		w:          w,
		titleStyle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		labelStyle: r.NewStyle().Width(8).Faint(true),
		keyStyle:   r.NewStyle().Bold(true),
		helpStyle:  r.NewStyle().Faint(true),
		boxStyle:   r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// Violations lists every configuration problem found for mode, followed by
// the missing keys on one line.
func (r *Reporter) Violations(mode string, verr *config.ValidationError) {
	var b strings.Builder

	title := fmt.Sprintf("%s: configuration invalid (%d %s)", mode, len(verr.Violations), plural(len(verr.Violations), "problem"))
	b.WriteString(r.titleStyle.Render(title))
	b.WriteString("\n")

	for _, v := range verr.Violations {
		b.WriteString(r.labelStyle.Render(kindLabels[v.Kind]))
		b.WriteString(r.keyStyle.Render(v.Key))
		b.WriteString("  ")
		b.WriteString(v.Reason)
		b.WriteString("\n")
	}

	if missing := verr.Missing(); len(missing) > 0 {
		b.WriteString(r.helpStyle.Render("set in the environment or .env: " + strings.Join(missing, ", ")))
		b.WriteString("\n")
	}

	fmt.Fprint(r.w, r.boxStyle.Render(strings.TrimRight(b.String(), "\n")), "\n")
}

// Fatal reports a failure that ends the run before the bot is running.
// Validation errors are rendered as a violation list.
func (r *Reporter) Fatal(mode, stage string, err error) {
	var verr *config.ValidationError
	if errors.As(err, &verr) {
		r.Violations(mode, verr)
		return
	}

	title := r.titleStyle.Render(fmt.Sprintf("%s: %s failed", mode, stage))
	fmt.Fprint(r.w, r.boxStyle.Render(title+"\n"+err.Error()), "\n")
}

// OK reports a configuration that passed validation.
func (r *Reporter) OK(mode string, keys int) {
	line := fmt.Sprintf("%s: configuration valid (%d %s checked)", mode, keys, plural(keys, "key"))
	fmt.Fprintln(r.w, r.keyStyle.Render(line))
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
