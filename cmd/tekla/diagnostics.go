package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/reusee/tekla/tekla"
	"github.com/reusee/tekla/teklaconfigs"
)

var errorLabelStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("9")).
	Bold(true)

// Report writes err annotated with its location in src.
type Report func(src *tekla.Source, err error)

func (Module) Report(
	diag Diagnostics,
	color teklaconfigs.Color,
) Report {
	return func(src *tekla.Source, err error) {
		label := "error:"
		if color {
			label = errorLabelStyle.Render(label)
		}
		msg := err.Error()
		if src != nil {
			msg = src.Annotate(err)
		}
		if !strings.HasSuffix(msg, "\n") {
			msg += "\n"
		}
		fmt.Fprintf(diag, "%s %s", label, msg)
	}
}
