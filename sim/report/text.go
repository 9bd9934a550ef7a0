// Package report renders a finished tandem run for humans and for monitoring.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/tandem-sim/tandem-sim/sim"
)

// Printer renders results as plain or styled text. Styling follows the writer:
// a terminal gets colors, a file or buffer gets plain text.
type Printer struct {
	w        io.Writer
	title    lipgloss.Style
	heading  lipgloss.Style
	subtle   lipgloss.Style
	lossWarn lipgloss.Style
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:        w,
		title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		heading:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		subtle:   r.NewStyle().Foreground(lipgloss.Color("241")),
		lossWarn: r.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// Print writes the global totals followed by one block per station.
func (p *Printer) Print(res *sim.Result) error {
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(p.w, format, args...)
		}
	}

	printf("%s\n", p.title.Render("=== Tandem Simulation Results ==="))
	printf("Global time        : %.4f\n", res.GlobalTime)
	printf("Events processed   : %d\n", res.EventsProcessed)
	printf("Random draws used  : %d\n", res.DrawsUsed)
	printf("Stop reason        : %s\n", p.subtle.Render(string(res.StopReason)))

	for _, st := range res.Stations {
		printf("\n%s\n", p.heading.Render(fmt.Sprintf("Station %s (%s):", st.Name, st.Kendall)))
		losses := fmt.Sprintf("%d", st.Losses)
		if st.Losses > 0 {
			losses = p.lossWarn.Render(losses)
		}
		printf("Losses             : %s\n", losses)
		printf("Mean occupancy     : %.4f\n", st.MeanOccupancy)
		for lvl, t := range st.Times {
			printf("  State %d: time = %.4f, prob = %.6f%%\n", lvl, t, st.Probabilities[lvl])
		}
	}
	return err
}

// WriteJSON writes the result as indented JSON.
func WriteJSON(w io.Writer, res *sim.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}
