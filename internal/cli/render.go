package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/pkordes/staylog/internal/domain"
	"github.com/pkordes/staylog/internal/service"
	"github.com/pkordes/staylog/internal/timeline"
)

const weekHeader = "Mo Tu We Th Fr Sa Su"

// renderSummary prints the per-country ranking of s. Countries at or over the
// threshold are printed in red with a warning line each.
func renderSummary(w io.Writer, s timeline.Summary) {
	bold := color.New(color.Bold)
	warn := color.New(color.FgRed, color.Bold)
	faint := color.New(color.Faint)

	_, _ = bold.Fprintf(w, "%d", s.Year)
	_, _ = faint.Fprintf(w, " - %d days in %d stays, %d flights, %.1f%% of the year\n",
		s.TotalDays, s.StayCount, s.FlightCount, s.YearShare)

	if len(s.Countries) == 0 {
		_, _ = faint.Fprintln(w, " none")
		return
	}

	over := make(map[string]bool, len(s.OverThreshold))
	for _, c := range s.OverThreshold {
		over[c] = true
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("COUNTRY"), bold.Sprint("DAYS"))
	for _, c := range s.Countries {
		if over[c.Country] {
			tbl.AddRow(warn.Sprint(c.Country), warn.Sprint(c.Days))
			continue
		}
		tbl.AddRow(c.Country, c.Days)
	}
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(w, tbl)

	for _, c := range s.OverThreshold {
		_, _ = warn.Fprintf(w, "! %s reached %d of %d days\n", c, s.PerCountry[c], s.Threshold)
	}
}

// renderMonth prints a Monday-first grid of m. Each covered day is marked
// with the number of its location in the legend printed below the grid.
func renderMonth(w io.Writer, m timeline.MonthView) {
	bold := color.New(color.Bold)
	covered := color.New(color.FgHiWhite, color.Bold)
	empty := color.New(color.Faint)

	title := fmt.Sprintf("%s %d", m.Month(), m.Year)
	pad := (len(weekHeader)*2 - len(title)) / 2
	_, _ = bold.Fprintf(w, "%s%s\n", strings.Repeat(" ", max(pad, 0)), title)
	_, _ = fmt.Fprintln(w, strings.ReplaceAll(weekHeader, " ", "    "))

	legend := make(map[domain.Location]int, len(m.Legend))
	for i, l := range m.Legend {
		legend[l] = i + 1
	}

	col := m.Leading
	_, _ = fmt.Fprint(w, strings.Repeat("      ", col))
	for _, d := range m.Days {
		if d.Location != nil {
			_, _ = covered.Fprintf(w, "%2d", d.Day)
			_, _ = fmt.Fprintf(w, "[%d] ", legend[*d.Location])
		} else {
			_, _ = empty.Fprintf(w, "%2d", d.Day)
			_, _ = fmt.Fprint(w, "    ")
		}
		col++
		if col == 7 {
			col = 0
			_, _ = fmt.Fprintln(w)
		}
	}
	if col != 0 {
		_, _ = fmt.Fprintln(w)
	}

	for i, l := range m.Legend {
		_, _ = fmt.Fprintf(w, "[%d] %s\n", i+1, l)
	}
	_, _ = fmt.Fprintln(w)
}

// renderRange reports the outcome of a calendar edit.
func renderRange(w io.Writer, r service.RangeResult) {
	if r.Written != nil {
		_, _ = fmt.Fprintf(w, "%s  %s to %s (%d days)\n", r.Written.Location,
			r.Written.StartDate.Format(domain.DateLayout), r.Written.EndDate.Format(domain.DateLayout), r.Written.Days())
	}
	_, _ = color.New(color.Faint).Fprintf(w, "%d stays removed, %d trimmed\n", r.Deleted, r.Updated)
}

// renderImport prints the counts of an import and one line per skipped item.
func renderImport(w io.Writer, r service.ImportResult) {
	_, _ = fmt.Fprintf(w, "imported %d, skipped %d\n", r.Imported, r.Skipped)
	if len(r.Problems) == 0 {
		return
	}
	warn := color.New(color.FgYellow)
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, p := range r.Problems {
		tbl.AddRow(warn.Sprintf("#%d", p.Index), p.Reason)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(w, tbl)
}
