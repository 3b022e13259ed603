// Package export encodes a user's entries as a downloadable file.
// Every format carries the same flat columns as domain.ExportRow, so a JSON
// export can be imported back unchanged.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"

	"github.com/pkordes/staylog/internal/domain"
)

// Format names an export encoding.
type Format string

const (
	JSON Format = "json"
	CSV  Format = "csv"
	XLSX Format = "xlsx"
	ICS  Format = "ics"
)

// ParseFormat validates a wire value. The empty string is JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return JSON, nil
	case JSON, CSV, XLSX, ICS:
		return f, nil
	}
	return "", fmt.Errorf("%w: unknown export format %q", domain.ErrValidation, s)
}

// ContentType is the media type served for f.
func (f Format) ContentType() string {
	switch f {
	case CSV:
		return "text/csv"
	case XLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ICS:
		return "text/calendar"
	}
	return "application/json"
}

// FileName is the attachment name for an export taken on day.
func (f Format) FileName(day time.Time) string {
	return "staylog-export-" + day.Format(domain.DateLayout) + "." + string(f)
}

// Columns is the header row of the tabular formats.
var Columns = []string{
	"id", "type", "date", "end_date", "country", "city", "accommodation_type",
	"days", "flight_number", "departure", "arrival", "comments",
}

func record(r domain.ExportRow) []string {
	days := ""
	if r.Days > 0 {
		days = strconv.Itoa(r.Days)
	}
	return []string{
		r.ID, r.Type, r.Date, r.EndDate, r.Country, r.City, r.AccommodationType,
		days, r.FlightNumber, r.Departure, r.Arrival, r.Comments,
	}
}

// Write encodes entries to w in format f.
func Write(w io.Writer, f Format, entries []domain.Entry) error {
	switch f {
	case CSV:
		return WriteCSV(w, entries)
	case XLSX:
		return WriteXLSX(w, entries)
	case ICS:
		return WriteICS(w, entries)
	}
	return WriteJSON(w, entries)
}

// WriteJSON writes the entries as an indented JSON array in the import shape.
func WriteJSON(w io.Writer, entries []domain.Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(domain.ExportRows(entries)); err != nil {
		return fmt.Errorf("export.WriteJSON: %w", err)
	}
	return nil
}

// WriteCSV writes a header row followed by one record per entry.
func WriteCSV(w io.Writer, entries []domain.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("export.WriteCSV: %w", err)
	}
	for _, r := range domain.ExportRows(entries) {
		if err := cw.Write(record(r)); err != nil {
			return fmt.Errorf("export.WriteCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export.WriteCSV: %w", err)
	}
	return nil
}

// SheetName is the worksheet holding the entries in an XLSX export.
const SheetName = "Entries"

// WriteXLSX writes a single-sheet workbook with a bold header row. Day counts
// are stored as numbers so spreadsheet sums work.
func WriteXLSX(w io.Writer, entries []domain.Entry) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("export.WriteXLSX: %w", err)
	}
	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("export.WriteXLSX: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("export.WriteXLSX: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(Columns))
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", bold); err != nil {
		return fmt.Errorf("export.WriteXLSX: %w", err)
	}

	for i, r := range domain.ExportRows(entries) {
		row := make([]any, 0, len(Columns))
		for j, v := range record(r) {
			if Columns[j] == "days" && r.Days > 0 {
				row = append(row, r.Days)
				continue
			}
			row = append(row, v)
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("export.WriteXLSX: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export.WriteXLSX: %w", err)
	}
	return nil
}

// WriteICS writes one all-day VEVENT per entry. A stay's DTEND is the day
// after its last day, as iCalendar end dates are exclusive.
func WriteICS(w io.Writer, entries []domain.Entry) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//staylog//EN")
	cal.SetXWRCalName("staylog")

	for _, e := range entries {
		b := domain.BaseOf(e)
		ev := cal.AddEvent(b.ID.String() + "@staylog")
		if !b.UpdatedAt.IsZero() {
			ev.SetDtStampTime(b.UpdatedAt)
		} else {
			ev.SetDtStampTime(time.Now().UTC())
		}
		ev.SetLocation(b.Location.String())
		if b.Comments != "" {
			ev.SetDescription(b.Comments)
		}

		switch v := e.(type) {
		case domain.Stay:
			ev.SetSummary(v.Location.String())
			ev.SetAllDayStartAt(v.StartDate)
			ev.SetAllDayEndAt(v.EndDate.AddDate(0, 0, 1))
		case domain.Flight:
			summary := "Flight to " + v.Location.String()
			if v.FlightNumber != "" {
				summary = "Flight " + v.FlightNumber + " to " + v.Location.String()
			}
			ev.SetSummary(summary)
			ev.SetAllDayStartAt(v.Date)
			ev.SetAllDayEndAt(v.Date.AddDate(0, 0, 1))
		}
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("export.WriteICS: %w", err)
	}
	return nil
}
