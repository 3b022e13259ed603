package domain

// ExportRow is a single entry flattened into the bulk import/export shape.
// The JSON field names are the import contract: date, type, country and city
// are required on import, everything else is optional.
type ExportRow struct {
	ID                string `json:"id"`
	Type              string `json:"type"`
	Date              string `json:"date"`               // "2006-01-02"
	EndDate           string `json:"end_date,omitempty"` // stays only
	Country           string `json:"country"`
	City              string `json:"city"`
	AccommodationType string `json:"accommodation_type,omitempty"`
	Days              int    `json:"days,omitempty"`
	FlightNumber      string `json:"flight_number,omitempty"`
	Departure         string `json:"departure,omitempty"`
	Arrival           string `json:"arrival,omitempty"`
	Comments          string `json:"comments,omitempty"`
}

// NewExportRow flattens e. Variant-specific fields of the other variant stay empty.
func NewExportRow(e Entry) ExportRow {
	b := BaseOf(e)
	row := ExportRow{
		ID:       b.ID.String(),
		Type:     string(e.Kind()),
		Date:     e.Start().Format(DateLayout),
		Country:  b.Country,
		City:     b.City,
		Comments: b.Comments,
	}
	switch v := e.(type) {
	case Stay:
		row.EndDate = v.EndDate.Format(DateLayout)
		row.AccommodationType = string(v.Accommodation)
		row.Days = v.Days()
	case Flight:
		row.FlightNumber = v.FlightNumber
		row.Departure = v.Departure
		row.Arrival = v.Arrival
	}
	return row
}

// ExportRows flattens every entry, preserving order. Never returns nil.
func ExportRows(entries []Entry) []ExportRow {
	rows := make([]ExportRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, NewExportRow(e))
	}
	return rows
}
