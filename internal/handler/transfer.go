// transfer.go implements POST /import and GET /export.
package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/pkordes/staylog/internal/auth"
	"github.com/pkordes/staylog/internal/domain"
	"github.com/pkordes/staylog/internal/export"
	"github.com/pkordes/staylog/internal/handler/gen"
	"github.com/pkordes/staylog/internal/service"
)

// ImportEntries handles POST /import. The body must be a JSON array; items
// that fail validation are skipped and reported in the result.
func (s *Server) ImportEntries(ctx context.Context, req gen.ImportEntriesRequestObject) (gen.ImportEntriesResponseObject, error) {
	if req.Body == nil || *req.Body == nil {
		return gen.ImportEntries400JSONResponse(malformedBody("expected a JSON array of entries")), nil
	}

	res, err := s.entries.ImportItems(ctx, auth.UserID(ctx), *req.Body)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthenticated):
			return gen.ImportEntries401JSONResponse(unauthenticatedBody()), nil
		case errors.Is(err, domain.ErrMalformed):
			return gen.ImportEntries400JSONResponse(malformedBody(unwrapMessage(err, domain.ErrMalformed))), nil
		}
		return nil, err
	}

	return gen.ImportEntries200JSONResponse(importResultToResponse(res)), nil
}

// ExportEntries handles GET /export?format=json|csv|xlsx|ics.
// The body is an attachment named after today's date.
func (s *Server) ExportEntries(ctx context.Context, req gen.ExportEntriesRequestObject) (gen.ExportEntriesResponseObject, error) {
	var raw string
	if req.Params.Format != nil {
		raw = string(*req.Params.Format)
	}
	format, err := export.ParseFormat(raw)
	if err != nil {
		return nil, err
	}

	entries, err := s.entries.Export(ctx, auth.UserID(ctx))
	if err != nil {
		return nil, err
	}

	headers := gen.ExportEntries200ResponseHeaders{
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", format.FileName(s.entries.Today())),
	}
	if format == export.JSON {
		return buildJSONResponse(entries, headers), nil
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, entries); err != nil {
		return nil, err
	}
	switch format {
	case export.CSV:
		return gen.ExportEntries200TextcsvResponse{Body: &buf, Headers: headers, ContentLength: int64(buf.Len())}, nil
	case export.XLSX:
		return gen.ExportEntries200ApplicationvndOpenxmlformatsOfficedocumentSpreadsheetmlSheetResponse{
			Body: &buf, Headers: headers, ContentLength: int64(buf.Len()),
		}, nil
	default:
		return gen.ExportEntries200TextcalendarResponse{Body: &buf, Headers: headers, ContentLength: int64(buf.Len())}, nil
	}
}

// buildJSONResponse converts entries to the typed JSON export rows.
// Fields that are empty become nil pointers (omitempty in JSON).
func buildJSONResponse(entries []domain.Entry, headers gen.ExportEntries200ResponseHeaders) gen.ExportEntries200JSONResponse {
	rows := domain.ExportRows(entries)
	out := make([]gen.ExportRow, 0, len(rows))
	for _, r := range rows {
		row := gen.ExportRow{
			Id:                r.ID,
			Type:              r.Type,
			Date:              r.Date,
			EndDate:           optional(r.EndDate),
			Country:           r.Country,
			City:              r.City,
			AccommodationType: optional(r.AccommodationType),
			FlightNumber:      optional(r.FlightNumber),
			Departure:         optional(r.Departure),
			Arrival:           optional(r.Arrival),
			Comments:          optional(r.Comments),
		}
		if r.Days > 0 {
			days := r.Days
			row.Days = &days
		}
		out = append(out, row)
	}
	return gen.ExportEntries200JSONResponse{Body: out, Headers: headers}
}

func importResultToResponse(res service.ImportResult) gen.ImportResult {
	out := gen.ImportResult{
		Imported: res.Imported,
		Skipped:  res.Skipped,
		Problems: make([]gen.ImportProblem, len(res.Problems)),
	}
	for i, p := range res.Problems {
		out.Problems[i] = gen.ImportProblem{Index: p.Index, Reason: p.Reason}
	}
	return out
}
