package handler

import (
	"context"
	"errors"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/staylog/internal/auth"
	"github.com/pkordes/staylog/internal/domain"
	"github.com/pkordes/staylog/internal/handler/gen"
	"github.com/pkordes/staylog/internal/service"
	"github.com/pkordes/staylog/internal/timeline"
)

// AssignRange handles PUT /calendar/range. Every day of the range ends up
// covered by one stay at the given location; stays that covered any of those
// days are trimmed, split or removed.
func (s *Server) AssignRange(ctx context.Context, req gen.AssignRangeRequestObject) (gen.AssignRangeResponseObject, error) {
	if req.Body == nil {
		return gen.AssignRange422JSONResponse(requestBody("request body is required")), nil
	}
	b := req.Body
	r := domain.DateRange{Start: b.Start.Time, End: b.End.Time}
	loc := domain.Location{City: b.City, Country: b.Country}
	var acc domain.Accommodation
	if b.AccommodationType != nil {
		acc = domain.Accommodation(*b.AccommodationType)
	}

	res, err := s.entries.SetLocation(ctx, auth.UserID(ctx), r, loc, acc)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthenticated):
			return gen.AssignRange401JSONResponse(unauthenticatedBody()), nil
		case errors.Is(err, domain.ErrValidation):
			return gen.AssignRange422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.AssignRange200JSONResponse(rangeResultToResponse(res)), nil
}

// DeleteRange handles DELETE /calendar/range?start=&end=.
func (s *Server) DeleteRange(ctx context.Context, req gen.DeleteRangeRequestObject) (gen.DeleteRangeResponseObject, error) {
	r := domain.DateRange{Start: req.Params.Start.Time, End: req.Params.End.Time}

	res, err := s.entries.DeleteRange(ctx, auth.UserID(ctx), r)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthenticated):
			return gen.DeleteRange401JSONResponse(unauthenticatedBody()), nil
		case errors.Is(err, domain.ErrValidation):
			return gen.DeleteRange422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.DeleteRange200JSONResponse(rangeResultToResponse(res)), nil
}

// GetCalendarYear handles GET /calendar/{year}.
func (s *Server) GetCalendarYear(ctx context.Context, req gen.GetCalendarYearRequestObject) (gen.GetCalendarYearResponseObject, error) {
	if !validYear(req.Year) {
		return gen.GetCalendarYear422JSONResponse(requestBody("year must be between 1 and 9999")), nil
	}

	months, err := s.entries.CalendarYear(ctx, auth.UserID(ctx), req.Year)
	if err != nil {
		return nil, err
	}

	out := make(gen.GetCalendarYear200JSONResponse, len(months))
	for i, m := range months {
		out[i] = monthToResponse(m)
	}
	return out, nil
}

// GetCalendarMonth handles GET /calendar/{year}/{month}. month is 1-based on
// the wire.
func (s *Server) GetCalendarMonth(ctx context.Context, req gen.GetCalendarMonthRequestObject) (gen.GetCalendarMonthResponseObject, error) {
	if !validYear(req.Year) {
		return gen.GetCalendarMonth422JSONResponse(requestBody("year must be between 1 and 9999")), nil
	}
	if req.Month < 1 || req.Month > 12 {
		return gen.GetCalendarMonth422JSONResponse(requestBody("month must be between 1 and 12")), nil
	}

	view, err := s.entries.Calendar(ctx, auth.UserID(ctx), req.Year, req.Month-1)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.GetCalendarMonth422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.GetCalendarMonth200JSONResponse(monthToResponse(view)), nil
}

func validYear(y int) bool { return y >= 1 && y <= 9999 }

// --- mapping helpers --------------------------------------------------------

func rangeResultToResponse(res service.RangeResult) gen.RangeResult {
	out := gen.RangeResult{Deleted: res.Deleted, Updated: res.Updated}
	if res.Written != nil {
		e := entryToResponse(*res.Written)
		out.Written = &e
	}
	return out
}

func monthToResponse(m timeline.MonthView) gen.CalendarMonth {
	out := gen.CalendarMonth{
		Year:    m.Year,
		Month:   m.MonthIndex + 1,
		Leading: m.Leading,
		Days:    make([]gen.CalendarDay, len(m.Days)),
		Legend:  make([]gen.Location, len(m.Legend)),
	}
	for i, d := range m.Days {
		cell := gen.CalendarDay{Day: d.Day, Date: openapi_types.Date{Time: d.Date}}
		if d.Location != nil {
			loc := locationToResponse(*d.Location)
			cell.Location = &loc
		}
		if d.StayID != uuid.Nil {
			id := d.StayID
			cell.EntryId = &id
		}
		out.Days[i] = cell
	}
	for i, l := range m.Legend {
		out.Legend[i] = locationToResponse(l)
	}
	return out
}

func locationToResponse(l domain.Location) gen.Location {
	return gen.Location{City: l.City, Country: l.Country}
}
