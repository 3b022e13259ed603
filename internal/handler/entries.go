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
)

// ListEntries handles GET /entries.
// Supports ?type=, ?year=, ?page= and ?limit= (defaults: page=1, limit=50, max=500).
func (s *Server) ListEntries(ctx context.Context, req gen.ListEntriesRequestObject) (gen.ListEntriesResponseObject, error) {
	var f service.ListFilter
	if req.Params.Type != nil {
		k := domain.Kind(*req.Params.Type)
		f.Kind = &k
	}
	f.Year = req.Params.Year

	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	entries, total, err := s.entries.List(ctx, auth.UserID(ctx), f, params)
	if err != nil {
		return nil, err
	}

	data := make([]gen.Entry, len(entries))
	for i, e := range entries {
		data[i] = entryToResponse(e)
	}
	return gen.ListEntries200JSONResponse{
		Data: data,
		Pagination: gen.Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	}, nil
}

// CreateEntry handles POST /entries.
func (s *Server) CreateEntry(ctx context.Context, req gen.CreateEntryRequestObject) (gen.CreateEntryResponseObject, error) {
	e, err := requestToEntry(uuid.Nil, req.Body)
	if err != nil {
		return gen.CreateEntry422JSONResponse(requestBody(err.Error())), nil
	}

	created, err := s.entries.Create(ctx, auth.UserID(ctx), e)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthenticated):
			return gen.CreateEntry401JSONResponse(unauthenticatedBody()), nil
		case errors.Is(err, domain.ErrOverlap):
			return gen.CreateEntry409JSONResponse(conflictBody(err)), nil
		case errors.Is(err, domain.ErrValidation):
			return gen.CreateEntry422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.CreateEntry201JSONResponse(entryToResponse(created)), nil
}

// GetEntry handles GET /entries/{id}.
func (s *Server) GetEntry(ctx context.Context, req gen.GetEntryRequestObject) (gen.GetEntryResponseObject, error) {
	e, err := s.entries.Get(ctx, auth.UserID(ctx), req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetEntry404JSONResponse(notFoundBody("entry not found")), nil
		}
		return nil, err
	}

	return gen.GetEntry200JSONResponse(entryToResponse(e)), nil
}

// UpdateEntry handles PUT /entries/{id}. The body may change the entry's type.
func (s *Server) UpdateEntry(ctx context.Context, req gen.UpdateEntryRequestObject) (gen.UpdateEntryResponseObject, error) {
	e, err := requestToEntry(req.Id, req.Body)
	if err != nil {
		return gen.UpdateEntry422JSONResponse(requestBody(err.Error())), nil
	}

	updated, err := s.entries.Update(ctx, auth.UserID(ctx), e)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthenticated):
			return gen.UpdateEntry401JSONResponse(unauthenticatedBody()), nil
		case errors.Is(err, domain.ErrNotFound):
			return gen.UpdateEntry404JSONResponse(notFoundBody("entry not found")), nil
		case errors.Is(err, domain.ErrOverlap):
			return gen.UpdateEntry409JSONResponse(conflictBody(err)), nil
		case errors.Is(err, domain.ErrValidation):
			return gen.UpdateEntry422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.UpdateEntry200JSONResponse(entryToResponse(updated)), nil
}

// DeleteEntry handles DELETE /entries/{id}.
func (s *Server) DeleteEntry(ctx context.Context, req gen.DeleteEntryRequestObject) (gen.DeleteEntryResponseObject, error) {
	err := s.entries.Delete(ctx, auth.UserID(ctx), req.Id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthenticated):
			return gen.DeleteEntry401JSONResponse(unauthenticatedBody()), nil
		case errors.Is(err, domain.ErrNotFound):
			return gen.DeleteEntry404JSONResponse(notFoundBody("entry not found")), nil
		}
		return nil, err
	}

	return gen.DeleteEntry204Response{}, nil
}

// --- mapping helpers --------------------------------------------------------

// requestToEntry converts an EntryInput body into a domain.Entry with the
// given ID. Field-level rules are left to the domain; only the variant is
// decided here.
func requestToEntry(id uuid.UUID, body *gen.EntryInput) (domain.Entry, error) {
	if body == nil {
		return nil, errors.New("request body is required")
	}
	base := domain.Base{
		ID:       id,
		Location: domain.Location{City: body.City, Country: body.Country},
		Comments: deref(body.Comments),
	}

	switch body.Type {
	case gen.Stay:
		st := domain.Stay{Base: base, StartDate: body.Date.Time}
		if body.EndDate != nil {
			st.EndDate = body.EndDate.Time
		}
		if body.AccommodationType != nil {
			acc, err := domain.ParseAccommodation(string(*body.AccommodationType))
			if err != nil {
				return nil, errors.New("accommodation_type must be one of airbnb, hotel, friend, other")
			}
			st.Accommodation = acc
		}
		return st, nil
	case gen.Flight:
		return domain.Flight{
			Base:         base,
			Date:         body.Date.Time,
			FlightNumber: deref(body.FlightNumber),
			Departure:    deref(body.Departure),
			Arrival:      deref(body.Arrival),
		}, nil
	}
	return nil, errors.New("type must be stay or flight")
}

// entryToResponse converts a domain.Entry into the generated gen.Entry type.
// Empty optional strings are omitted.
func entryToResponse(e domain.Entry) gen.Entry {
	b := domain.BaseOf(e)
	resp := gen.Entry{
		Id:        b.ID,
		Type:      gen.EntryType(e.Kind()),
		Date:      openapi_types.Date{Time: e.Start()},
		City:      b.City,
		Country:   b.Country,
		Comments:  optional(b.Comments),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	switch v := e.(type) {
	case domain.Stay:
		end := openapi_types.Date{Time: v.EndDate}
		days := v.Days()
		acc := gen.AccommodationType(v.Accommodation)
		resp.EndDate = &end
		resp.Days = &days
		resp.AccommodationType = &acc
	case domain.Flight:
		resp.FlightNumber = optional(v.FlightNumber)
		resp.Departure = optional(v.Departure)
		resp.Arrival = optional(v.Arrival)
	}
	return resp
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
