package handler

import (
	"context"

	"github.com/pkordes/staylog/internal/auth"
	"github.com/pkordes/staylog/internal/handler/gen"
	"github.com/pkordes/staylog/internal/timeline"
)

// GetSummary handles GET /summary?year=&threshold=.
// year defaults to the current year; threshold to the server setting.
func (s *Server) GetSummary(ctx context.Context, req gen.GetSummaryRequestObject) (gen.GetSummaryResponseObject, error) {
	year := s.entries.Today().Year()
	if req.Params.Year != nil {
		year = *req.Params.Year
	}
	if !validYear(year) {
		return gen.GetSummary422JSONResponse(requestBody("year must be between 1 and 9999")), nil
	}
	threshold := 0
	if req.Params.Threshold != nil {
		if *req.Params.Threshold < 1 {
			return gen.GetSummary422JSONResponse(requestBody("threshold must be at least 1")), nil
		}
		threshold = *req.Params.Threshold
	}

	sum, err := s.entries.Summary(ctx, auth.UserID(ctx), year, threshold)
	if err != nil {
		return nil, err
	}

	return gen.GetSummary200JSONResponse(summaryToResponse(sum)), nil
}

// ListLocations handles GET /locations.
func (s *Server) ListLocations(ctx context.Context, _ gen.ListLocationsRequestObject) (gen.ListLocationsResponseObject, error) {
	locs, err := s.entries.Locations(ctx, auth.UserID(ctx))
	if err != nil {
		return nil, err
	}

	out := make(gen.ListLocations200JSONResponse, len(locs))
	for i, l := range locs {
		out[i] = locationToResponse(l)
	}
	return out, nil
}

func summaryToResponse(sum timeline.Summary) gen.Summary {
	out := gen.Summary{
		Year:          sum.Year,
		Threshold:     sum.Threshold,
		DaysInYear:    sum.DaysInYear,
		TotalDays:     sum.TotalDays,
		StayCount:     sum.StayCount,
		FlightCount:   sum.FlightCount,
		Countries:     make([]gen.CountryDays, len(sum.Countries)),
		OverThreshold: []string{},
		YearShare:     sum.YearShare,
	}
	for i, c := range sum.Countries {
		out.Countries[i] = gen.CountryDays{Country: c.Country, Days: c.Days}
	}
	out.OverThreshold = append(out.OverThreshold, sum.OverThreshold...)
	return out
}
