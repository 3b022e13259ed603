package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/pkordes/staylog/internal/domain"
	"github.com/pkordes/staylog/internal/timeline"
)

// ImportProblem describes one skipped import item.
type ImportProblem struct {
	Index  int
	Reason string
}

// ImportResult reports the outcome of a bulk import.
type ImportResult struct {
	Imported int
	Skipped  int
	Problems []ImportProblem
}

// importItem is the minimal shape every import item must have. The camelCase
// aliases accept files written by the browser version of the logbook.
type importItem struct {
	Type              string `json:"type" validate:"required,oneof=stay flight"`
	Date              string `json:"date" validate:"required,calendar_date"`
	EndDate           string `json:"end_date" validate:"omitempty,calendar_date"`
	EndDateAlt        string `json:"endDate" validate:"omitempty,calendar_date"`
	Country           string `json:"country" validate:"required"`
	City              string `json:"city" validate:"required"`
	AccommodationType string `json:"accommodation_type" validate:"omitempty,oneof=airbnb hotel friend other"`
	AccommodationAlt  string `json:"accommodationType" validate:"omitempty,oneof=airbnb hotel friend other"`
	FlightNumber      string `json:"flight_number"`
	FlightNumberAlt   string `json:"flightNumber"`
	Departure         string `json:"departure"`
	Arrival           string `json:"arrival"`
	Comments          string `json:"comments"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("calendar_date", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseDate(fl.Field().String())
		return err == nil
	})
	return v
}

// trim strips surrounding whitespace from every string field so blank values
// fail the required checks.
func (it *importItem) trim() {
	v := reflect.ValueOf(it).Elem()
	for i := 0; i < v.NumField(); i++ {
		if f := v.Field(i); f.Kind() == reflect.String {
			f.SetString(strings.TrimSpace(f.String()))
		}
	}
}

// entry converts a validated item. Incoming IDs are ignored.
func (it importItem) entry() (domain.Entry, error) {
	start, err := domain.ParseDate(it.Date)
	if err != nil {
		return nil, err
	}
	base := domain.Base{
		Location: domain.Location{City: it.City, Country: it.Country},
		Comments: it.Comments,
	}
	if it.Type == string(domain.KindFlight) {
		return domain.Flight{
			Base:         base,
			Date:         start,
			FlightNumber: firstNonEmpty(it.FlightNumber, it.FlightNumberAlt),
			Departure:    it.Departure,
			Arrival:      it.Arrival,
		}, nil
	}
	st := domain.Stay{Base: base, StartDate: start}
	if end := firstNonEmpty(it.EndDate, it.EndDateAlt); end != "" {
		if st.EndDate, err = domain.ParseDate(end); err != nil {
			return nil, err
		}
	}
	st.Accommodation, err = domain.ParseAccommodation(firstNonEmpty(it.AccommodationType, it.AccommodationAlt))
	if err != nil {
		return nil, err
	}
	return st, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// Import decodes a JSON array and imports its items. A payload that is not a
// JSON array fails with domain.ErrMalformed and nothing is applied.
func (s *EntryService) Import(ctx context.Context, userID string, payload []byte) (ImportResult, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(bytes.TrimSpace(payload), &items); err != nil {
		return ImportResult{}, fmt.Errorf("service.EntryService.Import: %w: %v", domain.ErrMalformed, err)
	}
	if items == nil {
		return ImportResult{}, fmt.Errorf("service.EntryService.Import: %w: expected a JSON array", domain.ErrMalformed)
	}
	return s.ImportItems(ctx, userID, items)
}

// ImportItems imports each item in order. Items missing date, type, country
// or city, or otherwise invalid, are skipped and reported. Stays are written
// authoritatively over earlier days; a flight identical to an existing one is
// skipped as a duplicate. All accepted items are persisted in one transaction.
func (s *EntryService) ImportItems(ctx context.Context, userID string, items []json.RawMessage) (ImportResult, error) {
	res := ImportResult{Problems: []ImportProblem{}}
	skip := func(i int, reason string) {
		res.Skipped++
		res.Problems = append(res.Problems, ImportProblem{Index: i, Reason: reason})
	}

	_, err := s.mutate(ctx, userID, func(c *timeline.Collection) (domain.ChangeSet, error) {
		existed := map[uuid.UUID]bool{}
		for _, e := range c.Entries() {
			existed[e.EntryID()] = true
		}
		var total domain.ChangeSet
		for i, raw := range items {
			var it importItem
			if err := json.Unmarshal(raw, &it); err != nil {
				skip(i, "not an entry object")
				continue
			}
			it.trim()
			if err := validate.Struct(it); err != nil {
				skip(i, describeValidation(err))
				continue
			}
			e, err := it.entry()
			if err != nil {
				skip(i, err.Error())
				continue
			}

			var change domain.ChangeSet
			switch v := e.(type) {
			case domain.Stay:
				change, err = c.Write(v)
			case domain.Flight:
				if hasFlight(c, v) {
					skip(i, "duplicate flight")
					continue
				}
				change, err = c.Add(v)
			}
			if err != nil {
				skip(i, err.Error())
				continue
			}
			total = mergeChanges(total, change, existed)
			res.Imported++
		}
		return total, nil
	})
	if err != nil {
		return ImportResult{}, fmt.Errorf("service.EntryService.ImportItems: %w", err)
	}
	if res.Skipped > 0 {
		s.log.Info("import skipped items", "user_id", userID, "imported", res.Imported, "skipped", res.Skipped)
	}
	return res, nil
}

func hasFlight(c *timeline.Collection, f domain.Flight) bool {
	f = f.Normalize()
	for _, e := range c.Entries() {
		g, ok := e.(domain.Flight)
		if ok && g.Date.Equal(f.Date) && g.Location == f.Location && g.FlightNumber == f.FlightNumber {
			return true
		}
	}
	return false
}

// mergeChanges folds b into a. A delete cancels a pending upsert of the same
// entry and is kept only for entries that existed before the import; an
// entry upserted twice keeps its latest version.
func mergeChanges(a, b domain.ChangeSet, existed map[uuid.UUID]bool) domain.ChangeSet {
	for _, id := range b.Deletes {
		for i, e := range a.Upserts {
			if e.EntryID() == id {
				a.Upserts = append(a.Upserts[:i], a.Upserts[i+1:]...)
				break
			}
		}
		if existed[id] {
			a.Deletes = append(a.Deletes, id)
		}
	}
	for _, e := range b.Upserts {
		replaced := false
		for i, u := range a.Upserts {
			if u.EntryID() == e.EntryID() {
				a.Upserts[i] = e
				replaced = true
				break
			}
		}
		if !replaced {
			a.Upserts = append(a.Upserts, e)
		}
	}
	return a
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "calendar_date":
			msgs = append(msgs, fmt.Sprintf("%s %q is not a date", fe.Field(), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s %q is not one of [%s]", fe.Field(), fe.Value(), fe.Param()))
		}
	}
	return strings.Join(msgs, "; ")
}
