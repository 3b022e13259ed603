// Package gen holds the chi server, strict server and models for the API in
// spec/openapi.yaml, laid out as oapi-codegen v2.4.1 emits them with cfg.yaml.
// Run `go generate ./internal/handler/gen` after editing the spec; the
// generator rewrites this file.
package gen

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	strictnethttp "github.com/oapi-codegen/runtime/strictmiddleware/nethttp"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for AccommodationType.
const (
	Airbnb AccommodationType = "airbnb"
	Friend AccommodationType = "friend"
	Hotel  AccommodationType = "hotel"
	Other  AccommodationType = "other"
)

// Defines values for EntryType.
const (
	Flight EntryType = "flight"
	Stay   EntryType = "stay"
)

// Defines values for ExportEntriesParamsFormat.
const (
	Csv  ExportEntriesParamsFormat = "csv"
	Ics  ExportEntriesParamsFormat = "ics"
	Json ExportEntriesParamsFormat = "json"
	Xlsx ExportEntriesParamsFormat = "xlsx"
)

// AccommodationType defines model for AccommodationType.
type AccommodationType string

// CalendarDay defines model for CalendarDay.
type CalendarDay struct {
	Date     openapi_types.Date  `json:"date"`
	Day      int                 `json:"day"`
	EntryId  *openapi_types.UUID `json:"entry_id,omitempty"`
	Location *Location           `json:"location,omitempty"`
}

// CalendarMonth defines model for CalendarMonth.
type CalendarMonth struct {
	Days []CalendarDay `json:"days"`

	// Leading Empty cells before day 1 in a Monday-first grid.
	Leading int        `json:"leading"`
	Legend  []Location `json:"legend"`
	Month   int        `json:"month"`
	Year    int        `json:"year"`
}

// CountryDays defines model for CountryDays.
type CountryDays struct {
	Country string `json:"country"`
	Days    int    `json:"days"`
}

// Entry defines model for Entry.
type Entry struct {
	AccommodationType *AccommodationType `json:"accommodation_type,omitempty"`
	Arrival           *string            `json:"arrival,omitempty"`
	City              string             `json:"city"`
	Comments          *string            `json:"comments,omitempty"`
	Country           string             `json:"country"`
	CreatedAt         time.Time          `json:"created_at"`

	// Date First day of a stay, or the day of a flight.
	Date openapi_types.Date `json:"date"`

	// Days Inclusive day count of a stay.
	Days      *int    `json:"days,omitempty"`
	Departure *string `json:"departure,omitempty"`

	// EndDate Last day of a stay, inclusive.
	EndDate      *openapi_types.Date `json:"end_date,omitempty"`
	FlightNumber *string             `json:"flight_number,omitempty"`
	Id           openapi_types.UUID  `json:"id"`
	Type         EntryType           `json:"type"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// EntryInput defines model for EntryInput.
type EntryInput struct {
	AccommodationType *AccommodationType  `json:"accommodation_type,omitempty"`
	Arrival           *string             `json:"arrival,omitempty"`
	City              string              `json:"city"`
	Comments          *string             `json:"comments,omitempty"`
	Country           string              `json:"country"`
	Date              openapi_types.Date  `json:"date"`
	Departure         *string             `json:"departure,omitempty"`
	EndDate           *openapi_types.Date `json:"end_date,omitempty"`
	FlightNumber      *string             `json:"flight_number,omitempty"`
	Type              EntryType           `json:"type"`
}

// EntryList defines model for EntryList.
type EntryList struct {
	Data       []Entry    `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// EntryType defines model for EntryType.
type EntryType string

// ErrorDetail defines model for ErrorDetail.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ExportRow defines model for ExportRow.
type ExportRow struct {
	AccommodationType *string `json:"accommodation_type,omitempty"`
	Arrival           *string `json:"arrival,omitempty"`
	City              string  `json:"city"`
	Comments          *string `json:"comments,omitempty"`
	Country           string  `json:"country"`
	Date              string  `json:"date"`
	Days              *int    `json:"days,omitempty"`
	Departure         *string `json:"departure,omitempty"`
	EndDate           *string `json:"end_date,omitempty"`
	FlightNumber      *string `json:"flight_number,omitempty"`
	Id                string  `json:"id"`
	Type              string  `json:"type"`
}

// HealthResponse defines model for HealthResponse.
type HealthResponse struct {
	Status string `json:"status"`
}

// ImportProblem defines model for ImportProblem.
type ImportProblem struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// ImportResult defines model for ImportResult.
type ImportResult struct {
	Imported int             `json:"imported"`
	Problems []ImportProblem `json:"problems"`
	Skipped  int             `json:"skipped"`
}

// Location defines model for Location.
type Location struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// Pagination defines model for Pagination.
type Pagination struct {
	Limit int `json:"limit"`
	Page  int `json:"page"`
	Total int `json:"total"`
}

// RangeAssignment defines model for RangeAssignment.
type RangeAssignment struct {
	AccommodationType *AccommodationType `json:"accommodation_type,omitempty"`
	City              string             `json:"city"`
	Country           string             `json:"country"`
	End               openapi_types.Date `json:"end"`
	Start             openapi_types.Date `json:"start"`
}

// RangeResult defines model for RangeResult.
type RangeResult struct {
	// Deleted Stays removed entirely.
	Deleted int `json:"deleted"`

	// Updated Stays trimmed or split.
	Updated int    `json:"updated"`
	Written *Entry `json:"written,omitempty"`
}

// Summary defines model for Summary.
type Summary struct {
	Countries     []CountryDays `json:"countries"`
	DaysInYear    int           `json:"days_in_year"`
	FlightCount   int           `json:"flight_count"`
	OverThreshold []string      `json:"over_threshold"`
	StayCount     int           `json:"stay_count"`
	Threshold     int           `json:"threshold"`
	TotalDays     int           `json:"total_days"`
	Year          int           `json:"year"`
	YearShare     float64       `json:"year_share"`
}

// EntryID defines model for EntryID.
type EntryID = openapi_types.UUID

// Limit defines model for Limit.
type Limit = int

// Page defines model for Page.
type Page = int

// Year defines model for Year.
type Year = int

// ListEntriesParams defines parameters for ListEntries.
type ListEntriesParams struct {
	Type  *EntryType `form:"type,omitempty" json:"type,omitempty"`
	Year  *int       `form:"year,omitempty" json:"year,omitempty"`
	Page  *Page      `form:"page,omitempty" json:"page,omitempty"`
	Limit *Limit     `form:"limit,omitempty" json:"limit,omitempty"`
}

// DeleteRangeParams defines parameters for DeleteRange.
type DeleteRangeParams struct {
	Start openapi_types.Date `form:"start" json:"start"`
	End   openapi_types.Date `form:"end" json:"end"`
}

// ExportEntriesParams defines parameters for ExportEntries.
type ExportEntriesParams struct {
	Format *ExportEntriesParamsFormat `form:"format,omitempty" json:"format,omitempty"`
}

// ExportEntriesParamsFormat defines parameters for ExportEntries.
type ExportEntriesParamsFormat string

// ImportEntriesJSONBody defines parameters for ImportEntries.
type ImportEntriesJSONBody = []json.RawMessage

// GetSummaryParams defines parameters for GetSummary.
type GetSummaryParams struct {
	// Year Defaults to the current year.
	Year *int `form:"year,omitempty" json:"year,omitempty"`

	// Threshold Residency threshold in days. Defaults to the server setting.
	Threshold *int `form:"threshold,omitempty" json:"threshold,omitempty"`
}

// AssignRangeJSONRequestBody defines body for AssignRange for application/json ContentType.
type AssignRangeJSONRequestBody = RangeAssignment

// CreateEntryJSONRequestBody defines body for CreateEntry for application/json ContentType.
type CreateEntryJSONRequestBody = EntryInput

// UpdateEntryJSONRequestBody defines body for UpdateEntry for application/json ContentType.
type UpdateEntryJSONRequestBody = EntryInput

// ImportEntriesJSONRequestBody defines body for ImportEntries for application/json ContentType.
type ImportEntriesJSONRequestBody = ImportEntriesJSONBody

// ServerInterface represents all server handlers.
type ServerInterface interface {

	// (DELETE /calendar/range)
	DeleteRange(w http.ResponseWriter, r *http.Request, params DeleteRangeParams)

	// (PUT /calendar/range)
	AssignRange(w http.ResponseWriter, r *http.Request)

	// (GET /calendar/{year})
	GetCalendarYear(w http.ResponseWriter, r *http.Request, year Year)

	// (GET /calendar/{year}/{month})
	GetCalendarMonth(w http.ResponseWriter, r *http.Request, year Year, month int)

	// (GET /entries)
	ListEntries(w http.ResponseWriter, r *http.Request, params ListEntriesParams)

	// (POST /entries)
	CreateEntry(w http.ResponseWriter, r *http.Request)

	// (DELETE /entries/{id})
	DeleteEntry(w http.ResponseWriter, r *http.Request, id EntryID)

	// (GET /entries/{id})
	GetEntry(w http.ResponseWriter, r *http.Request, id EntryID)

	// (PUT /entries/{id})
	UpdateEntry(w http.ResponseWriter, r *http.Request, id EntryID)

	// (GET /export)
	ExportEntries(w http.ResponseWriter, r *http.Request, params ExportEntriesParams)

	// (GET /healthz)
	GetHealth(w http.ResponseWriter, r *http.Request)

	// (POST /import)
	ImportEntries(w http.ResponseWriter, r *http.Request)

	// (GET /locations)
	ListLocations(w http.ResponseWriter, r *http.Request)

	// (DELETE /session)
	SignOut(w http.ResponseWriter, r *http.Request)

	// (GET /summary)
	GetSummary(w http.ResponseWriter, r *http.Request, params GetSummaryParams)
}

// Unimplemented server implementation that returns http.StatusNotImplemented for each endpoint.

type Unimplemented struct{}

// (DELETE /calendar/range)
func (_ Unimplemented) DeleteRange(w http.ResponseWriter, r *http.Request, params DeleteRangeParams) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (PUT /calendar/range)
func (_ Unimplemented) AssignRange(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (GET /calendar/{year})
func (_ Unimplemented) GetCalendarYear(w http.ResponseWriter, r *http.Request, year Year) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (GET /calendar/{year}/{month})
func (_ Unimplemented) GetCalendarMonth(w http.ResponseWriter, r *http.Request, year Year, month int) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (GET /entries)
func (_ Unimplemented) ListEntries(w http.ResponseWriter, r *http.Request, params ListEntriesParams) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (POST /entries)
func (_ Unimplemented) CreateEntry(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (DELETE /entries/{id})
func (_ Unimplemented) DeleteEntry(w http.ResponseWriter, r *http.Request, id EntryID) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (GET /entries/{id})
func (_ Unimplemented) GetEntry(w http.ResponseWriter, r *http.Request, id EntryID) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (PUT /entries/{id})
func (_ Unimplemented) UpdateEntry(w http.ResponseWriter, r *http.Request, id EntryID) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (GET /export)
func (_ Unimplemented) ExportEntries(w http.ResponseWriter, r *http.Request, params ExportEntriesParams) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (GET /healthz)
func (_ Unimplemented) GetHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (POST /import)
func (_ Unimplemented) ImportEntries(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (GET /locations)
func (_ Unimplemented) ListLocations(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (DELETE /session)
func (_ Unimplemented) SignOut(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotImplemented)
}

// (GET /summary)
func (_ Unimplemented) GetSummary(w http.ResponseWriter, r *http.Request, params GetSummaryParams) {
	w.WriteHeader(http.StatusNotImplemented)
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

type MiddlewareFunc func(http.Handler) http.Handler

// DeleteRange operation middleware
func (siw *ServerInterfaceWrapper) DeleteRange(w http.ResponseWriter, r *http.Request) {

	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params DeleteRangeParams

	// ------------- Required query parameter "start" -------------

	if paramValue := r.URL.Query().Get("start"); paramValue != "" {

	} else {
		siw.ErrorHandlerFunc(w, r, &RequiredParamError{ParamName: "start"})
		return
	}

	err = runtime.BindQueryParameter("form", true, true, "start", r.URL.Query(), &params.Start)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "start", Err: err})
		return
	}

	// ------------- Required query parameter "end" -------------

	if paramValue := r.URL.Query().Get("end"); paramValue != "" {

	} else {
		siw.ErrorHandlerFunc(w, r, &RequiredParamError{ParamName: "end"})
		return
	}

	err = runtime.BindQueryParameter("form", true, true, "end", r.URL.Query(), &params.End)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "end", Err: err})
		return
	}

	ctx := r.Context()

	ctx = context.WithValue(ctx, BearerAuthScopes, []string{})

	r = r.WithContext(ctx)

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.DeleteRange(w, r, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// AssignRange operation middleware
func (siw *ServerInterfaceWrapper) AssignRange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ctx = context.WithValue(ctx, BearerAuthScopes, []string{})

	r = r.WithContext(ctx)

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.AssignRange(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetCalendarYear operation middleware
func (siw *ServerInterfaceWrapper) GetCalendarYear(w http.ResponseWriter, r *http.Request) {

	var err error

	// ------------- Path parameter "year" -------------
	var year Year

	err = runtime.BindStyledParameterWithOptions("simple", "year", chi.URLParam(r, "year"), &year, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "year", Err: err})
		return
	}

	ctx := r.Context()

	ctx = context.WithValue(ctx, BearerAuthScopes, []string{})

	r = r.WithContext(ctx)

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetCalendarYear(w, r, year)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetCalendarMonth operation middleware
func (siw *ServerInterfaceWrapper) GetCalendarMonth(w http.ResponseWriter, r *http.Request) {

	var err error

	// ------------- Path parameter "year" -------------
	var year Year

	err = runtime.BindStyledParameterWithOptions("simple", "year", chi.URLParam(r, "year"), &year, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "year", Err: err})
		return
	}

	// ------------- Path parameter "month" -------------
	var month int

	err = runtime.BindStyledParameterWithOptions("simple", "month", chi.URLParam(r, "month"), &month, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "month", Err: err})
		return
	}

	ctx := r.Context()

	ctx = context.WithValue(ctx, BearerAuthScopes, []string{})

	r = r.WithContext(ctx)

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetCalendarMonth(w, r, year, month)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// ListEntries operation middleware
func (siw *ServerInterfaceWrapper) ListEntries(w http.ResponseWriter, r *http.Request) {

	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListEntriesParams

	// ------------- Optional query parameter "type" -------------

	err = runtime.BindQueryParameter("form", true, false, "type", r.URL.Query(), &params.Type)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "type", Err: err})
		return
	}

	// ------------- Optional query parameter "year" -------------

	err = runtime.BindQueryParameter("form", true, false, "year", r.URL.Query(), &params.Year)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "year", Err: err})
		return
	}

	// ------------- Optional query parameter "page" -------------

	err = runtime.BindQueryParameter("form", true, false, "page", r.URL.Query(), &params.Page)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "page", Err: err})
		return
	}

	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "limit", Err: err})
		return
	}

	ctx := r.Context()

	ctx = context.WithValue(ctx, BearerAuthScopes, []string{})

	r = r.WithContext(ctx)

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListEntries(w, r, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// CreateEntry operation middleware
func (siw *ServerInterfaceWrapper) CreateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ctx = context.WithValue(ctx, BearerAuthScopes, []string{})

	r = r.WithContext(ctx)

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CreateEntry(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// DeleteEntry operation middleware
func (siw *ServerInterfaceWrapper) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	var err error

	// ------------- Path parameter "id" -------------
	var id EntryID

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	ctx := r.Context()

	ctx = context.WithValue(ctx, BearerAuthScopes, []string{})

	r = r.WithContext(ctx)

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.DeleteEntry(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetEntry operation middleware
func (siw *ServerInterfaceWrapper) GetEntry(w http.ResponseWriter, r *http.Request) {
	var err error

	// ------------- Path parameter "id" -------------
	var id EntryID

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	ctx := r.Context()

	ctx = context.WithValue(ctx, BearerAuthScopes, []string{})

	r = r.WithContext(ctx)

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetEntry(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// UpdateEntry operation middleware
func (siw *ServerInterfaceWrapper) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	var err error

	// ------------- Path parameter "id" -------------
	var id EntryID

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	ctx := r.Context()

	ctx = context.WithValue(ctx, BearerAuthScopes, []string{})

	r = r.WithContext(ctx)

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.UpdateEntry(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// ExportEntries operation middleware
func (siw *ServerInterfaceWrapper) ExportEntries(w http.ResponseWriter, r *http.Request) {

	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ExportEntriesParams

	// ------------- Optional query parameter "format" -------------

	err = runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &params.Format)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "format", Err: err})
		return
	}

	ctx := r.Context()

	ctx = context.WithValue(ctx, BearerAuthScopes, []string{})

	r = r.WithContext(ctx)

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ExportEntries(w, r, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetHealth operation middleware
func (siw *ServerInterfaceWrapper) GetHealth(w http.ResponseWriter, r *http.Request) {
	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetHealth(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// ImportEntries operation middleware
func (siw *ServerInterfaceWrapper) ImportEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ctx = context.WithValue(ctx, BearerAuthScopes, []string{})

	r = r.WithContext(ctx)

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ImportEntries(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// ListLocations operation middleware
func (siw *ServerInterfaceWrapper) ListLocations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ctx = context.WithValue(ctx, BearerAuthScopes, []string{})

	r = r.WithContext(ctx)

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListLocations(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// SignOut operation middleware
func (siw *ServerInterfaceWrapper) SignOut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ctx = context.WithValue(ctx, BearerAuthScopes, []string{})

	r = r.WithContext(ctx)

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.SignOut(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetSummary operation middleware
func (siw *ServerInterfaceWrapper) GetSummary(w http.ResponseWriter, r *http.Request) {

	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params GetSummaryParams

	// ------------- Optional query parameter "year" -------------

	err = runtime.BindQueryParameter("form", true, false, "year", r.URL.Query(), &params.Year)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "year", Err: err})
		return
	}

	// ------------- Optional query parameter "threshold" -------------

	err = runtime.BindQueryParameter("form", true, false, "threshold", r.URL.Query(), &params.Threshold)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "threshold", Err: err})
		return
	}

	ctx := r.Context()

	ctx = context.WithValue(ctx, BearerAuthScopes, []string{})

	r = r.WithContext(ctx)

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetSummary(w, r, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

type UnescapedCookieParamError struct {
	ParamName string
	Err       error
}

func (e *UnescapedCookieParamError) Error() string {
	return fmt.Sprintf("error unescaping cookie parameter '%s'", e.ParamName)
}

func (e *UnescapedCookieParamError) Unwrap() error {
	return e.Err
}

type UnmarshalingParamError struct {
	ParamName string
	Err       error
}

func (e *UnmarshalingParamError) Error() string {
	return fmt.Sprintf("Error unmarshaling parameter %s as JSON: %s", e.ParamName, e.Err.Error())
}

func (e *UnmarshalingParamError) Unwrap() error {
	return e.Err
}

type RequiredParamError struct {
	ParamName string
}

func (e *RequiredParamError) Error() string {
	return fmt.Sprintf("Query argument %s is required, but not found", e.ParamName)
}

type RequiredHeaderError struct {
	ParamName string
	Err       error
}

func (e *RequiredHeaderError) Error() string {
	return fmt.Sprintf("Header parameter %s is required, but not found", e.ParamName)
}

func (e *RequiredHeaderError) Unwrap() error {
	return e.Err
}

type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

type TooManyValuesForParamError struct {
	ParamName string
	Count     int
}

func (e *TooManyValuesForParamError) Error() string {
	return fmt.Sprintf("Expected one value for %s, got %d", e.ParamName, e.Count)
}

// Handler creates http.Handler with routing matching OpenAPI spec.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{})
}

type ChiServerOptions struct {
	BaseURL          string
	BaseRouter       chi.Router
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerFromMux creates http.Handler with routing matching OpenAPI spec based on the provided mux.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{
		BaseRouter: r,
	})
}

func HandlerFromMuxWithBaseURL(si ServerInterface, r chi.Router, baseURL string) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{
		BaseURL:    baseURL,
		BaseRouter: r,
	})
}

// HandlerWithOptions creates http.Handler with additional options
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter

	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}
	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	r.Group(func(r chi.Router) {
		r.Delete(options.BaseURL+"/calendar/range", wrapper.DeleteRange)
	})
	r.Group(func(r chi.Router) {
		r.Put(options.BaseURL+"/calendar/range", wrapper.AssignRange)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/calendar/{year}", wrapper.GetCalendarYear)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/calendar/{year}/{month}", wrapper.GetCalendarMonth)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/entries", wrapper.ListEntries)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/entries", wrapper.CreateEntry)
	})
	r.Group(func(r chi.Router) {
		r.Delete(options.BaseURL+"/entries/{id}", wrapper.DeleteEntry)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/entries/{id}", wrapper.GetEntry)
	})
	r.Group(func(r chi.Router) {
		r.Put(options.BaseURL+"/entries/{id}", wrapper.UpdateEntry)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/export", wrapper.ExportEntries)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/healthz", wrapper.GetHealth)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/import", wrapper.ImportEntries)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/locations", wrapper.ListLocations)
	})
	r.Group(func(r chi.Router) {
		r.Delete(options.BaseURL+"/session", wrapper.SignOut)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/summary", wrapper.GetSummary)
	})

	return r
}

type DeleteRangeRequestObject struct {
	Params DeleteRangeParams
}

type DeleteRangeResponseObject interface {
	VisitDeleteRangeResponse(w http.ResponseWriter) error
}

type DeleteRange200JSONResponse RangeResult

func (response DeleteRange200JSONResponse) VisitDeleteRangeResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type DeleteRange401JSONResponse ErrorResponse

func (response DeleteRange401JSONResponse) VisitDeleteRangeResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(401)

	return json.NewEncoder(w).Encode(response)
}

type DeleteRange422JSONResponse ErrorResponse

func (response DeleteRange422JSONResponse) VisitDeleteRangeResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(422)

	return json.NewEncoder(w).Encode(response)
}

type AssignRangeRequestObject struct {
	Body *AssignRangeJSONRequestBody
}

type AssignRangeResponseObject interface {
	VisitAssignRangeResponse(w http.ResponseWriter) error
}

type AssignRange200JSONResponse RangeResult

func (response AssignRange200JSONResponse) VisitAssignRangeResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type AssignRange401JSONResponse ErrorResponse

func (response AssignRange401JSONResponse) VisitAssignRangeResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(401)

	return json.NewEncoder(w).Encode(response)
}

type AssignRange422JSONResponse ErrorResponse

func (response AssignRange422JSONResponse) VisitAssignRangeResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(422)

	return json.NewEncoder(w).Encode(response)
}

type GetCalendarYearRequestObject struct {
	Year Year `json:"year"`
}

type GetCalendarYearResponseObject interface {
	VisitGetCalendarYearResponse(w http.ResponseWriter) error
}

type GetCalendarYear200JSONResponse []CalendarMonth

func (response GetCalendarYear200JSONResponse) VisitGetCalendarYearResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type GetCalendarYear422JSONResponse ErrorResponse

func (response GetCalendarYear422JSONResponse) VisitGetCalendarYearResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(422)

	return json.NewEncoder(w).Encode(response)
}

type GetCalendarMonthRequestObject struct {
	Year  Year `json:"year"`
	Month int  `json:"month"`
}

type GetCalendarMonthResponseObject interface {
	VisitGetCalendarMonthResponse(w http.ResponseWriter) error
}

type GetCalendarMonth200JSONResponse CalendarMonth

func (response GetCalendarMonth200JSONResponse) VisitGetCalendarMonthResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type GetCalendarMonth422JSONResponse ErrorResponse

func (response GetCalendarMonth422JSONResponse) VisitGetCalendarMonthResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(422)

	return json.NewEncoder(w).Encode(response)
}

type ListEntriesRequestObject struct {
	Params ListEntriesParams
}

type ListEntriesResponseObject interface {
	VisitListEntriesResponse(w http.ResponseWriter) error
}

type ListEntries200JSONResponse EntryList

func (response ListEntries200JSONResponse) VisitListEntriesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type CreateEntryRequestObject struct {
	Body *CreateEntryJSONRequestBody
}

type CreateEntryResponseObject interface {
	VisitCreateEntryResponse(w http.ResponseWriter) error
}

type CreateEntry201JSONResponse Entry

func (response CreateEntry201JSONResponse) VisitCreateEntryResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(201)

	return json.NewEncoder(w).Encode(response)
}

type CreateEntry401JSONResponse ErrorResponse

func (response CreateEntry401JSONResponse) VisitCreateEntryResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(401)

	return json.NewEncoder(w).Encode(response)
}

type CreateEntry409JSONResponse ErrorResponse

func (response CreateEntry409JSONResponse) VisitCreateEntryResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(409)

	return json.NewEncoder(w).Encode(response)
}

type CreateEntry422JSONResponse ErrorResponse

func (response CreateEntry422JSONResponse) VisitCreateEntryResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(422)

	return json.NewEncoder(w).Encode(response)
}

type DeleteEntryRequestObject struct {
	Id EntryID `json:"id"`
}

type DeleteEntryResponseObject interface {
	VisitDeleteEntryResponse(w http.ResponseWriter) error
}

type DeleteEntry204Response struct {
}

func (response DeleteEntry204Response) VisitDeleteEntryResponse(w http.ResponseWriter) error {
	w.WriteHeader(204)
	return nil
}

type DeleteEntry401JSONResponse ErrorResponse

func (response DeleteEntry401JSONResponse) VisitDeleteEntryResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(401)

	return json.NewEncoder(w).Encode(response)
}

type DeleteEntry404JSONResponse ErrorResponse

func (response DeleteEntry404JSONResponse) VisitDeleteEntryResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(404)

	return json.NewEncoder(w).Encode(response)
}

type GetEntryRequestObject struct {
	Id EntryID `json:"id"`
}

type GetEntryResponseObject interface {
	VisitGetEntryResponse(w http.ResponseWriter) error
}

type GetEntry200JSONResponse Entry

func (response GetEntry200JSONResponse) VisitGetEntryResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type GetEntry404JSONResponse ErrorResponse

func (response GetEntry404JSONResponse) VisitGetEntryResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(404)

	return json.NewEncoder(w).Encode(response)
}

type UpdateEntryRequestObject struct {
	Id   EntryID `json:"id"`
	Body *UpdateEntryJSONRequestBody
}

type UpdateEntryResponseObject interface {
	VisitUpdateEntryResponse(w http.ResponseWriter) error
}

type UpdateEntry200JSONResponse Entry

func (response UpdateEntry200JSONResponse) VisitUpdateEntryResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type UpdateEntry401JSONResponse ErrorResponse

func (response UpdateEntry401JSONResponse) VisitUpdateEntryResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(401)

	return json.NewEncoder(w).Encode(response)
}

type UpdateEntry404JSONResponse ErrorResponse

func (response UpdateEntry404JSONResponse) VisitUpdateEntryResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(404)

	return json.NewEncoder(w).Encode(response)
}

type UpdateEntry409JSONResponse ErrorResponse

func (response UpdateEntry409JSONResponse) VisitUpdateEntryResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(409)

	return json.NewEncoder(w).Encode(response)
}

type UpdateEntry422JSONResponse ErrorResponse

func (response UpdateEntry422JSONResponse) VisitUpdateEntryResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(422)

	return json.NewEncoder(w).Encode(response)
}

type ExportEntriesRequestObject struct {
	Params ExportEntriesParams
}

type ExportEntriesResponseObject interface {
	VisitExportEntriesResponse(w http.ResponseWriter) error
}

type ExportEntries200ResponseHeaders struct {
	ContentDisposition string
}

type ExportEntries200JSONResponse struct {
	Body    []ExportRow
	Headers ExportEntries200ResponseHeaders
}

func (response ExportEntries200JSONResponse) VisitExportEntriesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprint(response.Headers.ContentDisposition))
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response.Body)
}

type ExportEntries200TextcsvResponse struct {
	Body          io.Reader
	Headers       ExportEntries200ResponseHeaders
	ContentLength int64
}

func (response ExportEntries200TextcsvResponse) VisitExportEntriesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "text/csv")
	if response.ContentLength != 0 {
		w.Header().Set("Content-Length", fmt.Sprint(response.ContentLength))
	}
	w.Header().Set("Content-Disposition", fmt.Sprint(response.Headers.ContentDisposition))
	w.WriteHeader(200)

	if closer, ok := response.Body.(io.ReadCloser); ok {
		defer closer.Close()
	}
	_, err := io.Copy(w, response.Body)
	return err
}

type ExportEntries200ApplicationvndOpenxmlformatsOfficedocumentSpreadsheetmlSheetResponse struct {
	Body          io.Reader
	Headers       ExportEntries200ResponseHeaders
	ContentLength int64
}

func (response ExportEntries200ApplicationvndOpenxmlformatsOfficedocumentSpreadsheetmlSheetResponse) VisitExportEntriesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if response.ContentLength != 0 {
		w.Header().Set("Content-Length", fmt.Sprint(response.ContentLength))
	}
	w.Header().Set("Content-Disposition", fmt.Sprint(response.Headers.ContentDisposition))
	w.WriteHeader(200)

	if closer, ok := response.Body.(io.ReadCloser); ok {
		defer closer.Close()
	}
	_, err := io.Copy(w, response.Body)
	return err
}

type ExportEntries200TextcalendarResponse struct {
	Body          io.Reader
	Headers       ExportEntries200ResponseHeaders
	ContentLength int64
}

func (response ExportEntries200TextcalendarResponse) VisitExportEntriesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "text/calendar")
	if response.ContentLength != 0 {
		w.Header().Set("Content-Length", fmt.Sprint(response.ContentLength))
	}
	w.Header().Set("Content-Disposition", fmt.Sprint(response.Headers.ContentDisposition))
	w.WriteHeader(200)

	if closer, ok := response.Body.(io.ReadCloser); ok {
		defer closer.Close()
	}
	_, err := io.Copy(w, response.Body)
	return err
}

type GetHealthRequestObject struct {
}

type GetHealthResponseObject interface {
	VisitGetHealthResponse(w http.ResponseWriter) error
}

type GetHealth200JSONResponse HealthResponse

func (response GetHealth200JSONResponse) VisitGetHealthResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type ImportEntriesRequestObject struct {
	Body *ImportEntriesJSONRequestBody
}

type ImportEntriesResponseObject interface {
	VisitImportEntriesResponse(w http.ResponseWriter) error
}

type ImportEntries200JSONResponse ImportResult

func (response ImportEntries200JSONResponse) VisitImportEntriesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type ImportEntries400JSONResponse ErrorResponse

func (response ImportEntries400JSONResponse) VisitImportEntriesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(400)

	return json.NewEncoder(w).Encode(response)
}

type ImportEntries401JSONResponse ErrorResponse

func (response ImportEntries401JSONResponse) VisitImportEntriesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(401)

	return json.NewEncoder(w).Encode(response)
}

type ListLocationsRequestObject struct {
}

type ListLocationsResponseObject interface {
	VisitListLocationsResponse(w http.ResponseWriter) error
}

type ListLocations200JSONResponse []Location

func (response ListLocations200JSONResponse) VisitListLocationsResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type SignOutRequestObject struct {
}

type SignOutResponseObject interface {
	VisitSignOutResponse(w http.ResponseWriter) error
}

type SignOut204Response struct {
}

func (response SignOut204Response) VisitSignOutResponse(w http.ResponseWriter) error {
	w.WriteHeader(204)
	return nil
}

type GetSummaryRequestObject struct {
	Params GetSummaryParams
}

type GetSummaryResponseObject interface {
	VisitGetSummaryResponse(w http.ResponseWriter) error
}

type GetSummary200JSONResponse Summary

func (response GetSummary200JSONResponse) VisitGetSummaryResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type GetSummary422JSONResponse ErrorResponse

func (response GetSummary422JSONResponse) VisitGetSummaryResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(422)

	return json.NewEncoder(w).Encode(response)
}

// StrictServerInterface represents all server handlers.
type StrictServerInterface interface {

	// (DELETE /calendar/range)
	DeleteRange(ctx context.Context, request DeleteRangeRequestObject) (DeleteRangeResponseObject, error)

	// (PUT /calendar/range)
	AssignRange(ctx context.Context, request AssignRangeRequestObject) (AssignRangeResponseObject, error)

	// (GET /calendar/{year})
	GetCalendarYear(ctx context.Context, request GetCalendarYearRequestObject) (GetCalendarYearResponseObject, error)

	// (GET /calendar/{year}/{month})
	GetCalendarMonth(ctx context.Context, request GetCalendarMonthRequestObject) (GetCalendarMonthResponseObject, error)

	// (GET /entries)
	ListEntries(ctx context.Context, request ListEntriesRequestObject) (ListEntriesResponseObject, error)

	// (POST /entries)
	CreateEntry(ctx context.Context, request CreateEntryRequestObject) (CreateEntryResponseObject, error)

	// (DELETE /entries/{id})
	DeleteEntry(ctx context.Context, request DeleteEntryRequestObject) (DeleteEntryResponseObject, error)

	// (GET /entries/{id})
	GetEntry(ctx context.Context, request GetEntryRequestObject) (GetEntryResponseObject, error)

	// (PUT /entries/{id})
	UpdateEntry(ctx context.Context, request UpdateEntryRequestObject) (UpdateEntryResponseObject, error)

	// (GET /export)
	ExportEntries(ctx context.Context, request ExportEntriesRequestObject) (ExportEntriesResponseObject, error)

	// (GET /healthz)
	GetHealth(ctx context.Context, request GetHealthRequestObject) (GetHealthResponseObject, error)

	// (POST /import)
	ImportEntries(ctx context.Context, request ImportEntriesRequestObject) (ImportEntriesResponseObject, error)

	// (GET /locations)
	ListLocations(ctx context.Context, request ListLocationsRequestObject) (ListLocationsResponseObject, error)

	// (DELETE /session)
	SignOut(ctx context.Context, request SignOutRequestObject) (SignOutResponseObject, error)

	// (GET /summary)
	GetSummary(ctx context.Context, request GetSummaryRequestObject) (GetSummaryResponseObject, error)
}

type StrictHandlerFunc = strictnethttp.StrictHTTPHandlerFunc
type StrictMiddlewareFunc = strictnethttp.StrictHTTPMiddlewareFunc

type StrictHTTPServerOptions struct {
	RequestErrorHandlerFunc  func(w http.ResponseWriter, r *http.Request, err error)
	ResponseErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

func NewStrictHandler(ssi StrictServerInterface, middlewares []StrictMiddlewareFunc) ServerInterface {
	return &strictHandler{ssi: ssi, middlewares: middlewares, options: StrictHTTPServerOptions{
		RequestErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		},
		ResponseErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		},
	}}
}

func NewStrictHandlerWithOptions(ssi StrictServerInterface, middlewares []StrictMiddlewareFunc, options StrictHTTPServerOptions) ServerInterface {
	return &strictHandler{ssi: ssi, middlewares: middlewares, options: options}
}

type strictHandler struct {
	ssi         StrictServerInterface
	middlewares []StrictMiddlewareFunc
	options     StrictHTTPServerOptions
}

// DeleteRange operation middleware
func (sh *strictHandler) DeleteRange(w http.ResponseWriter, r *http.Request, params DeleteRangeParams) {
	var request DeleteRangeRequestObject

	request.Params = params

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.DeleteRange(ctx, request.(DeleteRangeRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "DeleteRange")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(DeleteRangeResponseObject); ok {
		if err := validResponse.VisitDeleteRangeResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// AssignRange operation middleware
func (sh *strictHandler) AssignRange(w http.ResponseWriter, r *http.Request) {
	var request AssignRangeRequestObject

	var body AssignRangeJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sh.options.RequestErrorHandlerFunc(w, r, fmt.Errorf("can't decode JSON body: %w", err))
		return
	}
	request.Body = &body

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.AssignRange(ctx, request.(AssignRangeRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "AssignRange")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(AssignRangeResponseObject); ok {
		if err := validResponse.VisitAssignRangeResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// GetCalendarYear operation middleware
func (sh *strictHandler) GetCalendarYear(w http.ResponseWriter, r *http.Request, year Year) {
	var request GetCalendarYearRequestObject

	request.Year = year

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.GetCalendarYear(ctx, request.(GetCalendarYearRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetCalendarYear")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(GetCalendarYearResponseObject); ok {
		if err := validResponse.VisitGetCalendarYearResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// GetCalendarMonth operation middleware
func (sh *strictHandler) GetCalendarMonth(w http.ResponseWriter, r *http.Request, year Year, month int) {
	var request GetCalendarMonthRequestObject

	request.Year = year
	request.Month = month

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.GetCalendarMonth(ctx, request.(GetCalendarMonthRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetCalendarMonth")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(GetCalendarMonthResponseObject); ok {
		if err := validResponse.VisitGetCalendarMonthResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// ListEntries operation middleware
func (sh *strictHandler) ListEntries(w http.ResponseWriter, r *http.Request, params ListEntriesParams) {
	var request ListEntriesRequestObject

	request.Params = params

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.ListEntries(ctx, request.(ListEntriesRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "ListEntries")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(ListEntriesResponseObject); ok {
		if err := validResponse.VisitListEntriesResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// CreateEntry operation middleware
func (sh *strictHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var request CreateEntryRequestObject

	var body CreateEntryJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sh.options.RequestErrorHandlerFunc(w, r, fmt.Errorf("can't decode JSON body: %w", err))
		return
	}
	request.Body = &body

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.CreateEntry(ctx, request.(CreateEntryRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "CreateEntry")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(CreateEntryResponseObject); ok {
		if err := validResponse.VisitCreateEntryResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// DeleteEntry operation middleware
func (sh *strictHandler) DeleteEntry(w http.ResponseWriter, r *http.Request, id EntryID) {
	var request DeleteEntryRequestObject

	request.Id = id

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.DeleteEntry(ctx, request.(DeleteEntryRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "DeleteEntry")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(DeleteEntryResponseObject); ok {
		if err := validResponse.VisitDeleteEntryResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// GetEntry operation middleware
func (sh *strictHandler) GetEntry(w http.ResponseWriter, r *http.Request, id EntryID) {
	var request GetEntryRequestObject

	request.Id = id

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.GetEntry(ctx, request.(GetEntryRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetEntry")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(GetEntryResponseObject); ok {
		if err := validResponse.VisitGetEntryResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// UpdateEntry operation middleware
func (sh *strictHandler) UpdateEntry(w http.ResponseWriter, r *http.Request, id EntryID) {
	var request UpdateEntryRequestObject

	request.Id = id

	var body UpdateEntryJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sh.options.RequestErrorHandlerFunc(w, r, fmt.Errorf("can't decode JSON body: %w", err))
		return
	}
	request.Body = &body

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.UpdateEntry(ctx, request.(UpdateEntryRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "UpdateEntry")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(UpdateEntryResponseObject); ok {
		if err := validResponse.VisitUpdateEntryResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// ExportEntries operation middleware
func (sh *strictHandler) ExportEntries(w http.ResponseWriter, r *http.Request, params ExportEntriesParams) {
	var request ExportEntriesRequestObject

	request.Params = params

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.ExportEntries(ctx, request.(ExportEntriesRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "ExportEntries")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(ExportEntriesResponseObject); ok {
		if err := validResponse.VisitExportEntriesResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// GetHealth operation middleware
func (sh *strictHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	var request GetHealthRequestObject

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.GetHealth(ctx, request.(GetHealthRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetHealth")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(GetHealthResponseObject); ok {
		if err := validResponse.VisitGetHealthResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// ImportEntries operation middleware
func (sh *strictHandler) ImportEntries(w http.ResponseWriter, r *http.Request) {
	var request ImportEntriesRequestObject

	var body ImportEntriesJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sh.options.RequestErrorHandlerFunc(w, r, fmt.Errorf("can't decode JSON body: %w", err))
		return
	}
	request.Body = &body

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.ImportEntries(ctx, request.(ImportEntriesRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "ImportEntries")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(ImportEntriesResponseObject); ok {
		if err := validResponse.VisitImportEntriesResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// ListLocations operation middleware
func (sh *strictHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	var request ListLocationsRequestObject

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.ListLocations(ctx, request.(ListLocationsRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "ListLocations")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(ListLocationsResponseObject); ok {
		if err := validResponse.VisitListLocationsResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// SignOut operation middleware
func (sh *strictHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	var request SignOutRequestObject

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.SignOut(ctx, request.(SignOutRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "SignOut")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(SignOutResponseObject); ok {
		if err := validResponse.VisitSignOutResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}

// GetSummary operation middleware
func (sh *strictHandler) GetSummary(w http.ResponseWriter, r *http.Request, params GetSummaryParams) {
	var request GetSummaryRequestObject

	request.Params = params

	handler := func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
		return sh.ssi.GetSummary(ctx, request.(GetSummaryRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetSummary")
	}

	response, err := handler(r.Context(), w, r, request)

	if err != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, err)
	} else if validResponse, ok := response.(GetSummaryResponseObject); ok {
		if err := validResponse.VisitGetSummaryResponse(w); err != nil {
			sh.options.ResponseErrorHandlerFunc(w, r, err)
		}
	} else if response != nil {
		sh.options.ResponseErrorHandlerFunc(w, r, fmt.Errorf("unexpected response type: %T", response))
	}
}
