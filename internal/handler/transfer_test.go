package handler_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pkordes/staylog/internal/domain"
	"github.com/pkordes/staylog/internal/export"
	"github.com/pkordes/staylog/internal/handler/gen"
	"github.com/pkordes/staylog/internal/service"
)

// ---- POST /import ----------------------------------------------------------

func TestImportEntries_200(t *testing.T) {
	svc := &mockEntryServicer{
		importItems: func(_ context.Context, userID string, items []json.RawMessage) (service.ImportResult, error) {
			assert.Equal(t, testUser, userID)
			require.Len(t, items, 2)
			return service.ImportResult{
				Imported: 1,
				Skipped:  1,
				Problems: []service.ImportProblem{{Index: 1, Reason: "city is required"}},
			}, nil
		},
	}

	payload := `[{"type":"stay","date":"2025-01-01","country":"Thailand","city":"Chiang Rai"},{"type":"stay","date":"2025-03-12","country":"Germany"}]`
	req := asUser(httptest.NewRequest(http.MethodPost, "/import", strings.NewReader(payload)))
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp gen.ImportResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Imported)
	assert.Equal(t, []gen.ImportProblem{{Index: 1, Reason: "city is required"}}, resp.Problems)
}

func TestImportEntries_400_NotAnArray(t *testing.T) {
	for _, payload := range []string{`{"type":"stay"}`, `[{"type":`, `null`} {
		req := asUser(httptest.NewRequest(http.MethodPost, "/import", strings.NewReader(payload)))
		rec := httptest.NewRecorder()

		newHTTPHandler(&mockEntryServicer{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, payload)
		assert.Equal(t, "malformed", decodeError(t, rec.Body).Error.Code, payload)
	}
}

func TestImportEntries_401(t *testing.T) {
	svc := &mockEntryServicer{
		importItems: func(_ context.Context, _ string, _ []json.RawMessage) (service.ImportResult, error) {
			return service.ImportResult{}, domain.ErrUnauthenticated
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/import", strings.NewReader(`[]`))
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ---- GET /export -----------------------------------------------------------

func exportingService() *mockEntryServicer {
	return &mockEntryServicer{
		today: domain.Date(2025, time.June, 12),
		export: func(_ context.Context, _ string) ([]domain.Entry, error) {
			return []domain.Entry{stayFixture(), flightFixture()}, nil
		},
	}
}

func TestExportEntries_DefaultJSON(t *testing.T) {
	req := asUser(httptest.NewRequest(http.MethodGet, "/export", nil))
	rec := httptest.NewRecorder()

	newHTTPHandler(exportingService()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, `attachment; filename="staylog-export-2025-06-12.json"`, rec.Header().Get("Content-Disposition"))

	var rows []gen.ExportRow
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "stay", rows[0].Type)
	require.NotNil(t, rows[0].Days)
	assert.Equal(t, 70, *rows[0].Days)
	assert.Nil(t, rows[1].EndDate)
}

func TestExportEntries_EmptyJSONIsArray(t *testing.T) {
	svc := &mockEntryServicer{
		export: func(_ context.Context, _ string) ([]domain.Entry, error) { return nil, nil },
	}

	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestExportEntries_CSV(t *testing.T) {
	req := asUser(httptest.NewRequest(http.MethodGet, "/export?format=csv", nil))
	rec := httptest.NewRecorder()

	newHTTPHandler(exportingService()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "staylog-export-2025-06-12.csv")

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, export.Columns, records[0])
}

func TestExportEntries_XLSX(t *testing.T) {
	req := asUser(httptest.NewRequest(http.MethodGet, "/export?format=xlsx", nil))
	rec := httptest.NewRecorder()

	newHTTPHandler(exportingService()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestExportEntries_ICS(t *testing.T) {
	req := asUser(httptest.NewRequest(http.MethodGet, "/export?format=ics", nil))
	rec := httptest.NewRecorder()

	newHTTPHandler(exportingService()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/calendar", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "BEGIN:VCALENDAR")
}

func TestExportEntries_422_UnknownFormat(t *testing.T) {
	req := asUser(httptest.NewRequest(http.MethodGet, "/export?format=pdf", nil))
	rec := httptest.NewRecorder()

	newHTTPHandler(exportingService()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
