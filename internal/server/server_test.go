package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webatelier/siteaudit/internal/models"
	"github.com/webatelier/siteaudit/internal/store"
	"github.com/webatelier/siteaudit/pkg/audit"
)

// stubCollector returns a canned record without any network I/O.
type stubCollector struct {
	details *models.AnalysisDetails
	err     error
}

func (s *stubCollector) Collect(ctx context.Context, url string) (*models.AnalysisDetails, error) {
	if s.err != nil {
		return &models.AnalysisDetails{ImageQuality: models.ImageQualityUnknown}, s.err
	}
	return s.details, nil
}

func fixedNow() time.Time {
	return time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
}

func newTestServer(t *testing.T, collector audit.Collector) (*Server, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "audits.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	engine := audit.NewEngine(collector, fixedNow)
	return New(engine, st, zerolog.Nop()), st
}

func postAudit(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/audit", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleAudit(t *testing.T) {
	details := &models.AnalysisDetails{
		HasHTTPS:         true,
		ValidCertificate: true,
		Title:            "Masáže Praha",
		TitleLength:      12,
		H1Count:          1,
		ImageQuality:     models.ImageQualityUnknown,
	}
	srv, st := newTestServer(t, &stubCollector{details: details})
	handler := srv.Router()

	rec := postAudit(t, handler, `{"url": "https://example.com", "business_type": "massage", "locale": "en"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result models.AuditResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "https://example.com", result.URL)
	assert.Equal(t, models.LocaleEN, result.Locale)
	assert.NotEmpty(t, result.Findings)
	assert.NotEmpty(t, result.Recommendation)
	assert.True(t, result.GeneratedAt.Equal(fixedNow()))
	assert.Greater(t, result.Scores.Total, 0)

	// The run is persisted under the returned ID.
	stored, err := st.GetAudit(result.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Scores, stored.Scores)
}

func TestHandleAuditValidation(t *testing.T) {
	srv, _ := newTestServer(t, &stubCollector{details: &models.AnalysisDetails{}})
	handler := srv.Router()

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"url": `},
		{"missing url", `{"business_type": "massage"}`},
		{"bad business type", `{"url": "https://example.com", "business_type": "bakery"}`},
		{"bad locale", `{"url": "https://example.com", "business_type": "massage", "locale": "fr"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postAudit(t, handler, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

func TestHandleAuditDefaultsLocale(t *testing.T) {
	srv, _ := newTestServer(t, &stubCollector{details: &models.AnalysisDetails{ImageQuality: models.ImageQualityUnknown}})
	rec := postAudit(t, srv.Router(), `{"url": "https://example.com", "business_type": "privat"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result models.AuditResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, models.LocaleCS, result.Locale)
}

func TestHandleAuditCollectorFailure(t *testing.T) {
	srv, _ := newTestServer(t, &stubCollector{err: errors.New("connection refused")})
	rec := postAudit(t, srv.Router(), `{"url": "https://down.example.com", "business_type": "massage"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleGetAudit(t *testing.T) {
	srv, st := newTestServer(t, &stubCollector{details: &models.AnalysisDetails{ImageQuality: models.ImageQualityUnknown}})
	handler := srv.Router()

	require.NoError(t, st.SaveAudit(&models.AuditResult{
		ID:           "run-42",
		URL:          "https://example.com",
		BusinessType: models.BusinessEscort,
		Locale:       models.LocaleDE,
		Scores:       models.AnalysisScores{Total: 55},
		GeneratedAt:  fixedNow(),
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/audits/run-42", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var result models.AuditResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, models.LocaleDE, result.Locale)

	req = httptest.NewRequest(http.MethodGet, "/api/audits/missing", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleListAudits(t *testing.T) {
	srv, st := newTestServer(t, &stubCollector{details: &models.AnalysisDetails{ImageQuality: models.ImageQualityUnknown}})
	handler := srv.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/audits", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	require.NoError(t, st.SaveAudit(&models.AuditResult{
		ID: "run-1", URL: "https://example.com",
		BusinessType: models.BusinessMassage, Locale: models.LocaleCS,
		Scores: models.AnalysisScores{Total: 30}, GeneratedAt: fixedNow(),
	}))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/audits", nil))
	var summaries []store.AuditSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, 30, summaries[0].TotalScore)
}

func TestHandlePackages(t *testing.T) {
	srv, _ := newTestServer(t, &stubCollector{details: &models.AnalysisDetails{ImageQuality: models.ImageQualityUnknown}})
	handler := srv.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/packages?locale=en", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var views []struct {
		ID    models.PackageID `json:"id"`
		Price string           `json:"price"`
		Text  string           `json:"text"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 3)
	assert.Equal(t, models.PackageBasic, views[0].ID)
	assert.Contains(t, views[0].Price, "Kč")
	assert.NotEmpty(t, views[0].Text)

	req = httptest.NewRequest(http.MethodGet, "/api/packages?locale=xx", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, &stubCollector{details: &models.AnalysisDetails{ImageQuality: models.ImageQualityUnknown}})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
