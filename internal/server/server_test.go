package server

import (
	"bytes"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/labourrate/internal/calculation"
	"github.com/rgehrsitz/labourrate/internal/config"
	"github.com/rgehrsitz/labourrate/internal/domain"
)

type recordingLogger struct {
	mu    sync.Mutex
	infos []string
}

func (l *recordingLogger) Debugf(string, ...any) {}
func (l *recordingLogger) Infof(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Warnf(string, ...any)  {}
func (l *recordingLogger) Errorf(string, ...any) {}

func newTestServer(t *testing.T) (*httptest.Server, *recordingLogger) {
	t.Helper()
	logger := &recordingLogger{}
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger)

	s := New(engine, config.DefaultSettings())
	s.now = func() time.Time { return time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC) }

	ts := httptest.NewServer(s.Routes())
	t.Cleanup(ts.Close)
	return ts, logger
}

func scenarioBody(t *testing.T, markup float64) []byte {
	t.Helper()
	state := domain.CalculatorState{
		Wage: domain.WageData{WeeklyGross: 1000, HolidayLoad: 17.5, WorkCover: 5, Superannuation: 11, LSL: 1},
		Time: domain.TimeData{AnnualLeaveDays: 20, SickDays: 10, PublicHolidays: 10, StandardHoursPerDay: 8},
		Overheads: []domain.OverheadSection{
			{Title: "Vehicle Costs", Items: []domain.OverheadItem{{ID: "v1", Name: "Fuel", Qty: 2, UnitCost: 100}}},
		},
		MarkupPercent: markup,
	}
	data, err := json.Marshal(state)
	require.NoError(t, err)
	return data
}

func post(t *testing.T, url string, body []byte) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealthz(t *testing.T) {
	ts, logger := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])

	logger.mu.Lock()
	defer logger.mu.Unlock()
	require.NotEmpty(t, logger.infos)
	assert.Contains(t, logger.infos[len(logger.infos)-1], "GET /healthz 200")
}

func TestDefaults(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/defaults")
	require.NoError(t, err)
	defer resp.Body.Close()

	var state domain.CalculatorState
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
	defaults := domain.DefaultState()
	assert.Equal(t, defaults.Wage, state.Wage)
	assert.Equal(t, defaults.Time, state.Time)
	require.Len(t, state.Overheads, len(defaults.Overheads))
	assert.Equal(t, defaults.Overheads[0].Title, state.Overheads[0].Title)
}

func TestParameters(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/parameters")
	require.NoError(t, err)
	defer resp.Body.Close()

	var params []domain.ParameterInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&params))
	assert.Len(t, params, len(domain.Parameters()))
}

func TestCalculate(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := post(t, ts.URL+"/api/calculate", scenarioBody(t, 0))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body calculateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.InDelta(t, 61540, body.Results.TotalLabourCost, 1e-9)
	assert.InDelta(t, 1760, body.Results.AnnualBillableHours, 1e-9)
	assert.InDelta(t, 61740.0/1760.0, body.Results.FinalHourlyRate, 1e-9)
	assert.NotEmpty(t, body.Breakdown.Labour)
	assert.Empty(t, body.Warnings)
}

func TestCalculate_BadRequests(t *testing.T) {
	ts, _ := newTestServer(t)

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"empty", "", "request body is empty"},
		{"malformed", "{not json", "failed to parse JSON"},
		{"invalid state", `{"overheads":[{"title":"","items":[]}]}`, "configuration validation failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, ts.URL+"/api/calculate", []byte(tt.body))
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body errorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, http.StatusBadRequest, body.Status)
			assert.Contains(t, body.Message, tt.message)
		})
	}
}

func TestReport(t *testing.T) {
	ts, _ := newTestServer(t)

	tests := []struct {
		format      string
		contentType string
		contains    string
	}{
		{"", "text/html", "<h1>Labour Costing Report</h1>"},
		{"markdown", "text/markdown", "# Labour Costing Report"},
		{"console", "text/plain", "Student: Sam Carter"},
		{"csv", "text/csv", "Stage,Field,Value"},
		{"json", "application/json", `"studentName":"Sam Carter"`},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			resp := post(t, ts.URL+"/api/report?student=Sam+Carter&format="+tt.format, scenarioBody(t, 20))
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), tt.contentType))

			var buf bytes.Buffer
			_, err := buf.ReadFrom(resp.Body)
			require.NoError(t, err)
			assert.Contains(t, strings.ReplaceAll(buf.String(), "\": \"", "\":\""), tt.contains)
		})
	}
}

func TestReport_UnknownFormat(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := post(t, ts.URL+"/api/report?format=pdf", scenarioBody(t, 0))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMarkup(t *testing.T) {
	ts, _ := newTestServer(t)

	target := 61740.0 / 1760.0 * 1.5
	resp := post(t, fmt.Sprintf("%s/api/markup?target=%v", ts.URL, target), scenarioBody(t, 0))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body markupResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.InDelta(t, 50, body.MarkupPercent, 1e-9)
	assert.InDelta(t, target, body.Results.FinalHourlyRate, 1e-9)
}

func TestMarkup_Errors(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := post(t, ts.URL+"/api/markup?target=abc", scenarioBody(t, 0))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = post(t, ts.URL+"/api/markup?target=60", []byte(`{}`))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestMarkup_InvalidTarget(t *testing.T) {
	ts, _ := newTestServer(t)

	for _, target := range []string{"", "abc", "0", "-5", "NaN", "Inf", "-Inf"} {
		t.Run("target="+target, func(t *testing.T) {
			resp := post(t, ts.URL+"/api/markup?target="+target, scenarioBody(t, 0))
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var body errorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, "target must be a positive hourly rate", body.Message)
		})
	}
}

func overflowBody(t *testing.T) []byte {
	t.Helper()
	var state domain.CalculatorState
	require.NoError(t, json.Unmarshal(scenarioBody(t, 20), &state))
	state.Wage.WeeklyGross = 1e308
	data, err := json.Marshal(state)
	require.NoError(t, err)
	return data
}

func TestOverflowingInputs(t *testing.T) {
	ts, _ := newTestServer(t)

	paths := []string{
		"/api/calculate",
		"/api/report?format=html",
		"/api/report?format=json",
		"/api/markup?target=60",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			resp := post(t, ts.URL+path, overflowBody(t))
			require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

			var body errorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Contains(t, body.Message, "too large")
		})
	}
}

func TestWriteJSON_EncodingFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]float64{"rate": math.NaN()})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "failed to encode response")
}
