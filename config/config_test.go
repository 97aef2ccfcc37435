package config

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"github.com/linesmerrill/haemo-report-api/models"
)

func TestNew(t *testing.T) {
	t.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	t.Setenv("DB_NAME", "test")
	conf := New()

	assert.NotEmpty(t, conf)
	assert.Equal(t, "mongodb://127.0.0.1:27017", conf.URL)
	assert.Equal(t, "test", conf.DatabaseName)
}

func TestNewDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("REPORT_SCHEDULE", "")
	t.Setenv("RATE_LIMIT", "nope")
	t.Setenv("SEED_DEMO_DATA", "")
	conf := New()

	assert.Equal(t, "8080", conf.Port)
	assert.Equal(t, defaultReportSchedule, conf.ReportSchedule)
	assert.Equal(t, defaultRateLimit, conf.RateLimit)
	assert.True(t, conf.SeedDemoData)
}

func TestNewReportRecipients(t *testing.T) {
	t.Setenv("REPORT_RECIPIENTS", "a@moh.gov, b@moh.gov,,")
	conf := New()

	assert.Equal(t, []string{"a@moh.gov", "b@moh.gov"}, conf.ReportRecipients)
}

func TestErrorStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorStatus("error it borked", http.StatusBadRequest, rr, errors.New("bad request"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var got models.ErrorMessageResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "error it borked", got.Response.Message)
	assert.Equal(t, "bad request", got.Response.Error)
}

func TestSetLoggerSetsDevelopmentLogger(t *testing.T) {
	l, err := setLogger("development")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestSetLoggerSetsProductionLogger(t *testing.T) {
	l, err := setLogger("production")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.ErrorLevel))
}

func TestSetLoggerSetsLocalLogger(t *testing.T) {
	l, err := setLogger("local")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}
