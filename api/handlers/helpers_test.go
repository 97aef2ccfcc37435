package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/haemo-report-api/api/handlers"
	"github.com/linesmerrill/haemo-report-api/models"
	"github.com/linesmerrill/haemo-report-api/records"
)

var fixedNow = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

// newApp builds an app over store with the clock frozen at fixedNow
func newApp(store records.Store) *handlers.App {
	a := &handlers.App{
		Store: store,
		Now:   func() time.Time { return fixedNow },
	}
	a.Router = a.New()
	return a
}

func demoApp() *handlers.App {
	return newApp(records.NewMemoryStore(records.DemoCases()...))
}

func executeRequest(a *handlers.App, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)
	return rr
}

func checkResponseCode(t *testing.T, expected, actual int) {
	t.Helper()
	if expected != actual {
		t.Errorf("Expected response code %d. Got %d\n", expected, actual)
	}
}

func loginAs(t *testing.T, a *handlers.App, role models.Role) string {
	t.Helper()
	body := `{"email":"staff@example.com","password":"pw","role":"` + string(role) + `"}`
	req, err := http.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(body))
	require.NoError(t, err)

	rr := executeRequest(a, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Token
}

func authedRequest(t *testing.T, method, url, token string, body io.Reader) *http.Request {
	t.Helper()
	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

type failingStore struct{}

func (failingStore) Append(context.Context, models.PatientCase) (models.PatientCase, error) {
	return models.PatientCase{}, errors.New("mocked-error")
}

func (failingStore) All(context.Context) ([]models.PatientCase, error) {
	return nil, errors.New("mocked-error")
}
