package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/haemo-report-api/models"
)

func TestPatientFeed_BroadcastsRegistrations(t *testing.T) {
	a := demoApp()
	server := httptest.NewServer(a.Router)
	defer server.Close()

	token := loginAs(t, a, models.RoleHospital)
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/patients?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return a.Feed.Clients() == 1 }, time.Second, 10*time.Millisecond)

	response := executeRequest(a, authedRequest(t, "POST", "/api/v1/patients", token, strings.NewReader(newPatientBody)))
	checkResponseCode(t, http.StatusCreated, response.Code)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg struct {
		Event string `json:"event"`
		Data  struct {
			Patient    models.PatientCase `json:"patient"`
			Statistics models.Statistics  `json:"statistics"`
		} `json:"data"`
	}
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &msg))

	assert.Equal(t, "patient_registered", msg.Event)
	assert.Equal(t, "P004", msg.Data.Patient.ID)
	assert.Equal(t, 4, msg.Data.Statistics.TotalCases)
}

func TestPatientFeed_ClientLeaves(t *testing.T) {
	a := demoApp()
	server := httptest.NewServer(a.Router)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/patients?token=" + loginAs(t, a, models.RoleHealthService)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return a.Feed.Clients() == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return a.Feed.Clients() == 0 }, time.Second, 10*time.Millisecond)
}
