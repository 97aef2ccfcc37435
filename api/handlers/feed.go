package handlers

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/linesmerrill/haemo-report-api/api"
)

// EventPatientRegistered is sent to every feed client when a case is registered
const EventPatientRegistered = "patient_registered"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// PatientFeed keeps the open dashboard connections (conn -> user email)
type PatientFeed struct {
	clients map[*websocket.Conn]string
	mutex   sync.Mutex
}

// NewPatientFeed returns a feed with no clients
func NewPatientFeed() *PatientFeed {
	return &PatientFeed{clients: make(map[*websocket.Conn]string)}
}

// PatientFeedWebSocket upgrades the request and holds the connection open
// until the client goes away. It must run behind the auth middleware.
func (f *PatientFeed) PatientFeedWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Errorw("websocket upgrade error", "error", err)
		return
	}

	user := ""
	if claims, ok := api.SessionFrom(r.Context()); ok {
		user = claims.Subject
	}

	f.mutex.Lock()
	f.clients[conn] = user
	f.mutex.Unlock()
	zap.S().Infof("User %s connected to /ws/patients", user)

	defer f.remove(conn)

	// Keep connection alive
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

// Broadcast sends event to every connected client, dropping clients that fail
func (f *PatientFeed) Broadcast(event string, data interface{}) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	zap.S().Debugf("Broadcasting %s to %d connected users", event, len(f.clients))

	for conn, user := range f.clients {
		err := conn.WriteJSON(map[string]interface{}{
			"event": event,
			"data":  data,
		})
		if err != nil {
			zap.S().Errorw("error broadcasting to user",
				"user", user,
				"event", event,
				"error", err)
			delete(f.clients, conn)
			conn.Close()
		}
	}
}

// Clients returns the number of open connections
func (f *PatientFeed) Clients() int {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return len(f.clients)
}

func (f *PatientFeed) remove(conn *websocket.Conn) {
	f.mutex.Lock()
	user, ok := f.clients[conn]
	delete(f.clients, conn)
	f.mutex.Unlock()

	conn.Close()
	if ok {
		zap.S().Infof("User %s disconnected from /ws/patients", user)
	}
}
