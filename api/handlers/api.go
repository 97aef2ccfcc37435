package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/linesmerrill/haemo-report-api/api"
	"github.com/linesmerrill/haemo-report-api/api/handlers/search"
	"github.com/linesmerrill/haemo-report-api/config"
	"github.com/linesmerrill/haemo-report-api/databases"
	"github.com/linesmerrill/haemo-report-api/models"
	"github.com/linesmerrill/haemo-report-api/records"
)

// requestTimeout bounds every /api/v1 request
const requestTimeout = 30 * time.Second

// App stores the router and the patient store, so it can be reused
type App struct {
	Router  *mux.Router
	Config  config.Config
	Store   records.Store
	Auth    *api.Authorizer
	Feed    *PatientFeed
	Metrics *api.MetricsCollector
	Now     func() time.Time

	client databases.ClientHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	a.defaults()

	r := mux.NewRouter()
	r.Use(api.MetricsMiddleware(a.Metrics))

	p := Patient{Store: a.Store, Feed: a.Feed, Now: a.Now}
	ps := search.Patient{Store: a.Store}
	s := Statistics{Store: a.Store}
	prov := Province{Store: a.Store}

	hospitalOnly := api.RequireRole(models.RoleHospital)
	healthServiceOnly := api.RequireRole(models.RoleHealthService)

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	// websocket routes are hijacked, so they stay outside the timeout
	r.Handle("/ws/patients", a.Auth.Middleware(http.HandlerFunc(a.Feed.PatientFeedWebSocket))).Methods("GET")

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.Use(api.TimeoutMiddleware(requestTimeout))

	apiCreate.HandleFunc("/auth/login", a.Auth.LoginHandler).Methods("POST")
	apiCreate.Handle("/auth/logout", a.Auth.Middleware(http.HandlerFunc(a.Auth.LogoutHandler))).Methods("DELETE")
	apiCreate.Handle("/diagnoses", a.Auth.Middleware(http.HandlerFunc(diagnosesHandler))).Methods("GET")
	apiCreate.Handle("/patients", a.Auth.Middleware(hospitalOnly(http.HandlerFunc(p.CreatePatientHandler)))).Methods("POST")
	apiCreate.Handle("/patients", a.Auth.Middleware(http.HandlerFunc(ps.PatientSearchHandler))).Methods("GET")
	apiCreate.Handle("/patients/export", a.Auth.Middleware(http.HandlerFunc(p.ExportPatientsHandler))).Methods("GET")
	apiCreate.Handle("/statistics", a.Auth.Middleware(http.HandlerFunc(s.StatisticsHandler))).Methods("GET")
	apiCreate.Handle("/province/overview", a.Auth.Middleware(healthServiceOnly(http.HandlerFunc(prov.OverviewHandler)))).Methods("GET")
	apiCreate.Handle("/hospitals", a.Auth.Middleware(healthServiceOnly(http.HandlerFunc(prov.HospitalsHandler)))).Methods("GET")
	apiCreate.Handle("/metrics", a.Auth.Middleware(metricsHandler(a.Metrics))).Methods("GET")

	return r
}

// Handler is the router behind CORS and the per-IP rate limit, as served by main
func (a *App) Handler() http.Handler {
	var h http.Handler = a.Router
	if a.Config.RateLimit > 0 {
		h = api.RateLimit(a.Config.RateLimit)(h)
	}
	return api.CORS()(h)
}

// Initialize is invoked by main to pick the patient store and create a router.
// With DB_URI set, cases are kept in mongo; otherwise they live in memory.
func (a *App) Initialize() error {
	var seed []models.PatientCase
	if a.Config.SeedDemoData {
		seed = records.DemoCases()
	}

	if a.Config.URL == "" {
		a.Store = records.NewMemoryStore(seed...)
		zap.S().Info("haemo-report-api is using the in-memory patient store")
		a.initializeRoutes()
		return nil
	}

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()

	if err = client.Connect(ctx); err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	a.client = client
	zap.S().Info("haemo-report-api has connected to the database")

	store := records.NewMongoStore(databases.NewPatientDatabase(databases.NewDatabase(&a.Config, client)))
	if err = store.Seed(ctx, seed); err != nil {
		zap.S().With(err).Error("failed to seed demo patients")
		return err
	}
	a.Store = store

	// initialize api router
	a.initializeRoutes()
	return nil
}

// Close releases the database connection, if one was opened
func (a *App) Close(ctx context.Context) error {
	if a.client == nil {
		return nil
	}
	return a.client.Disconnect(ctx)
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func (a *App) defaults() {
	if a.Store == nil {
		a.Store = records.NewMemoryStore()
	}
	if a.Auth == nil {
		a.Auth = api.NewAuthorizer(a.Config.JWTSecret)
	}
	if a.Feed == nil {
		a.Feed = NewPatientFeed()
	}
	if a.Metrics == nil {
		a.Metrics = api.NewMetricsCollector()
	}
	if a.Now == nil {
		a.Now = time.Now
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}

// writeJSON marshals v and writes it with status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}
