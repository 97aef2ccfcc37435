package config

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/linesmerrill/haemo-report-api/models"
)

const (
	defaultReportSchedule = "0 6 * * 1"
	defaultRateLimit      = 100
)

// Config holds the project config values
type Config struct {
	URL              string
	DatabaseName     string
	BaseURL          string
	Port             string
	Env              string
	JWTSecret        string
	SendgridAPIKey   string
	ReportRecipients []string
	ReportSchedule   string
	RateLimit        int
	SeedDemoData     bool
}

// New sets up all config related services
func New() *Config {
	// a missing .env is fine, the environment may already be populated
	_ = godotenv.Load()

	env := os.Getenv("ENV")
	if _, err := setLogger(env); err != nil {
		zap.S().With(err).Error("failed to set logger, keeping the default")
	}

	return &Config{
		URL:              os.Getenv("DB_URI"),
		DatabaseName:     os.Getenv("DB_NAME"),
		BaseURL:          os.Getenv("BASE_URL"),
		Port:             getEnv("PORT", "8080"),
		Env:              env,
		JWTSecret:        os.Getenv("JWT_SECRET"),
		SendgridAPIKey:   os.Getenv("SENDGRID_API_KEY"),
		ReportRecipients: splitList(os.Getenv("REPORT_RECIPIENTS")),
		ReportSchedule:   getEnv("REPORT_SCHEDULE", defaultReportSchedule),
		RateLimit:        getEnvInt("RATE_LIMIT", defaultRateLimit),
		SeedDemoData:     getEnvBool("SEED_DEMO_DATA", true),
	}
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	resp := models.ErrorMessageResponse{Response: models.MessageError{Message: message}}
	if err != nil {
		resp.Response.Error = err.Error()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	b, _ := json.Marshal(resp)
	_, _ = w.Write(b)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
