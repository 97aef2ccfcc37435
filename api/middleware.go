package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shaj13/go-guardian/auth"
	"github.com/shaj13/go-guardian/auth/strategies/bearer"
	"github.com/shaj13/go-guardian/store"
	"go.uber.org/zap"

	"github.com/linesmerrill/haemo-report-api/config"
	"github.com/linesmerrill/haemo-report-api/models"
	"github.com/linesmerrill/haemo-report-api/records"
)

// TokenTTL is how long a login token stays valid
const TokenTTL = 24 * time.Hour

// hospital staff are always attached to this unit until hospitals have accounts
const defaultHospitalName = "City General Hospital"

// SessionClaims are signed into every login token
type SessionClaims struct {
	Role         models.Role `json:"role"`
	HospitalName string      `json:"hospital,omitempty"`
	jwt.RegisteredClaims
}

// Authorizer issues, checks and revokes login tokens. Issued tokens are kept
// in the go-guardian bearer cache so logout can revoke them before expiry.
type Authorizer struct {
	secret        []byte
	authenticator auth.Authenticator
	strategy      auth.Strategy
	now           func() time.Time
}

// NewAuthorizer sets up go-guardian with a cached bearer strategy. Without a
// secret a random one is used, so tokens do not survive a restart.
func NewAuthorizer(secret string) *Authorizer {
	if secret == "" {
		zap.S().Warn("JWT_SECRET is not set, using a per-process secret")
		secret = uuid.New().String()
	}

	cache := store.NewFIFO(context.Background(), TokenTTL)
	tokenStrategy := bearer.New(bearer.NoOpAuthenticate, cache)
	authenticator := auth.New()
	authenticator.EnableStrategy(bearer.CachedStrategyKey, tokenStrategy)

	return &Authorizer{
		secret:        []byte(secret),
		authenticator: authenticator,
		strategy:      tokenStrategy,
		now:           time.Now,
	}
}

// LoginHandler accepts any well formed credentials for either role and returns a bearer token
func (a *Authorizer) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}
	if err := records.Validator().Struct(req); err != nil {
		config.ErrorStatus("invalid credentials", http.StatusUnauthorized, w, err)
		return
	}

	user := models.SessionUser{
		Email: req.Email,
		Name:  strings.Split(req.Email, "@")[0],
		Role:  req.Role,
	}
	if req.Role == models.RoleHospital {
		user.HospitalName = defaultHospitalName
	}

	now := a.now()
	claims := SessionClaims{
		Role:         user.Role,
		HospitalName: user.HospitalName,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		config.ErrorStatus("token generation failed", http.StatusInternalServerError, w, err)
		return
	}

	info := auth.NewDefaultUser(user.Email, claims.ID, []string{string(user.Role)}, nil)
	if err := auth.Append(a.strategy, signed, info, r); err != nil {
		config.ErrorStatus("failed to store token", http.StatusInternalServerError, w, err)
		return
	}

	zap.S().Infow("user logged in", "email", user.Email, "role", user.Role)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(models.LoginResponse{Token: signed, User: user})
}

// LogoutHandler revokes the token the request was made with
func (a *Authorizer) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := auth.Revoke(a.strategy, bearerToken(r), r); err != nil {
		config.ErrorStatus("failed to revoke token", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"revoked": true}`))
}

// Middleware rejects requests without a live login token and stores the
// token's claims on the request context. Websocket clients may pass the
// token as the "token" query parameter.
func (a *Authorizer) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			if t := r.URL.Query().Get("token"); t != "" {
				r.Header.Set("Authorization", "Bearer "+t)
			}
		}

		user, err := a.authenticator.Authenticate(r)
		if err != nil {
			zap.S().Errorw("unauthorized",
				"url", r.URL)
			unauthorized(w)
			return
		}

		claims, err := a.parse(bearerToken(r))
		if err != nil {
			zap.S().Errorw("unauthorized",
				"url", r.URL,
				"error", err)
			unauthorized(w)
			return
		}

		zap.S().Debugf("User %s Authenticated", user.UserName())
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), claims)))
	})
}

// RequireRole only lets through sessions holding one of roles. It must run
// after Middleware.
func RequireRole(roles ...models.Role) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := SessionFrom(r.Context())
			if ok {
				for _, role := range roles {
					if claims.Role == role {
						next.ServeHTTP(w, r)
						return
					}
				}
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error": "forbidden"}`))
		})
	}
}

func (a *Authorizer) parse(token string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(a.now))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return claims, nil
}

func bearerToken(r *http.Request) string {
	return strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error": "unauthorized"}`))
}
