package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jhsobrinho/educareapp-sub012/internal/models"
	"github.com/jhsobrinho/educareapp-sub012/internal/repository"
	"github.com/jhsobrinho/educareapp-sub012/internal/security"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	UserIDContextKey ContextKey = "userID"
	ChildContextKey  ContextKey = "child"
)

// Middleware holds dependencies for middleware functions
type Middleware struct {
	jwtSecret []byte
	childRepo *repository.ChildRepository
	limiter   *security.RateLimiter
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(jwtSecret string, childRepo *repository.ChildRepository, limiter *security.RateLimiter) *Middleware {
	return &Middleware{
		jwtSecret: []byte(jwtSecret),
		childRepo: childRepo,
		limiter:   limiter,
	}
}

// RequireAuth validates the bearer token and stores the user id in the
// request context. Tokens are issued by the account service; this core
// only verifies them.
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			respondWithError(w, http.StatusUnauthorized, "Missing bearer token", "", nil)
			return
		}

		userID, err := m.parseToken(token)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "Invalid token", "Token validation failed", err)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDContextKey, userID)
		next(w, r.WithContext(ctx))
	}
}

// parseToken validates an HS256 token and extracts the user id subject
func (m *Middleware) parseToken(token string) (int64, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))

	claims := &jwt.RegisteredClaims{}
	parsed, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return m.jwtSecret, nil
	})
	if err != nil {
		return 0, err
	}
	if !parsed.Valid {
		return 0, jwt.ErrTokenUnverifiable
	}

	return strconv.ParseInt(claims.Subject, 10, 64)
}

// RequireChild resolves the {childID} path parameter and verifies the
// child belongs to the authenticated user. An unknown or foreign child
// responds 404 so child ids cannot be probed.
func (m *Middleware) RequireChild(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := GetUserIDFromContext(r.Context())

		childID, err := strconv.ParseInt(r.PathValue("childID"), 10, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid child ID", "", nil)
			return
		}

		child, err := m.childRepo.GetChildForUser(childID, userID)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Something went wrong", "Child lookup failed", err)
			return
		}
		if child == nil {
			respondWithError(w, http.StatusNotFound, "Not found", "", nil)
			return
		}

		ctx := context.WithValue(r.Context(), ChildContextKey, child)
		next(w, r.WithContext(ctx))
	}
}

// RateLimit rejects requests exceeding the per-client budget
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !m.limiter.Allow(security.ClientIP(r)) {
			respondWithError(w, http.StatusTooManyRequests, "Too many requests", "", nil)
			return
		}
		next(w, r)
	}
}

// GetUserIDFromContext retrieves the authenticated user id
func GetUserIDFromContext(ctx context.Context) int64 {
	if userID, ok := ctx.Value(UserIDContextKey).(int64); ok {
		return userID
	}
	return 0
}

// GetChildFromContext retrieves the authorized child profile
func GetChildFromContext(ctx context.Context) *models.Child {
	if child, ok := ctx.Value(ChildContextKey).(*models.Child); ok {
		return child
	}
	return nil
}

// Logging middleware logs HTTP requests with a request id
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()

		next.ServeHTTP(w, r)

		log.Printf("%s %s %s %v [%s]", r.Method, r.URL.Path, r.RemoteAddr, time.Since(start), requestID)
	})
}
