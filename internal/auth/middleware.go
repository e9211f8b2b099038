package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"jewelry-production-service/internal/apperr"
	"jewelry-production-service/internal/entity"
	"jewelry-production-service/internal/logger"
)

type contextKey struct{}

// UserLookup loads the user a token refers to.
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*entity.User, error)
}

// Middleware rejects requests without a valid bearer token for an active user with 401
// and stores the user in the request context otherwise.
func Middleware(tokens *TokenService, users UserLookup, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			parts := strings.Fields(r.Header.Get("Authorization"))
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				unauthorized(w)
				return
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				log.Debug("token rejected", "err", err)
				unauthorized(w)
				return
			}

			user, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				if apperr.IsNotFound(err) {
					unauthorized(w)
					return
				}
				log.Error("auth user lookup failed", "user_id", claims.UserID, "err", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"message": "internal error"})
				return
			}
			if !user.IsActive {
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="jewelry-production"`)
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "unauthorized"})
}

func WithUser(ctx context.Context, u *entity.User) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

func UserFromContext(ctx context.Context) (*entity.User, bool) {
	u, ok := ctx.Value(contextKey{}).(*entity.User)
	return u, ok && u != nil
}

// ActorFromContext returns the identity services authorize against.
func ActorFromContext(ctx context.Context) (entity.Actor, bool) {
	u, ok := UserFromContext(ctx)
	if !ok {
		return entity.Actor{}, false
	}
	return entity.Actor{ID: u.ID, Role: u.Role}, true
}
