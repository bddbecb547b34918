// Package auth provides optional bearer-token authentication for the
// history API. The A2A webhook itself stays public: Telex calls it without
// credentials.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/coreos/go-oidc"

	"github.com/Adewale-tech/telex-dictionary-agent/internal/config"
	"github.com/Adewale-tech/telex-dictionary-agent/internal/logging"
)

type contextKey string

// SubjectKey is the request context key under which the authenticated
// subject is stored.
const SubjectKey contextKey = "auth_subject"

// Auth verifies OIDC access tokens presented as bearer credentials.
type Auth struct {
	verifier   *oidc.IDTokenVerifier
	logger     *logging.Logger
	authBypass bool
}

// New creates a new Auth object from the application configuration. When
// auth is disabled or bypassed in dev mode, verification is skipped
// entirely.
func New(ctx context.Context, cfg *config.Config, logger *logging.Logger) (*Auth, error) {
	isDev := strings.ToUpper(cfg.Environment) == "DEV"
	shouldBypass := !cfg.Auth.Enable || (isDev && cfg.Auth.DevModeBypass)

	var verifier *oidc.IDTokenVerifier

	if !shouldBypass {
		if cfg.Auth.Issuer == "" {
			return nil, errors.New("auth enabled but no issuer configured")
		}

		provider, err := oidc.NewProvider(ctx, cfg.Auth.Issuer)
		if err != nil {
			return nil, err
		}

		// Access tokens often carry a different audience than the client ID
		// (e.g. "api://default"), so the client ID check is skipped.
		verifier = provider.Verifier(&oidc.Config{SkipClientIDCheck: true})
	}

	return &Auth{
		verifier:   verifier,
		logger:     logger,
		authBypass: shouldBypass,
	}, nil
}

// RequireAuth is middleware that ensures a valid bearer token is present on
// the request. The token subject is injected into the request context.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var subject string

		if a.authBypass {
			subject = "dev@localhost"
		} else {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}
			rawToken := strings.TrimPrefix(authHeader, "Bearer ")

			token, err := a.verifier.Verify(r.Context(), rawToken)
			if err != nil {
				http.Error(w, "invalid token: "+err.Error(), http.StatusUnauthorized)
				return
			}

			var claims struct {
				Sub   string `json:"sub"`
				Email string `json:"email"`
			}
			if err := token.Claims(&claims); err != nil {
				http.Error(w, "failed to parse token claims", http.StatusUnauthorized)
				return
			}
			subject = claims.Sub
			if claims.Email != "" {
				subject = claims.Email
			}
		}

		ctx := context.WithValue(r.Context(), SubjectKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
