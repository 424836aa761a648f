package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/coreos/go-oidc/v3/oidc"
)

// Auth returns middleware that validates bearer tokens against the configured
// OIDC issuer. When disabled, requests pass through untouched. The verifier is
// initialized lazily on first use so server startup does not depend on issuer
// availability.
func Auth(ctx context.Context, cfg *AuthConfig) func(http.Handler) http.Handler {
	var (
		mu       sync.Mutex
		verifier *oidc.IDTokenVerifier
	)

	// Concurrent requests race to initialize; the first success wins and a
	// failed attempt is retried on the next request.
	getVerifier := func() (*oidc.IDTokenVerifier, error) {
		mu.Lock()
		defer mu.Unlock()

		if verifier == nil {
			provider, err := oidc.NewProvider(ctx, cfg.Issuer)
			if err != nil {
				return nil, fmt.Errorf("initialize oidc provider: %w", err)
			}
			verifier = provider.Verifier(&oidc.Config{ClientID: cfg.Audience})
		}
		return verifier, nil
	}

	verify := func(r *http.Request) error {
		token, err := bearerToken(r)
		if err != nil {
			return err
		}

		v, err := getVerifier()
		if err != nil {
			return err
		}

		if _, err := v.Verify(r.Context(), token); err != nil {
			return fmt.Errorf("verify token: %w", err)
		}
		return nil
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled {
				next.ServeHTTP(w, r)
				return
			}

			if err := verify(r); err != nil {
				w.Header().Set("WWW-Authenticate", "Bearer")
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", fmt.Errorf("missing authorization header")
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", fmt.Errorf("malformed authorization header")
	}
	return token, nil
}
