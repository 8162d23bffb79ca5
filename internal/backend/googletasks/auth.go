package googletasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"taskcli/internal/config"
)

const (
	// OAuth scope for Google Tasks
	tasksScope = "https://www.googleapis.com/auth/tasks"

	// CallbackTimeout bounds how long Authorize waits for the browser.
	CallbackTimeout = 5 * time.Minute

	tokenExchangeTimeout = 30 * time.Second
	tokenCheckTimeout    = 10 * time.Second

	// Local callback ports tried in order.
	callbackStartPort   = 8085
	callbackMaxAttempts = 5
)

// LoadOAuthConfig reads oauth_client.json from the config directory.
func LoadOAuthConfig(cfg *config.Config) (*oauth2.Config, error) {
	clientJSON, err := os.ReadFile(cfg.OAuthClientPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read oauth_client.json: %w", err)
	}
	oauthConfig, err := google.ConfigFromJSON(clientJSON, tasksScope)
	if err != nil {
		return nil, fmt.Errorf("invalid oauth_client.json: %w", err)
	}
	return oauthConfig, nil
}

// Authorize runs the desktop OAuth flow: it prints the consent URL to prompt,
// waits for the redirect on a local port and exchanges the code (with PKCE)
// for a token.
func Authorize(ctx context.Context, oauthConfig *oauth2.Config, prompt io.Writer) (*oauth2.Token, error) {
	port, listener, err := listenCallback()
	if err != nil {
		return nil, errors.New("could not bind to local port for OAuth callback")
	}
	defer listener.Close()

	cfg := *oauthConfig
	cfg.RedirectURL = fmt.Sprintf("http://localhost:%d/callback", port)

	verifier := oauth2.GenerateVerifier()
	authURL := cfg.AuthCodeURL("state",
		oauth2.AccessTypeOffline,
		oauth2.S256ChallengeOption(verifier),
	)

	fmt.Fprintln(prompt, "Open this URL in your browser:")
	fmt.Fprintln(prompt, authURL)

	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "No code in callback", http.StatusBadRequest)
			select {
			case errCh <- errors.New("no code in callback"):
			default:
			}
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, "<html><body><h1>Authentication successful</h1><p>You may close this window.</p></body></html>")
		select {
		case codeCh <- code:
		default:
		}
	})

	server := &http.Server{Handler: mux}
	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			select {
			case errCh <- err:
			default:
			}
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	var code string
	select {
	case code = <-codeCh:
	case err := <-errCh:
		return nil, err
	case <-time.After(CallbackTimeout):
		return nil, errors.New("oauth callback timed out")
	case <-ctx.Done():
		return nil, errors.New("cancelled")
	}

	exchangeCtx, cancel := context.WithTimeout(ctx, tokenExchangeTimeout)
	defer cancel()

	token, err := cfg.Exchange(exchangeCtx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}
	return token, nil
}

// listenCallback binds the first free port starting at callbackStartPort.
func listenCallback() (int, net.Listener, error) {
	for i := 0; i < callbackMaxAttempts; i++ {
		port := callbackStartPort + i
		listener, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", port))
		if err == nil {
			return port, listener, nil
		}
	}
	return 0, nil, errors.New("no available port found")
}

// TokenValid reports whether the stored token has a refresh token and can
// still produce an access token.
func TokenValid(cfg *config.Config) bool {
	data, err := os.ReadFile(cfg.TokenPath())
	if err != nil {
		return false
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return false
	}
	if token.RefreshToken == "" {
		return false
	}

	oauthConfig, err := LoadOAuthConfig(cfg)
	if err != nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), tokenCheckTimeout)
	defer cancel()

	_, err = oauthConfig.TokenSource(ctx, &token).Token()
	return err == nil
}

// SaveToken writes token to path with mode 0600.
func SaveToken(path string, token *oauth2.Token) error {
	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
