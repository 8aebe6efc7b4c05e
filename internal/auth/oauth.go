// AngelaMos | 2026
// oauth.go

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/DidierALSFRESHFOOD/als-fresh-food-backup/internal/config"
)

const sessionIDHeader = "X-Session-ID"

// OAuthSession is the identity returned by the session-exchange service.
// SessionToken becomes the user's opaque session credential.
type OAuthSession struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}

type SessionExchanger interface {
	Exchange(ctx context.Context, sessionID string) (*OAuthSession, error)
}

type OAuthClient struct {
	url    string
	client *http.Client
}

func NewOAuthClient(cfg config.OAuthConfig) *OAuthClient {
	return &OAuthClient{
		url:    cfg.SessionURL,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *OAuthClient) Exchange(
	ctx context.Context,
	sessionID string,
) (*OAuthSession, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set(sessionIDHeader, sessionID)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call session service: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		//nolint:errcheck // body is only used for the error text
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf(
			"session service returned %d: %s",
			resp.StatusCode,
			body,
		)
	}

	var session OAuthSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("decode session data: %w", err)
	}

	if session.Email == "" || session.SessionToken == "" {
		return nil, errors.New("session data missing email or session_token")
	}
	if session.Name == "" {
		session.Name = session.Email
	}

	return &session, nil
}
