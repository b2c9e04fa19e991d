// Package googleauth turns a Google credentials file into an oauth2 token source.
// Service account keys are used directly; OAuth desktop ("installed") credentials
// need a token saved by scripts/gcal-auth.
package googleauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// DefaultTokenPath is where scripts/gcal-auth writes the desktop token.
const DefaultTokenPath = "token.json"

// Scopes requested by this service.
var Scopes = []string{calendar.CalendarEventsScope, sheets.SpreadsheetsScope}

var (
	ErrUnsupportedCredentials = errors.New("googleauth: unsupported credentials format")
	ErrTokenMissing           = errors.New("googleauth: desktop credentials need a token file, run scripts/gcal-auth")
)

// TokenSourceFromFile reads credentialsPath and delegates to TokenSourceFromJSON.
func TokenSourceFromFile(ctx context.Context, credentialsPath, tokenPath string, scopes ...string) (oauth2.TokenSource, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("googleauth: read credentials: %w", err)
	}
	return TokenSourceFromJSON(ctx, data, tokenPath, scopes...)
}

// TokenSourceFromJSON tries a service account key first, then desktop credentials.
func TokenSourceFromJSON(ctx context.Context, credentialsJSON []byte, tokenPath string, scopes ...string) (oauth2.TokenSource, error) {
	if len(scopes) == 0 {
		scopes = Scopes
	}

	if jwtCfg, err := google.JWTConfigFromJSON(credentialsJSON, scopes...); err == nil {
		return jwtCfg.TokenSource(ctx), nil
	}

	oauthCfg, err := google.ConfigFromJSON(credentialsJSON, scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedCredentials, err)
	}

	tok, err := LoadToken(tokenPath)
	if err != nil {
		return nil, err
	}
	return oauthCfg.TokenSource(ctx, tok), nil
}

// ClientOption wraps TokenSourceFromFile for google.golang.org/api constructors.
func ClientOption(ctx context.Context, credentialsPath, tokenPath string, scopes ...string) (option.ClientOption, error) {
	ts, err := TokenSourceFromFile(ctx, credentialsPath, tokenPath, scopes...)
	if err != nil {
		return nil, err
	}
	return option.WithTokenSource(ts), nil
}

// LoadToken reads a token saved by SaveToken.
func LoadToken(path string) (*oauth2.Token, error) {
	if path == "" {
		path = DefaultTokenPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrTokenMissing
		}
		return nil, fmt.Errorf("googleauth: read token: %w", err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("googleauth: parse token %s: %w", path, err)
	}
	return &tok, nil
}

// SaveToken writes tok to path with owner-only permissions.
func SaveToken(path string, tok *oauth2.Token) error {
	if path == "" {
		path = DefaultTokenPath
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("googleauth: create token file: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("googleauth: write token: %w", err)
	}
	return nil
}
