package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	// DefaultCalendarID is the authenticated account's main calendar.
	DefaultCalendarID = "primary"
	// DefaultTokenPath is where an installed-app OAuth token is looked up.
	DefaultTokenPath = "token.json"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// Options locates the credentials used by NewClient.
type Options struct {
	CredentialsPath string
	// TokenPath is only read for installed-app credentials. Empty means DefaultTokenPath.
	TokenPath string
}

// NewClient reads the credentials file named in opts and builds a Client.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	data, err := os.ReadFile(opts.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: read credentials: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, opts.TokenPath)
}

// NewClientFromCredentialsJSON accepts service account JSON or installed-app OAuth JSON.
// Installed-app credentials also need a saved token at tokenPath.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err == nil {
		return newClient(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	}

	oauthConfig, oauthErr := InstalledAppConfig(credentialsJSON)
	if oauthErr != nil {
		return nil, fmt.Errorf("gcalendar: unsupported credentials format: %w", err)
	}

	if tokenPath == "" {
		tokenPath = DefaultTokenPath
	}
	tok, err := readToken(tokenPath)
	if err != nil {
		return nil, err
	}
	return newClient(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, tok)))
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	return newClient(ctx, option.WithHTTPClient(httpClient))
}

func newClient(ctx context.Context, opt option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opt)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: create service: %w", err)
	}
	return &Client{service: svc}, nil
}

// InstalledAppConfig parses installed-app OAuth credentials with the scope NewClient needs.
func InstalledAppConfig(credentialsJSON []byte) (*oauth2.Config, error) {
	return google.ConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
}

// SaveToken writes tok where NewClient will look for it.
func SaveToken(path string, tok *oauth2.Token) error {
	data, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("gcalendar: encode token: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("gcalendar: write token %s: %w", path, err)
	}
	return nil
}

func readToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gcalendar: installed-app credentials need a saved token at %s: %w", path, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("gcalendar: parse token %s: %w", path, err)
	}
	return &tok, nil
}

// CreateEvent inserts a timed event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, fmt.Errorf("gcalendar: event end %s is not after start %s",
			req.EndTime.Format(time.RFC3339), req.StartTime.Format(time.RFC3339))
	}

	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		ColorId:     req.ColorID,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("gcalendar: insert event: %w", err)
	}

	return &Event{
		ID:          created.Id,
		Summary:     created.Summary,
		Description: created.Description,
		HtmlLink:    created.HtmlLink,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, nil
}
