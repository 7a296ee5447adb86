package restdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is the HTTP wrapper for a PostgREST compatible row store.
type Client struct {
	baseURL    string
	apiKey     string
	schema     string
	httpClient *http.Client
}

// NewClient creates a new row store client. baseURL is the REST root, e.g. https://x.supabase.co/rest/v1.
func NewClient(baseURL, apiKey, schema string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		schema:     schema,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Select reads rows of table matching q into out (a pointer to a slice).
func (c *Client) Select(ctx context.Context, table string, q *Query, out any) error {
	resp, err := c.do(ctx, "select", http.MethodGet, table, q, nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode restdb select response: %w", err)
	}
	return nil
}

// Ping checks that table is reachable with the configured key without reading rows.
func (c *Client) Ping(ctx context.Context, table string) error {
	resp, err := c.do(ctx, "ping", http.MethodGet, table, NewQuery().Limit(0), nil, nil)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// Upsert inserts rows, merging on the onConflict columns. When out is non-nil the stored rows are decoded into it.
func (c *Client) Upsert(ctx context.Context, table, onConflict string, rows any, out any) error {
	q := NewQuery()
	if onConflict != "" {
		q.values.Set("on_conflict", onConflict)
	}
	headers := map[string]string{"Prefer": "resolution=merge-duplicates,return=minimal"}
	if out != nil {
		headers["Prefer"] = "resolution=merge-duplicates,return=representation"
	}

	resp, err := c.do(ctx, "upsert", http.MethodPost, table, q, rows, headers)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode restdb upsert response: %w", err)
	}
	return nil
}

// Update patches every row matching q and returns the number of rows changed.
// When out is non-nil the changed rows are decoded into it.
func (c *Client) Update(ctx context.Context, table string, q *Query, patch any, out any) (int, error) {
	headers := map[string]string{"Prefer": "return=representation"}
	resp, err := c.do(ctx, "update", http.MethodPatch, table, q, patch, headers)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read restdb update response: %w", err)
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return 0, fmt.Errorf("failed to decode restdb update response: %w", err)
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return 0, fmt.Errorf("failed to decode restdb update response: %w", err)
		}
	}
	return len(rows), nil
}

// Delete removes every row matching q and returns the number of rows removed.
func (c *Client) Delete(ctx context.Context, table string, q *Query) (int, error) {
	headers := map[string]string{"Prefer": "return=representation"}
	resp, err := c.do(ctx, "delete", http.MethodDelete, table, q, nil, headers)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var rows []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return 0, fmt.Errorf("failed to decode restdb delete response: %w", err)
	}
	return len(rows), nil
}

func (c *Client) do(ctx context.Context, op, method, table string, q *Query, body any, headers map[string]string) (*http.Response, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, table)
	if qs := q.Encode(); qs != "" {
		url += "?" + qs
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal restdb %s request: %w", op, err)
		}
		reader = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build restdb %s request: %w", op, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		httpReq.Header.Set("apikey", c.apiKey)
		httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}
	if c.schema != "" {
		if method == http.MethodGet {
			httpReq.Header.Set("Accept-Profile", c.schema)
		} else {
			httpReq.Header.Set("Content-Profile", c.schema)
		}
	}
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call restdb %s API: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		raw, _ := io.ReadAll(resp.Body)
		return nil, &APIError{Op: op, StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return resp, nil
}
