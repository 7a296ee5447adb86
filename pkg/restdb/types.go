package restdb

import (
	"fmt"
	"net/url"
	"strings"
)

// Query is a PostgREST style row filter.
type Query struct {
	values url.Values
}

// NewQuery returns an empty filter.
func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

// Eq filters column = value.
func (q *Query) Eq(column string, value any) *Query {
	q.values.Add(column, fmt.Sprintf("eq.%v", value))
	return q
}

// Gte filters column >= value.
func (q *Query) Gte(column string, value any) *Query {
	q.values.Add(column, fmt.Sprintf("gte.%v", value))
	return q
}

// Lte filters column <= value.
func (q *Query) Lte(column string, value any) *Query {
	q.values.Add(column, fmt.Sprintf("lte.%v", value))
	return q
}

// In filters column to one of values.
func (q *Query) In(column string, values ...string) *Query {
	q.values.Add(column, "in.("+strings.Join(values, ",")+")")
	return q
}

// Order sorts by columns, e.g. Order("date.asc", "slot_index.asc").
func (q *Query) Order(columns ...string) *Query {
	q.values.Set("order", strings.Join(columns, ","))
	return q
}

// Limit caps the number of rows returned.
func (q *Query) Limit(n int) *Query {
	q.values.Set("limit", fmt.Sprintf("%d", n))
	return q
}

// Encode renders the query string.
func (q *Query) Encode() string {
	if q == nil {
		return ""
	}
	return q.values.Encode()
}

// APIError is a non-2xx response from the store.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("restdb %s error %d: %s", e.Op, e.StatusCode, e.Body)
}
