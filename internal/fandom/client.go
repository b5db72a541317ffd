package fandom

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tidwall/gjson"
)

// DataSource defines the read-only paged queries the UI consumes.
// This interface is implemented by *Client and can be used for testing.
type DataSource interface {
	FetchDonations(ctx context.Context, query PageQuery) (Page[Donation], error)
	FetchIdols(ctx context.Context, query PageQuery) (Page[Idol], error)
	FetchChart(ctx context.Context, query ChartQuery) (Page[Idol], error)
}

// Ensure Client implements DataSource at compile time.
var _ DataSource = (*Client)(nil)

// Client talks to the Fandom-K HTTP API.
type Client struct {
	baseURL   *url.URL
	team      string
	http      *http.Client
	userAgent string
}

const (
	DefaultAPIURL         = "https://fandom-k-api.vercel.app"
	DefaultTeam           = "8-3"
	defaultUserAgent      = "fandom/0.1"
	defaultRequestTimeout = 5 * time.Second
	errorBodyLimit        = 4 << 10
)

// StatusError reports an HTTP status >= 400 from the API.
type StatusError struct {
	Path    string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api %s returned status %d: %s", e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("api %s returned status %d", e.Path, e.Code)
}

// NewClient builds a Client for apiURL scoped to the team path segment.
// A non-positive timeout uses the default.
func NewClient(apiURL, team string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(apiURL)
	if err != nil {
		return nil, err
	}
	team = strings.Trim(strings.TrimSpace(team), "/")
	if team == "" {
		team = DefaultTeam
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		baseURL: base,
		team:    team,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// PageQuery configures a cursor-paged request.
type PageQuery struct {
	Cursor   *int64
	PageSize int
}

func (q PageQuery) values() url.Values {
	values := url.Values{}
	if q.Cursor != nil {
		values.Set("cursor", strconv.FormatInt(*q.Cursor, 10))
	}
	if q.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	return values
}

// ChartQuery configures /charts/{gender} requests.
type ChartQuery struct {
	PageQuery
	Gender string
}

// FetchDonations retrieves one page of donations waiting for support.
func (c *Client) FetchDonations(ctx context.Context, query PageQuery) (Page[Donation], error) {
	if c == nil {
		return Page[Donation]{}, fmt.Errorf("client is nil")
	}
	var payload listResponse[Donation]
	if err := c.get(ctx, "donations", query.values(), &payload); err != nil {
		return Page[Donation]{}, err
	}
	return Page[Donation]{Items: payload.List, NextCursor: payload.NextCursor}, nil
}

// FetchIdols retrieves one page of idols.
func (c *Client) FetchIdols(ctx context.Context, query PageQuery) (Page[Idol], error) {
	if c == nil {
		return Page[Idol]{}, fmt.Errorf("client is nil")
	}
	var payload listResponse[Idol]
	if err := c.get(ctx, "idols", query.values(), &payload); err != nil {
		return Page[Idol]{}, err
	}
	return Page[Idol]{Items: payload.List, NextCursor: payload.NextCursor}, nil
}

// FetchChart retrieves the monthly vote ranking for one gender.
func (c *Client) FetchChart(ctx context.Context, query ChartQuery) (Page[Idol], error) {
	if c == nil {
		return Page[Idol]{}, fmt.Errorf("client is nil")
	}
	gender := strings.ToLower(strings.TrimSpace(query.Gender))
	if gender == "" {
		return Page[Idol]{}, fmt.Errorf("chart gender required")
	}
	values := query.values()
	values.Set("gender", gender)
	var payload chartResponse
	if err := c.get(ctx, "charts/"+url.PathEscape(gender), values, &payload); err != nil {
		return Page[Idol]{}, err
	}
	return Page[Idol]{Items: payload.Idols, NextCursor: payload.NextCursor}, nil
}

func (c *Client) get(ctx context.Context, resource string, values url.Values, dest any) error {
	rel := &url.URL{Path: path.Join("/", c.team, resource), RawQuery: values.Encode()}
	return c.doURL(ctx, http.MethodGet, rel, dest)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	log.With("component", "fandom").Debug("request",
		"method", method, "path", rel.String(), "status", resp.StatusCode, "took", time.Since(started))

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return &StatusError{
			Path:    rel.Path,
			Code:    resp.StatusCode,
			Message: errorMessage(body),
		}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func errorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	return strings.TrimSpace(gjson.GetBytes(body, "message").String())
}

func parseBaseURL(apiURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiURL)
	if trimmed == "" {
		trimmed = DefaultAPIURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_url %q: %w", apiURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api_url %q: missing host", apiURL)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
