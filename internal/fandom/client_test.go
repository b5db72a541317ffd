package fandom

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != DefaultAPIURL {
		t.Fatalf("url = %q, want %q", u.String(), DefaultAPIURL)
	}

	u, err = parseBaseURL("example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" {
		t.Fatalf("scheme = %q, want https", u.Scheme)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	if _, err := parseBaseURL("http://"); err == nil {
		t.Fatalf("parseBaseURL(http://) returned nil error, want missing host")
	}
}

func TestClient_FetchesEndpointsAndEncodesQueries(t *testing.T) {
	t.Parallel()

	var gotDonations, gotIdols, gotChart url.Values
	var gotChartPath, gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.URL.Path == "/7-1/donations":
			gotDonations = r.URL.Query()
			_, _ = w.Write([]byte(`{"list":[{"id":5,"title":"Birthday ad","idol":{"id":9,"gender":"female"}}],"nextCursor":5}`))
		case r.URL.Path == "/7-1/idols":
			gotIdols = r.URL.Query()
			_, _ = w.Write([]byte(`{"list":[{"id":1,"name":"Karina","gender":"female","group":"aespa"}],"nextCursor":null}`))
		case strings.HasPrefix(r.URL.Path, "/7-1/charts/"):
			gotChartPath = r.URL.Path
			gotChart = r.URL.Query()
			_ = json.NewEncoder(w).Encode(chartResponse{Idols: []Idol{{ID: 2, TotalVotes: 10}}})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "/7-1/", time.Second)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	cursor := int64(42)
	donations, err := c.FetchDonations(ctx, PageQuery{Cursor: &cursor, PageSize: 4})
	if err != nil {
		t.Fatalf("FetchDonations returned error: %v", err)
	}
	if len(donations.Items) != 1 || donations.Items[0].ID != 5 || donations.Items[0].CategoryKey() != "female" {
		t.Fatalf("FetchDonations items = %#v, want 1 female donation id=5", donations.Items)
	}
	if donations.NextCursor == nil || *donations.NextCursor != 5 {
		t.Fatalf("FetchDonations NextCursor = %v, want 5", donations.NextCursor)
	}
	if gotDonations.Get("cursor") != "42" || gotDonations.Get("pageSize") != "4" {
		t.Fatalf("FetchDonations query = %v, want cursor=42 pageSize=4", gotDonations)
	}

	idols, err := c.FetchIdols(ctx, PageQuery{PageSize: 16})
	if err != nil {
		t.Fatalf("FetchIdols returned error: %v", err)
	}
	if idols.NextCursor != nil {
		t.Fatalf("FetchIdols NextCursor = %v, want nil", *idols.NextCursor)
	}
	if idols.Items[0].Label() != "aespa Karina" {
		t.Fatalf("Label = %q, want %q", idols.Items[0].Label(), "aespa Karina")
	}
	if gotIdols.Has("cursor") || gotIdols.Get("pageSize") != "16" || len(gotIdols) != 1 {
		t.Fatalf("FetchIdols query = %v, want only pageSize=16", gotIdols)
	}

	chart, err := c.FetchChart(ctx, ChartQuery{PageQuery: PageQuery{PageSize: 10}, Gender: "Male"})
	if err != nil {
		t.Fatalf("FetchChart returned error: %v", err)
	}
	if len(chart.Items) != 1 || chart.Items[0].TotalVotes != 10 {
		t.Fatalf("FetchChart items = %#v, want 1 idol with 10 votes", chart.Items)
	}
	if gotChartPath != "/7-1/charts/male" || gotChart.Get("gender") != "male" || gotChart.Get("pageSize") != "10" {
		t.Fatalf("FetchChart path=%q query=%v, want /7-1/charts/male gender=male pageSize=10", gotChartPath, gotChart)
	}

	if !strings.HasPrefix(gotUserAgent, "fandom/") {
		t.Fatalf("User-Agent = %q, want fandom/*", gotUserAgent)
	}
}

func TestClient_FetchChartRequiresGender(t *testing.T) {
	c, err := NewClient("127.0.0.1:1", "", 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.FetchChart(context.Background(), ChartQuery{}); err == nil {
		t.Fatalf("FetchChart returned nil error, want error")
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/8-3/donations":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		case "/8-3/idols":
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"pageSize must be positive"}`))
		default:
			http.Error(w, "nope", http.StatusInternalServerError)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "", 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchDonations(context.Background(), PageQuery{PageSize: 4})
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchDonations error = %v, want decode response error", err)
	}

	_, err = c.FetchIdols(context.Background(), PageQuery{})
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("FetchIdols error = %v, want *StatusError", err)
	}
	if statusErr.Code != http.StatusBadRequest || statusErr.Message != "pageSize must be positive" {
		t.Fatalf("StatusError = %#v, want 400 with server message", statusErr)
	}

	_, err = c.FetchChart(context.Background(), ChartQuery{Gender: "female"})
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("FetchChart error = %v, want status 500 error", err)
	}
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		t.Fatalf("plain-text error body should not produce a message, got %q", statusErr.Message)
	}
}
