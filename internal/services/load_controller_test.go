package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AgbediaSamuel/traverse-backend-wa/internal/domain"
	"github.com/AgbediaSamuel/traverse-backend-wa/internal/domain/models"
)

func failingFetch(t *testing.T) func(context.Context, string) (map[string]any, error) {
	return func(context.Context, string) (map[string]any, error) {
		t.Fatalf("fetch should not have been attempted")
		return nil, nil
	}
}

func TestLoadDemoFallback(t *testing.T) {
	ctl := LoadController{Fetch: failingFetch(t)}

	res := ctl.Load(context.Background(), "", AccessRequest{})
	if res.State != LoadReady {
		t.Fatalf("demo load state %s", res.State)
	}
	if res.Itinerary.Traveler != "Sheriff" || len(res.Itinerary.Days) != 2 {
		t.Fatalf("demo itinerary not mapped: %#v", res.Itinerary)
	}
	if res.Title != "Las Vegas" {
		t.Fatalf("demo title %q", res.Title)
	}
}

func TestLoadFetchesBareAndEnvelopedDocuments(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/itineraries/bare":
			w.Write([]byte(`{"destination": "Paris, France", "days": []}`))
		case "/itineraries/wrapped":
			w.Write([]byte(`{"document": {"city": "Rome", "destination": "Anywhere"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	ctl := LoadController{APIBase: ts.URL}

	res := ctl.Load(context.Background(), "bare", AccessRequest{})
	if res.State != LoadReady || res.Title != "Paris" {
		t.Fatalf("bare document: state=%s title=%q", res.State, res.Title)
	}

	res = ctl.Load(context.Background(), "wrapped", AccessRequest{})
	if res.State != LoadReady || res.Title != "Rome" {
		t.Fatalf("enveloped document: state=%s title=%q", res.State, res.Title)
	}

	res = ctl.Load(context.Background(), "missing", AccessRequest{})
	if res.State != LoadFailed || !domain.IsFetch(res.Err) {
		t.Fatalf("non-2xx should fail with a fetch error, got state=%s err=%v", res.State, res.Err)
	}
}

func TestLoadTransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // refuse connections

	ctl := LoadController{APIBase: ts.URL}
	res := ctl.Load(context.Background(), "x", AccessRequest{})
	if res.State != LoadFailed || !domain.IsFetch(res.Err) {
		t.Fatalf("transport failure: state=%s err=%v", res.State, res.Err)
	}
}

func TestAccessGate(t *testing.T) {
	doc := map[string]any{"destination": "Lisbon"}

	// secret configured, no credentials: denied without fetching
	ctl := LoadController{
		TemplateSecret:       "abc",
		AllowedRefererDomain: "traverse-hq.com",
		Fetch:                failingFetch(t),
	}
	res := ctl.Load(context.Background(), "it1", AccessRequest{})
	if res.State != LoadDenied || !domain.IsUnauthorized(res.Err) {
		t.Fatalf("expected denial, got state=%s err=%v", res.State, res.Err)
	}
	res = ctl.Load(context.Background(), "it1", AccessRequest{Token: "wrong", Referer: "https://evil.example.com/"})
	if res.State != LoadDenied {
		t.Fatalf("bad credentials should be denied, got %s", res.State)
	}

	// matching token proceeds regardless of referrer
	ctl.Fetch = func(context.Context, string) (map[string]any, error) { return doc, nil }
	res = ctl.Load(context.Background(), "it1", AccessRequest{Token: "abc", Referer: "https://evil.example.com/"})
	if res.State != LoadReady {
		t.Fatalf("matching token should proceed, got %s", res.State)
	}

	// allow-listed referrer proceeds without a token
	res = ctl.Load(context.Background(), "it1", AccessRequest{Referer: "https://app.traverse-hq.com/trips/it1"})
	if res.State != LoadReady {
		t.Fatalf("allow-listed referrer should proceed, got %s", res.State)
	}

	// no secret configured: open access
	open := LoadController{Fetch: ctl.Fetch}
	res = open.Load(context.Background(), "it1", AccessRequest{})
	if res.State != LoadReady {
		t.Fatalf("open access should proceed, got %s", res.State)
	}
}

func TestDeriveTitle(t *testing.T) {
	cases := []struct {
		it   models.Itinerary
		want string
	}{
		{MapDocument(map[string]any{"destination": "Paris, France", "days": []any{}}), "Paris"},
		{MapDocument(map[string]any{"city": "Rome", "destination": "Anywhere"}), "Rome"},
		{MapDocument(map[string]any{}), DefaultTitle},
	}
	for _, tc := range cases {
		if got := DeriveTitle(tc.it); got != tc.want {
			t.Fatalf("title %q, want %q", got, tc.want)
		}
	}
}
