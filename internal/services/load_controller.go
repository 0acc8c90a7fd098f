package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/AgbediaSamuel/traverse-backend-wa/internal/domain"
	"github.com/AgbediaSamuel/traverse-backend-wa/internal/domain/models"
	"github.com/AgbediaSamuel/traverse-backend-wa/internal/utils"
)

// DefaultTitle is used when neither city nor destination yield a usable one.
const DefaultTitle = "Your Trip"

// AccessRequest carries the credentials a viewer request arrives with.
type AccessRequest struct {
	Referer string
	Token   string
}

type LoadState string

const (
	LoadPending LoadState = "pending"
	LoadReady   LoadState = "ready"
	LoadDenied  LoadState = "denied"
	LoadFailed  LoadState = "failed"
)

// LoadResult is the outcome of one load: a ready itinerary, a denial from
// the access gate, or a fetch failure. Itinerary and Title are only
// meaningful when State is LoadReady.
type LoadResult struct {
	State     LoadState
	Itinerary models.Itinerary
	Title     string
	Err       error
}

// LoadController resolves an itinerary document: demo data when no id is
// given, otherwise exactly one fetch of the remote document, gated by the
// optional template secret.
type LoadController struct {
	APIBase              string
	TemplateSecret       string
	AllowedRefererDomain string

	Client *http.Client

	// Fetch overrides the HTTP fetch, e.g. to read straight from the
	// repository when the controller runs next to the document store.
	Fetch func(ctx context.Context, id string) (map[string]any, error)
}

// Load resolves the document for id. An empty id resolves immediately from
// built-in demo data without contacting any service or consulting the gate.
func (c LoadController) Load(ctx context.Context, id string, req AccessRequest) LoadResult {
	id = strings.TrimSpace(id)
	if id == "" {
		return c.ready("", DemoDocument())
	}

	if !c.Allowed(req) {
		err := domain.UnauthorizedError{Msg: "this itinerary is not available"}
		utils.LogEvent("", "viewer", "load_denied", "id="+id)
		return LoadResult{State: LoadDenied, Err: err}
	}

	fetch := c.Fetch
	if fetch == nil {
		fetch = c.fetchHTTP
	}
	doc, err := fetch(ctx, id)
	if err != nil {
		utils.LogEvent("", "viewer", "load_failed", "id="+id+" err="+err.Error())
		return LoadResult{State: LoadFailed, Err: err}
	}

	return c.ready(id, doc)
}

func (c LoadController) ready(id string, doc map[string]any) LoadResult {
	// the payload may wrap the actual document under an envelope
	if inner, ok := doc["document"].(map[string]any); ok {
		doc = inner
	}
	it := MapDocument(doc)
	utils.LogEvent("", "viewer", "load_ready", "id="+id)
	return LoadResult{State: LoadReady, Itinerary: it, Title: DeriveTitle(it)}
}

// Allowed applies the template access gate. With no secret configured every
// request passes. Otherwise the request needs either a referrer on the
// allow-listed domain or a token exactly matching the secret. The referrer
// is client-reported and spoofable; this is a soft guard, not an
// authentication boundary.
func (c LoadController) Allowed(req AccessRequest) bool {
	if c.TemplateSecret == "" {
		return true
	}
	if req.Token != "" && req.Token == c.TemplateSecret {
		return true
	}
	return refererOnDomain(req.Referer, c.AllowedRefererDomain)
}

func refererOnDomain(referer, domainName string) bool {
	referer = strings.TrimSpace(referer)
	if referer == "" || domainName == "" {
		return false
	}
	host := referer
	if u, err := url.Parse(referer); err == nil && u.Hostname() != "" {
		host = u.Hostname()
	}
	host = strings.ToLower(host)
	domainName = strings.ToLower(domainName)
	return host == domainName || strings.HasSuffix(host, "."+domainName)
}

func (c LoadController) fetchHTTP(ctx context.Context, id string) (map[string]any, error) {
	client := c.Client
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	endpoint := strings.TrimRight(c.APIBase, "/") + "/itineraries/" + url.PathEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domain.FetchError{Err: err}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, domain.FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.FetchError{Status: resp.StatusCode}
	}

	var doc map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, domain.FetchError{Err: err}
	}
	return doc, nil
}

// DeriveTitle picks the display title: explicit city wins, then the first
// comma-delimited segment of the destination, then a fixed fallback. The
// "Destination" placeholder substituted by the mapper counts as absent.
func DeriveTitle(it models.Itinerary) string {
	if it.City != "" {
		return it.City
	}
	seg := utils.FirstSegment(it.Destination)
	if seg != "" && seg != "Destination" {
		return seg
	}
	return DefaultTitle
}
