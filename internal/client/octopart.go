package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"octopart/api/internal/config"
	"octopart/api/internal/domain"

	log "github.com/sirupsen/logrus"
	"resty.dev/v3"
)

// OctopartClient is the typed surface over the Octopart v2 REST API.
// All calls are synchronous and perform at most one GET round trip.
type OctopartClient interface {
	CategoriesGet(ctx context.Context, id int) (*domain.Category, error)
	CategoriesGetMulti(ctx context.Context, ids []int) ([]*domain.Category, error)
	CategoriesSearch(ctx context.Context, q string, opts Args) ([]CategoryMatch, error)
	PartsGet(ctx context.Context, uid int, opts Args) (*domain.Part, error)
	PartsGetMulti(ctx context.Context, uids string, opts Args) ([]*domain.Part, error)
	PartsSearch(ctx context.Context, q string, opts Args) (*PartSearchResult, error)
	PartsSuggest(ctx context.Context, q string, opts Args) ([]*domain.Part, error)
	PartsMatch(ctx context.Context, manufacturerName, mpn string) ([]PartMatch, error)
	PartAttributesGet(ctx context.Context, fieldname string) (*domain.PartAttribute, error)
	PartAttributesGetMulti(ctx context.Context, fieldnames []string) ([]*domain.PartAttribute, error)
	BomMatch(ctx context.Context, lines []Args, opts Args) ([]BomLineResult, error)
}

type octopartClient struct {
	config     config.OctopartConfig
	baseURL    string
	httpClient *resty.Client
}

// NewOctopartClient builds a client from configuration. The configuration
// is read-only for the client's lifetime and may be reused across calls.
func NewOctopartClient(cfg config.OctopartConfig) OctopartClient {
	httpClient := resty.New().
		SetTimeout(time.Duration(cfg.Timeout) * time.Second).
		SetHeader("Accept", "application/json")

	return &octopartClient{
		config:     cfg,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}
}

// call runs the full request pipeline for one endpoint: alias translation,
// schema validation and the GET itself. No request is issued when
// validation fails.
func (c *octopartClient) call(ctx context.Context, endpoint string, s schema, args Args) (any, error) {
	translated, err := translateArgs(endpoint, args)
	if err != nil {
		return nil, err
	}
	if err := s.validate(endpoint, translated); err != nil {
		return nil, err
	}
	return c.get(ctx, endpoint, translated)
}

func (c *octopartClient) get(ctx context.Context, endpoint string, args Args) (any, error) {
	params := make(Args, len(args)+3)
	for name, value := range args {
		params[name] = value
	}
	if c.config.APIKey != "" {
		params["apikey"] = c.config.APIKey
	}
	if c.config.Callback != "" {
		params["callback"] = c.config.Callback
	}
	if c.config.PrettyPrint {
		params["pretty_print"] = true
	}

	query, err := buildQuery(params)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(c.baseURL + "/" + endpoint)

	if err != nil {
		return nil, &APIError{Kind: KindTransport, Endpoint: endpoint, Err: fmt.Errorf("failed to fetch URL: %w", err)}
	}

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return nil, &APIError{Kind: KindNotFound, Endpoint: endpoint, Status: resp.StatusCode()}
	case http.StatusServiceUnavailable:
		return nil, &APIError{Kind: KindServiceUnavailable, Endpoint: endpoint, Status: resp.StatusCode()}
	}
	if resp.IsError() {
		return nil, &APIError{Kind: KindTransport, Endpoint: endpoint, Status: resp.StatusCode(), Body: resp.String()}
	}

	body := resp.String()
	var raw any
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}

	log.Debugf("Fetched %s (%d bytes)", endpoint, len(body))
	return raw, nil
}

// mergeArgs copies opts and lays the positional required arguments over it.
// The caller's opts map is never mutated.
func mergeArgs(opts Args, required Args) Args {
	out := make(Args, len(opts)+len(required))
	for name, value := range opts {
		out[name] = value
	}
	for name, value := range required {
		out[name] = value
	}
	return out
}

// asMap returns raw as a response mapping, or nil for empty results.
func asMap(raw any) map[string]any {
	if m, ok := raw.(map[string]any); ok {
		return m
	}
	return nil
}

// asMaps returns raw as a list of response mappings.
func asMaps(raw any) []map[string]any {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(list))
	for _, e := range list {
		if m, ok := e.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// resultMaps returns the "results" list of a response mapping.
func resultMaps(raw any) []map[string]any {
	m := asMap(raw)
	if m == nil {
		return nil
	}
	return asMaps(m["results"])
}

func stringAt(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}

// mergeTypes unions several type declarations into one schema type map.
func mergeTypes(parts ...map[string]valueType) map[string]valueType {
	out := make(map[string]valueType)
	for _, p := range parts {
		for name, t := range p {
			out[name] = t
		}
	}
	return out
}
