package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/journal-directory/internal/config"
	"github.com/MKhiriev/journal-directory/internal/logger"
	"github.com/MKhiriev/journal-directory/models"
	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"
	defaultTimeout  = 15 * time.Second
	defaultPageSize = 20
	catalogDatabase = "nlmcatalog"
)

// nlmCatalogClient is the resty-backed implementation of [CatalogClient]
// for the NCBI E-utilities API. A search is two calls: esearch resolves
// the query term to catalog UIDs, esummary fetches the records.
type nlmCatalogClient struct {
	client *resty.Client
	tool   string
	email  string
	apiKey string

	logger *logger.Logger
}

// NewNLMCatalogClient constructs a [CatalogClient] for the configured
// E-utilities endpoint. Missing base URL and timeout fall back to the
// public NCBI endpoint defaults.
func NewNLMCatalogClient(cfg config.Catalog, log *logger.Logger) CatalogClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	log.Debug().Str("base_url", cfg.BaseURL).Msg("catalog client created")

	return &nlmCatalogClient{
		client: cli,
		tool:   cfg.Tool,
		email:  cfg.Email,
		apiKey: cfg.APIKey,
		logger: log,
	}
}

// Search implements [CatalogClient].
func (c *nlmCatalogClient) Search(ctx context.Context, criteria models.CatalogCriteria) ([]models.CatalogEntry, error) {
	log := logger.FromContext(ctx)

	limit := criteria.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	ids, err := c.search(ctx, criteria.Term, limit)
	if err != nil {
		log.Err(err).
			Str("func", "*nlmCatalogClient.Search").
			Str("term", criteria.Term).
			Msg("esearch call failed")
		return nil, err
	}
	if len(ids) == 0 {
		return []models.CatalogEntry{}, nil
	}

	entries, err := c.summaries(ctx, ids)
	if err != nil {
		log.Err(err).
			Str("func", "*nlmCatalogClient.Search").
			Int("id count", len(ids)).
			Msg("esummary call failed")
		return nil, err
	}

	return entries, nil
}

// search resolves the term to catalog UIDs via esearch.
func (c *nlmCatalogClient) search(ctx context.Context, term string, limit int) ([]string, error) {
	resp, err := c.request(ctx).
		SetQueryParam("db", catalogDatabase).
		SetQueryParam("term", term).
		SetQueryParam("retmax", strconv.Itoa(limit)).
		SetQueryParam("retmode", "json").
		Get("/esearch.fcgi")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var parsed esearchResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogMalformedResponse, err)
	}

	return parsed.ESearchResult.IDList, nil
}

// summaries fetches and maps the records for the given UIDs via esummary.
func (c *nlmCatalogClient) summaries(ctx context.Context, ids []string) ([]models.CatalogEntry, error) {
	resp, err := c.request(ctx).
		SetQueryParam("db", catalogDatabase).
		SetQueryParam("id", strings.Join(ids, ",")).
		SetQueryParam("retmode", "json").
		Get("/esummary.fcgi")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var parsed esummaryResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogMalformedResponse, err)
	}

	uids, err := parsed.uids()
	if err != nil {
		return nil, err
	}

	entries := make([]models.CatalogEntry, 0, len(uids))
	for _, uid := range uids {
		raw, ok := parsed.Result[uid]
		if !ok {
			continue
		}

		var rec esummaryRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCatalogMalformedResponse, err)
		}

		entries = append(entries, rec.toCatalogEntry())
	}

	return entries, nil
}

// request prepares a context-scoped request with the NCBI identification
// parameters attached.
func (c *nlmCatalogClient) request(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)

	if c.tool != "" {
		req.SetQueryParam("tool", c.tool)
	}
	if c.email != "" {
		req.SetQueryParam("email", c.email)
	}
	if c.apiKey != "" {
		req.SetQueryParam("api_key", c.apiKey)
	}

	return req
}
