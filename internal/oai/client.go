package oai

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultSetKeywords selects computer science and data related collections
// when filtering a repository's sets. Both English and Estonian forms are
// listed because the repositories name their collections in either language.
var DefaultSetKeywords = []string{
	"informaatika", "informatics",
	"computer science", "arvutiteadus",
	"data science", "andmeteadus",
	"tarkvaratehnika", "software engineering",
	"infotehnoloogia", "information technology",
	"matemaatika", "mathematics",
	"statistika", "statistics",
	"küberneetika", "cybernetics",
	"tehisintellekt", "artificial intelligence",
	"masinõpe", "machine learning",
}

// ErrSchemaViolation marks a reply that is not a well-formed OAI-PMH
// response for the requested verb. Such replies are never retried.
var ErrSchemaViolation = errors.New("malformed OAI-PMH response")

// errTransient marks failures worth retrying: network errors, 5xx replies
// and rate limiting.
var errTransient = errors.New("transient request failure")

// errNoRecords marks the protocol's noRecordsMatch condition, which is an
// empty result rather than a failure.
var errNoRecords = errors.New("no records match")

// RequestError describes a failed protocol request with enough context to
// resume a harvest by hand if needed.
type RequestError struct {
	Endpoint string
	Verb     string
	Token    string
	Attempts int
	Err      error
}

func (e *RequestError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%s: %s (token %q) after %d attempt(s): %v",
			e.Endpoint, e.Verb, e.Token, e.Attempts, e.Err)
	}
	return fmt.Sprintf("%s: %s after %d attempt(s): %v", e.Endpoint, e.Verb, e.Attempts, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Config holds protocol client configuration for one endpoint.
type Config struct {
	Endpoint       string
	BaseURL        string
	RequestDelay   time.Duration
	Timeout        time.Duration
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	SetKeywords    []string
}

// Client speaks OAI-PMH to a single repository. All requests share one rate
// limiter so the endpoint sees at most one request per configured delay.
type Client struct {
	httpClient     *http.Client
	endpoint       string
	baseURL        string
	limiter        *rate.Limiter
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	setKeywords    []string
	logger         *slog.Logger
}

// New creates a protocol client for one endpoint.
func New(cfg Config, logger *slog.Logger) *Client {
	keywords := cfg.SetKeywords
	if len(keywords) == 0 {
		keywords = DefaultSetKeywords
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		endpoint:       cfg.Endpoint,
		baseURL:        cfg.BaseURL,
		limiter:        rate.NewLimiter(rate.Every(cfg.RequestDelay), 1),
		maxAttempts:    cfg.MaxRetries + 1,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		setKeywords:    keywords,
		logger:         logger.With("endpoint", cfg.Endpoint),
	}
}

// Endpoint returns the endpoint key this client harvests.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// DiscoverSets lists the repository's sets and returns the specs of those
// whose name or spec mentions one of the configured keywords.
func (c *Client) DiscoverSets(ctx context.Context) ([]string, error) {
	var relevant []string
	token := ""

	for {
		query := url.Values{"verb": {"ListSets"}}
		if token != "" {
			query = url.Values{"verb": {"ListSets"}, "resumptionToken": {token}}
		}

		resp, attempts, err := c.fetch(ctx, query)
		if err != nil {
			if errors.Is(err, errNoRecords) {
				return relevant, nil
			}
			return nil, &RequestError{
				Endpoint: c.endpoint,
				Verb:     "ListSets",
				Token:    token,
				Attempts: attempts,
				Err:      err,
			}
		}
		if resp.ListSets == nil {
			return nil, &RequestError{
				Endpoint: c.endpoint,
				Verb:     "ListSets",
				Token:    token,
				Attempts: attempts,
				Err:      fmt.Errorf("%w: missing ListSets element", ErrSchemaViolation),
			}
		}

		for _, set := range resp.ListSets.Sets {
			if c.relevantSet(set) {
				relevant = append(relevant, set.Spec)
			}
		}

		token = strings.TrimSpace(resp.ListSets.ResumptionToken)
		if token == "" {
			break
		}
	}

	c.logger.Info("discovered sets", "relevant", len(relevant))

	return relevant, nil
}

func (c *Client) relevantSet(set Set) bool {
	name := strings.ToLower(set.Name)
	spec := strings.ToLower(set.Spec)
	for _, kw := range c.setKeywords {
		if strings.Contains(name, kw) || strings.Contains(spec, kw) {
			return true
		}
	}
	return false
}

// Records returns a lazy sequence of raw records in the [from, until] window
// across the given sets. With no sets the whole repository is harvested in a
// single unscoped query. Pages are fetched on demand as the caller consumes
// the sequence; iteration stops at the first error, which is yielded last.
func (c *Client) Records(ctx context.Context, sets []string, from, until string) iter.Seq2[Record, error] {
	scopes := sets
	if len(scopes) == 0 {
		scopes = []string{""}
	}

	return func(yield func(Record, error) bool) {
		for _, set := range scopes {
			if !c.recordsForSet(ctx, set, from, until, yield) {
				return
			}
		}
	}
}

// recordsForSet pages through one set. It returns false when the caller
// stopped the iteration or a yielded error ended it.
func (c *Client) recordsForSet(ctx context.Context, set, from, until string, yield func(Record, error) bool) bool {
	token := ""

	for {
		query := url.Values{
			"verb":           {"ListRecords"},
			"metadataPrefix": {"oai_dc"},
		}
		if from != "" {
			query.Set("from", from)
		}
		if until != "" {
			query.Set("until", until)
		}
		if set != "" {
			query.Set("set", set)
		}
		if token != "" {
			query = url.Values{"verb": {"ListRecords"}, "resumptionToken": {token}}
		}

		resp, attempts, err := c.fetch(ctx, query)
		if err != nil {
			if errors.Is(err, errNoRecords) {
				c.logger.Debug("no records in window", "set", set)
				return true
			}
			return yield(Record{}, &RequestError{
				Endpoint: c.endpoint,
				Verb:     "ListRecords",
				Token:    token,
				Attempts: attempts,
				Err:      err,
			})
		}
		if resp.ListRecords == nil {
			return yield(Record{}, &RequestError{
				Endpoint: c.endpoint,
				Verb:     "ListRecords",
				Token:    token,
				Attempts: attempts,
				Err:      fmt.Errorf("%w: missing ListRecords element", ErrSchemaViolation),
			})
		}

		c.logger.Debug("fetched page",
			"set", set,
			"records", len(resp.ListRecords.Records),
		)

		for _, rec := range resp.ListRecords.Records {
			if !yield(rec, nil) {
				return false
			}
		}

		token = strings.TrimSpace(resp.ListRecords.ResumptionToken)
		if token == "" {
			return true
		}
	}
}

// fetch performs one protocol request with retries on transient failures.
// It returns the decoded response and the number of attempts made.
func (c *Client) fetch(ctx context.Context, query url.Values) (*response, int, error) {
	var resp *response
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		resp, err = c.doRequest(ctx, query)
		if err == nil {
			return resp, attempt, nil
		}

		if !errors.Is(err, errTransient) || attempt == c.maxAttempts {
			return nil, attempt, err
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, attempt, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, c.maxAttempts, err
}

func (c *Client) doRequest(ctx context.Context, query url.Values) (*response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/xml")
	req.Header.Set("User-Agent", "TermHarvester/1.0")

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errTransient, err)
	}
	defer httpResp.Body.Close()

	switch {
	case httpResp.StatusCode == http.StatusOK:
	case httpResp.StatusCode == http.StatusNotFound,
		httpResp.StatusCode == http.StatusUnprocessableEntity:
		// Some DSpace versions answer these instead of noRecordsMatch.
		io.Copy(io.Discard, httpResp.Body)
		return nil, errNoRecords
	case httpResp.StatusCode == http.StatusTooManyRequests,
		httpResp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: unexpected status %d", errTransient, httpResp.StatusCode)
	default:
		return nil, fmt.Errorf("unexpected status: %d", httpResp.StatusCode)
	}

	var envelope response
	if err := xml.NewDecoder(httpResp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrSchemaViolation, err)
	}

	if envelope.Error != nil {
		// noSetHierarchy repositories are harvested unscoped instead.
		if envelope.Error.Code == "noRecordsMatch" || envelope.Error.Code == "noSetHierarchy" {
			return nil, errNoRecords
		}
		return nil, fmt.Errorf("protocol error %s: %s", envelope.Error.Code, envelope.Error.Message)
	}

	return &envelope, nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
