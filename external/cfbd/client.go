package cfbd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/portalwatch/portal-api/internal/domain/roster"
	"github.com/portalwatch/portal-api/internal/domain/stats"
	"github.com/portalwatch/portal-api/internal/domain/transfer"
	"github.com/portalwatch/portal-api/internal/platform/logging"
	"github.com/portalwatch/portal-api/internal/platform/resilience"
	"github.com/portalwatch/portal-api/internal/usecase"
	"github.com/sourcegraph/conc/pool"
)

const (
	defaultBaseURL        = "https://api.collegefootballdata.com"
	statFetchConcurrency  = 4
	responseBodySizeLimit = 8 << 20
)

// statCategories is every per-player season statistics category the
// provider serves. A career probe tests names across all of them.
var statCategories = []string{
	"passing", "rushing", "receiving", "defensive", "kicking",
	"punting", "kickReturns", "puntReturns", "interceptions", "fumbles",
}

var errCFBDTransient = crerr.New("cfbd transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the CollegeFootballData API. Requests share a circuit
// breaker and are deduplicated through single-flight, so concurrent cache
// misses on the same endpoint cost one upstream call.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// Configured reports whether an API token is set. Health reporting only.
func (c *Client) Configured() bool {
	return c.token != ""
}

// FetchPortal returns the raw portal listing for a season. This is the one
// required fetch of an aggregation run; its failure is fatal to the run.
func (c *Client) FetchPortal(ctx context.Context, year int) ([]transfer.Entry, error) {
	if year <= 0 {
		return nil, fmt.Errorf("%w: year must be positive", usecase.ErrInvalidInput)
	}

	var items []portalItem
	if err := c.doJSON(ctx, "/player/portal", map[string]string{"year": strconv.Itoa(year)}, &items); err != nil {
		return nil, fmt.Errorf("fetch portal year=%d: %w", year, err)
	}

	out := make([]transfer.Entry, 0, len(items))
	for _, item := range items {
		out = append(out, item.toEntry())
	}
	return out, nil
}

// FetchRoster returns a team's roster for a year.
func (c *Client) FetchRoster(ctx context.Context, teamName string, year int) ([]roster.Member, error) {
	if strings.TrimSpace(teamName) == "" {
		return nil, fmt.Errorf("%w: team must not be empty", usecase.ErrInvalidInput)
	}
	if year <= 0 {
		return nil, fmt.Errorf("%w: year must be positive", usecase.ErrInvalidInput)
	}

	query := map[string]string{
		"team": teamName,
		"year": strconv.Itoa(year),
	}
	var items []rosterItem
	if err := c.doJSON(ctx, "/roster", query, &items); err != nil {
		return nil, fmt.Errorf("fetch roster team=%q year=%d: %w", teamName, year, err)
	}

	out := make([]roster.Member, 0, len(items))
	for _, item := range items {
		out = append(out, item.toMember())
	}
	return out, nil
}

// FetchSeasonStats fans out over every statistics category for (team, year)
// and merges the rows. Categories are independent reads, so they run
// concurrently; a failed category contributes nothing rather than failing
// the merge. Only context cancellation aborts the whole fetch.
func (c *Client) FetchSeasonStats(ctx context.Context, teamName string, year int) ([]stats.Line, error) {
	if strings.TrimSpace(teamName) == "" {
		return nil, fmt.Errorf("%w: team must not be empty", usecase.ErrInvalidInput)
	}
	if year <= 0 {
		return nil, fmt.Errorf("%w: year must be positive", usecase.ErrInvalidInput)
	}

	var mu sync.Mutex
	merged := make([]stats.Line, 0, 64)

	p := pool.New().WithMaxGoroutines(statFetchConcurrency)
	for _, category := range statCategories {
		category := category
		p.Go(func() {
			if ctx.Err() != nil {
				return
			}
			query := map[string]string{
				"year":     strconv.Itoa(year),
				"team":     teamName,
				"category": category,
			}
			var items []statLineItem
			if err := c.doJSON(ctx, "/stats/player/season", query, &items); err != nil {
				c.logger.WarnContext(ctx, "cfbd stat category fetch failed, treating as empty",
					"team", teamName,
					"year", year,
					"category", category,
					"error", err,
				)
				return
			}
			lines := make([]stats.Line, 0, len(items))
			for _, item := range items {
				lines = append(lines, item.toLine(category))
			}
			mu.Lock()
			merged = append(merged, lines...)
			mu.Unlock()
		})
	}
	p.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Player != merged[j].Player {
			return merged[i].Player < merged[j].Player
		}
		if merged[i].Category != merged[j].Category {
			return merged[i].Category < merged[j].Category
		}
		return merged[i].StatType < merged[j].StatType
	})
	return merged, nil
}

// FetchPlayerUsage returns a team's player usage shares for a year.
func (c *Client) FetchPlayerUsage(ctx context.Context, teamName string, year int) ([]stats.PlayerUsage, error) {
	if strings.TrimSpace(teamName) == "" {
		return nil, fmt.Errorf("%w: team must not be empty", usecase.ErrInvalidInput)
	}
	if year <= 0 {
		return nil, fmt.Errorf("%w: year must be positive", usecase.ErrInvalidInput)
	}

	query := map[string]string{
		"team": teamName,
		"year": strconv.Itoa(year),
	}
	var items []usageItem
	if err := c.doJSON(ctx, "/player/usage", query, &items); err != nil {
		return nil, fmt.Errorf("fetch player usage team=%q year=%d: %w", teamName, year, err)
	}

	out := make([]stats.PlayerUsage, 0, len(items))
	for _, item := range items {
		out = append(out, item.toPlayerUsage())
	}
	return out, nil
}

// FetchPlayerPPA returns a team's season predicted-points-added records for
// a year.
func (c *Client) FetchPlayerPPA(ctx context.Context, teamName string, year int) ([]stats.PlayerPPA, error) {
	if strings.TrimSpace(teamName) == "" {
		return nil, fmt.Errorf("%w: team must not be empty", usecase.ErrInvalidInput)
	}
	if year <= 0 {
		return nil, fmt.Errorf("%w: year must be positive", usecase.ErrInvalidInput)
	}

	query := map[string]string{
		"team": teamName,
		"year": strconv.Itoa(year),
	}
	var items []ppaItem
	if err := c.doJSON(ctx, "/ppa/players/season", query, &items); err != nil {
		return nil, fmt.Errorf("fetch player ppa team=%q year=%d: %w", teamName, year, err)
	}

	out := make([]stats.PlayerPPA, 0, len(items))
	for _, item := range items {
		out = append(out, item.toPlayerPPA())
	}
	return out, nil
}

// PlayerNamesWithStats returns the distinct player names evidenced by any
// statistic for (team, year). The career search tests portal names against
// this set.
func (c *Client) PlayerNamesWithStats(ctx context.Context, teamName string, year int) ([]string, error) {
	lines, err := c.FetchSeasonStats(ctx, teamName, year)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(lines))
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		name := strings.TrimSpace(line.Player)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "cfbd circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: stats provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isCFBDCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errCFBDTransient, sanitizeSensitiveText(err.Error(), c.token))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, responseBodySizeLimit))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errCFBDTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else {
				if isRetryableStatus(resp.StatusCode) {
					lastErr = fmt.Errorf("%w: provider status=%d body=%s", errCFBDTransient, resp.StatusCode, abbreviateBody(raw))
				} else {
					return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
				}
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "cfbd request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isCFBDCircuitFailure(err error) bool {
	return crerr.Is(err, errCFBDTransient)
}

func isRetryableStatus(status int) bool {
	if status == http.StatusTooManyRequests || status == http.StatusRequestTimeout {
		return true
	}
	return status >= 500
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" || token == "" {
		return value
	}
	return strings.ReplaceAll(value, token, "REDACTED")
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
