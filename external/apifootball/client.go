package apifootball

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/fixturehub/football-data/internal/platform/logging"
	"github.com/fixturehub/football-data/internal/platform/resilience"
	"github.com/fixturehub/football-data/internal/usecase"
)

const (
	defaultBaseURL = "https://v3.football.api-sports.io"
	apiKeyHeader   = "x-apisports-key"
)

var errAPIFootballTransient = crerr.New("api-football transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the api-football v3 REST API and translates its payloads
// into the provider-neutral records the sync services consume.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

var _ usecase.FootballDataProvider = (*Client)(nil)

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
		apiKey:         strings.TrimSpace(cfg.APIKey),
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) FetchLeague(ctx context.Context, leagueID int64) (usecase.ExternalLeague, bool, error) {
	if leagueID <= 0 {
		return usecase.ExternalLeague{}, false, fmt.Errorf("league id must be greater than zero")
	}

	var envelope leaguesEnvelope
	query := map[string]string{"id": strconv.FormatInt(leagueID, 10)}
	if err := c.doJSON(ctx, "/leagues", query, &envelope); err != nil {
		return usecase.ExternalLeague{}, false, fmt.Errorf("fetch league id=%d: %w", leagueID, err)
	}
	if len(envelope.Response) == 0 {
		return usecase.ExternalLeague{}, false, nil
	}

	return mapLeagueItem(envelope.Response[0]), true, nil
}

func (c *Client) FetchTeams(ctx context.Context, leagueID int64, seasonYear int) ([]usecase.ExternalTeam, error) {
	if leagueID <= 0 || seasonYear <= 0 {
		return nil, fmt.Errorf("league id and season year must be greater than zero")
	}

	var envelope teamsEnvelope
	query := map[string]string{
		"league": strconv.FormatInt(leagueID, 10),
		"season": strconv.Itoa(seasonYear),
	}
	if err := c.doJSON(ctx, "/teams", query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch teams league=%d season=%d: %w", leagueID, seasonYear, err)
	}

	out := make([]usecase.ExternalTeam, 0, len(envelope.Response))
	for _, item := range envelope.Response {
		out = append(out, mapTeamItem(item))
	}
	return out, nil
}

func (c *Client) FetchPlayersPage(ctx context.Context, teamID int64, seasonYear, page int) ([]usecase.ExternalPlayer, usecase.Paging, error) {
	if teamID <= 0 || seasonYear <= 0 {
		return nil, usecase.Paging{}, fmt.Errorf("team id and season year must be greater than zero")
	}
	if page <= 0 {
		page = 1
	}

	var envelope playersEnvelope
	query := map[string]string{
		"team":   strconv.FormatInt(teamID, 10),
		"season": strconv.Itoa(seasonYear),
		"page":   strconv.Itoa(page),
	}
	if err := c.doJSON(ctx, "/players", query, &envelope); err != nil {
		return nil, usecase.Paging{}, fmt.Errorf("fetch players team=%d season=%d page=%d: %w", teamID, seasonYear, page, err)
	}

	out := make([]usecase.ExternalPlayer, 0, len(envelope.Response))
	for _, item := range envelope.Response {
		out = append(out, mapPlayerItem(item))
	}
	return out, mapPaging(envelope.Paging), nil
}

func (c *Client) FetchFixtures(ctx context.Context, leagueID int64, seasonYear int) ([]usecase.ExternalFixture, error) {
	if leagueID <= 0 || seasonYear <= 0 {
		return nil, fmt.Errorf("league id and season year must be greater than zero")
	}

	var envelope fixturesEnvelope
	query := map[string]string{
		"league": strconv.FormatInt(leagueID, 10),
		"season": strconv.Itoa(seasonYear),
	}
	if err := c.doJSON(ctx, "/fixtures", query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch fixtures league=%d season=%d: %w", leagueID, seasonYear, err)
	}

	out := make([]usecase.ExternalFixture, 0, len(envelope.Response))
	for _, item := range envelope.Response {
		out = append(out, mapFixtureItem(item))
	}
	return out, nil
}

func (c *Client) FetchOddsPage(ctx context.Context, leagueID int64, seasonYear, page int) ([]usecase.ExternalFixtureOdds, usecase.Paging, error) {
	if leagueID <= 0 || seasonYear <= 0 {
		return nil, usecase.Paging{}, fmt.Errorf("league id and season year must be greater than zero")
	}
	if page <= 0 {
		page = 1
	}

	var envelope oddsEnvelope
	query := map[string]string{
		"league": strconv.FormatInt(leagueID, 10),
		"season": strconv.Itoa(seasonYear),
		"page":   strconv.Itoa(page),
	}
	if err := c.doJSON(ctx, "/odds", query, &envelope); err != nil {
		return nil, usecase.Paging{}, fmt.Errorf("fetch odds league=%d season=%d page=%d: %w", leagueID, seasonYear, page, err)
	}

	out := make([]usecase.ExternalFixtureOdds, 0, len(envelope.Response))
	for _, item := range envelope.Response {
		out = append(out, mapOddsItem(item))
	}
	return out, mapPaging(envelope.Paging), nil
}

func (c *Client) FetchPrediction(ctx context.Context, fixtureID int64) (usecase.ExternalPrediction, bool, error) {
	if fixtureID <= 0 {
		return usecase.ExternalPrediction{}, false, fmt.Errorf("fixture id must be greater than zero")
	}

	var envelope predictionsEnvelope
	query := map[string]string{"fixture": strconv.FormatInt(fixtureID, 10)}
	if err := c.doJSON(ctx, "/predictions", query, &envelope); err != nil {
		return usecase.ExternalPrediction{}, false, fmt.Errorf("fetch prediction fixture=%d: %w", fixtureID, err)
	}
	if len(envelope.Response) == 0 {
		return usecase.ExternalPrediction{}, false, nil
	}

	return mapPredictionItem(fixtureID, envelope.Response[0]), true, nil
}

func (c *Client) FetchFixtureStatistics(ctx context.Context, fixtureID int64) ([]usecase.ExternalTeamStatistics, error) {
	if fixtureID <= 0 {
		return nil, fmt.Errorf("fixture id must be greater than zero")
	}

	var envelope fixtureStatisticsEnvelope
	query := map[string]string{"fixture": strconv.FormatInt(fixtureID, 10)}
	if err := c.doJSON(ctx, "/fixtures/statistics", query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch fixture statistics fixture=%d: %w", fixtureID, err)
	}

	out := make([]usecase.ExternalTeamStatistics, 0, len(envelope.Response))
	for _, item := range envelope.Response {
		out = append(out, mapTeamStatisticsItem(item))
	}
	return out, nil
}

func (c *Client) FetchFixtureEvents(ctx context.Context, fixtureID int64) ([]usecase.ExternalFixtureEvent, error) {
	if fixtureID <= 0 {
		return nil, fmt.Errorf("fixture id must be greater than zero")
	}

	var envelope fixtureEventsEnvelope
	query := map[string]string{"fixture": strconv.FormatInt(fixtureID, 10)}
	if err := c.doJSON(ctx, "/fixtures/events", query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch fixture events fixture=%d: %w", fixtureID, err)
	}

	out := make([]usecase.ExternalFixtureEvent, 0, len(envelope.Response))
	for _, item := range envelope.Response {
		out = append(out, mapEventItem(item))
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target envelopeChecker) error {
	if c.apiKey == "" {
		return fmt.Errorf("%w: provider api key is not configured", usecase.ErrMissingCredential)
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "api-football circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: football data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
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

	key := path + "?" + values.Encode()
	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isTransientFailure(reqErr) {
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

	return target.check()
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		req.Header.Set(apiKeyHeader, c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errAPIFootballTransient, sanitizeSensitiveText(err.Error(), c.apiKey))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errAPIFootballTransient, readErr)
			case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
				return nil, fmt.Errorf("%w: provider rejected api key status=%d", usecase.ErrMissingCredential, resp.StatusCode)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errAPIFootballTransient, resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
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
	c.logger.WarnContext(ctx, "api-football request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func sanitizeSensitiveText(value, key string) string {
	value = strings.TrimSpace(value)
	if value == "" || key == "" {
		return value
	}
	return strings.ReplaceAll(value, key, "REDACTED")
}

func isTransientFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errAPIFootballTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
