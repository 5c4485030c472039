// Package geocoding resolves street addresses through a Nominatim-compatible API.
package geocoding

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"lightmap/config"
	"lightmap/internal/domain/entity"
	"lightmap/internal/domain/service"
	"lightmap/internal/errors"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const defaultUserAgent = "lightmap-importer/1.0"

// ErrCircuitOpen is returned while the geocoder is considered unavailable.
var ErrCircuitOpen = errors.New("geocoder circuit breaker is open")

// NominatimGeocoder queries /search with format=jsonv2.
type NominatimGeocoder struct {
	client       *http.Client
	baseURL      string
	userAgent    string
	countryCodes string
	limiter      *rate.Limiter
	breaker      *gobreaker.CircuitBreaker[entity.Coordinate]
	logger       *slog.Logger
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// NewNominatimGeocoder creates a rate limited geocoder. A nil client uses one with cfg.Timeout.
func NewNominatimGeocoder(cfg config.GeocoderConfig, client *http.Client, logger *slog.Logger) *NominatimGeocoder {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	g := &NominatimGeocoder{
		client:       client,
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:    userAgent,
		countryCodes: cfg.CountryCodes,
		limiter:      rate.NewLimiter(limit, 1),
		logger:       logger,
	}

	g.breaker = gobreaker.NewCircuitBreaker[entity.Coordinate](gobreaker.Settings{
		Name:        "geocoder",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, service.ErrAddressNotGeocoded)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Geocoder circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return g
}

// Geocode returns the first match for query.
func (g *NominatimGeocoder) Geocode(ctx context.Context, query string) (entity.Coordinate, error) {
	if strings.TrimSpace(query) == "" {
		return entity.Coordinate{}, service.ErrAddressNotGeocoded
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return entity.Coordinate{}, errors.Wrap(err, "geocoder rate limit wait")
	}

	coordinate, err := g.breaker.Execute(func() (entity.Coordinate, error) {
		return g.search(ctx, query)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return entity.Coordinate{}, errors.Wrap(ErrCircuitOpen, err.Error())
	}

	return coordinate, err
}

func (g *NominatimGeocoder) search(ctx context.Context, query string) (entity.Coordinate, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")
	if g.countryCodes != "" {
		params.Set("countrycodes", g.countryCodes)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return entity.Coordinate{}, errors.Wrap(err, "failed to build geocoder request")
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		return entity.Coordinate{}, errors.Wrap(err, "geocoder request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return entity.Coordinate{}, errors.Errorf("geocoder returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return entity.Coordinate{}, errors.Wrap(err, "failed to decode geocoder response")
	}

	g.logger.Debug("Geocoded address",
		slog.String("query", query),
		slog.Int("results", len(results)),
		slog.Duration("elapsed", time.Since(start)),
	)

	if len(results) == 0 {
		return entity.Coordinate{}, service.ErrAddressNotGeocoded
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return entity.Coordinate{}, errors.Wrapf(err, "invalid latitude %q", results[0].Lat)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return entity.Coordinate{}, errors.Wrapf(err, "invalid longitude %q", results[0].Lon)
	}

	return entity.NewCoordinate(lat, lng)
}
