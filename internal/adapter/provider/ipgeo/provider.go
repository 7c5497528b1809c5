// Package ipgeo resolves IP addresses to approximate coordinates using the
// ip-api.com JSON endpoint.
package ipgeo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/netip"
	"net/url"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/proximity-backend/internal/adapter/cache"
	"github.com/heartmarshall/proximity-backend/internal/config"
	"github.com/heartmarshall/proximity-backend/internal/provider"
	"github.com/heartmarshall/proximity-backend/internal/telemetry"
	"github.com/heartmarshall/proximity-backend/pkg/geo"
)

const cacheName = "ipgeo"

// Provider looks up IP locations and caches successful results. Concurrent
// lookups of the same address share one upstream request.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	cache      cache.Store
	log        *slog.Logger
	inflight   singleflight.Group
}

// NewProvider creates a Provider from config. store may be nil to disable caching.
func NewProvider(cfg config.IPGeoConfig, store cache.Store, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cache:      store,
		log:        logger.With("adapter", "ipgeo"),
	}
}

// NewProviderWithURL creates an uncached Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "ipgeo"),
	}
}

// Locate returns the approximate location of ip.
// Returns nil, nil for addresses that cannot be located: unparseable,
// private, loopback and other non-public ranges, or a "fail" answer from
// the API. Transport errors are returned.
func (p *Provider) Locate(ctx context.Context, ip string) (*provider.IPLocation, error) {
	addr, ok := publicAddr(ip)
	if !ok {
		telemetry.IPGeoLookupsTotal.WithLabelValues(telemetry.LookupSkipped).Inc()
		return nil, nil
	}
	key := addr.String()

	if loc := p.fromCache(ctx, key); loc != nil {
		telemetry.IPGeoLookupsTotal.WithLabelValues(telemetry.LookupCacheHit).Inc()
		return loc, nil
	}

	v, err, _ := p.inflight.Do(key, func() (any, error) {
		return p.lookup(ctx, key)
	})
	loc, _ := v.(*provider.IPLocation)
	return loc, err
}

// lookup queries the API and caches a successful answer.
func (p *Provider) lookup(ctx context.Context, key string) (*provider.IPLocation, error) {
	start := time.Now()
	loc, err := p.fetch(ctx, key)
	telemetry.IPGeoLookupDuration.Observe(time.Since(start).Seconds())

	switch {
	case err != nil:
		telemetry.IPGeoLookupsTotal.WithLabelValues(telemetry.LookupError).Inc()
		p.log.WarnContext(ctx, "ipgeo request failed", slog.String("ip", key), slog.String("error", err.Error()))
		return nil, err
	case loc == nil:
		telemetry.IPGeoLookupsTotal.WithLabelValues(telemetry.LookupFail).Inc()
		return nil, nil
	}

	telemetry.IPGeoLookupsTotal.WithLabelValues(telemetry.LookupSuccess).Inc()
	p.toCache(ctx, key, loc)
	return loc, nil
}

func (p *Provider) fetch(ctx context.Context, ip string) (*provider.IPLocation, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(ip) + "?fields=" + fields

	p.log.DebugContext(ctx, "ipgeo request", slog.String("ip", ip))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("ipgeo: create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ipgeo: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ipgeo: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ipgeo: read body: %w", err)
	}

	var r apiResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("ipgeo: decode json: %w", err)
	}

	if r.Status != statusSuccess {
		p.log.DebugContext(ctx, "ipgeo lookup failed", slog.String("ip", ip), slog.String("message", r.Message))
		return nil, nil
	}

	pt := geo.Point{Lat: r.Lat, Lng: r.Lon}
	if err := pt.Validate(); err != nil {
		return nil, fmt.Errorf("ipgeo: invalid coordinates for %s: %w", ip, err)
	}

	return &provider.IPLocation{
		IP:          ip,
		Point:       pt,
		Country:     r.Country,
		CountryCode: r.CountryCode,
		Region:      r.RegionName,
		City:        r.City,
		Proxy:       r.Proxy,
		Hosting:     r.Hosting,
	}, nil
}

func (p *Provider) fromCache(ctx context.Context, key string) *provider.IPLocation {
	if p.cache == nil {
		return nil
	}
	raw, err := p.cache.Get(ctx, cacheName, key)
	if err != nil {
		p.log.WarnContext(ctx, "ipgeo cache get failed", slog.String("error", err.Error()))
		return nil
	}
	if raw == "" {
		return nil
	}
	var loc provider.IPLocation
	if err := json.Unmarshal([]byte(raw), &loc); err != nil {
		p.log.WarnContext(ctx, "ipgeo cache entry corrupt", slog.String("ip", key), slog.String("error", err.Error()))
		return nil
	}
	return &loc
}

func (p *Provider) toCache(ctx context.Context, key string, loc *provider.IPLocation) {
	if p.cache == nil {
		return
	}
	raw, err := json.Marshal(loc)
	if err != nil {
		return
	}
	if err := p.cache.Set(ctx, cacheName, key, string(raw)); err != nil {
		p.log.WarnContext(ctx, "ipgeo cache set failed", slog.String("error", err.Error()))
	}
}

// publicAddr parses ip and reports whether it is a publicly routable unicast address.
func publicAddr(ip string) (netip.Addr, bool) {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return netip.Addr{}, false
	}
	addr = addr.Unmap()
	if !addr.IsGlobalUnicast() || addr.IsPrivate() {
		return netip.Addr{}, false
	}
	return addr, true
}
