// Package collector fetches a page and its auxiliary resources and
// builds the fully-defaulted signal record the scoring engine consumes.
// It is the only part of the system that performs I/O; partial failures
// leave the affected fields at their documented defaults instead of
// aborting the audit.
package collector

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/temoto/robotstxt"
	"golang.org/x/time/rate"

	"github.com/webatelier/siteaudit/internal/models"
)

const maxBodyBytes = 5 << 20

// securityHeaders are the protective headers we look for; two or more
// of them count as a hardened setup.
var securityHeaders = []string{
	"Strict-Transport-Security",
	"Content-Security-Policy",
	"X-Content-Type-Options",
	"X-Frame-Options",
}

// Config tunes the collector's HTTP behavior.
type Config struct {
	UserAgent         string
	Timeout           time.Duration
	RequestsPerSecond int
}

// Collector turns a URL into an AnalysisDetails record.
type Collector struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
	pagespeed *PageSpeedClient
	log       zerolog.Logger
}

// New builds a Collector. pagespeed may be nil, in which case speed
// metrics keep their zero defaults.
func New(cfg Config, pagespeed *PageSpeedClient, log zerolog.Logger) *Collector {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 4
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "SiteAudit/1.0"
	}
	return &Collector{
		client:    &http.Client{Timeout: cfg.Timeout},
		limiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		userAgent: cfg.UserAgent,
		pagespeed: pagespeed,
		log:       log,
	}
}

// Collect fetches the page and probes robots.txt, sitemap.xml and the
// PageSpeed API. The returned record is always complete and defaulted;
// the error is non-nil only when the main document could not be
// fetched at all.
func (c *Collector) Collect(ctx context.Context, rawURL string) (*models.AnalysisDetails, error) {
	d := &models.AnalysisDetails{ImageQuality: models.ImageQualityUnknown}

	pageURL, err := normalizeURL(rawURL)
	if err != nil {
		return d, fmt.Errorf("invalid url %q: %w", rawURL, err)
	}

	resp, body, err := c.fetch(ctx, pageURL.String())
	if err != nil {
		return d, fmt.Errorf("fetch %s: %w", pageURL, err)
	}

	finalURL := pageURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL
	}
	d.HasHTTPS = finalURL.Scheme == "https"
	d.ValidCertificate = resp.TLS != nil
	d.HasSecurityHeaders = countSecurityHeaders(resp.Header) >= 2

	parsePage(body, finalURL, d)

	c.probeRobots(ctx, finalURL, d)
	c.probeSitemap(ctx, finalURL, d)

	if c.pagespeed != nil {
		m, err := c.pagespeed.Metrics(ctx, finalURL.String())
		if err != nil {
			c.log.Debug().Err(err).Str("url", finalURL.String()).Msg("pagespeed probe failed, keeping defaults")
		} else {
			d.LCP = m.LCP
			d.FCP = m.FCP
			d.TTFB = m.TTFB
			d.CLS = m.CLS
			d.TBT = m.TBT
			d.PageSpeedScore = m.Score
		}
	}

	return d, nil
}

func (c *Collector) fetch(ctx context.Context, url string) (*http.Response, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode >= 400 {
		return resp, body, fmt.Errorf("status %d", resp.StatusCode)
	}
	return resp, body, nil
}

func (c *Collector) probeRobots(ctx context.Context, pageURL *url.URL, d *models.AnalysisDetails) {
	robotsURL := pageURL.Scheme + "://" + pageURL.Host + "/robots.txt"
	resp, body, err := c.fetch(ctx, robotsURL)
	if err != nil {
		return
	}
	if resp.StatusCode != http.StatusOK {
		return
	}
	if _, err := robotstxt.FromBytes(body); err != nil {
		c.log.Debug().Err(err).Msg("robots.txt present but unparsable")
		return
	}
	d.HasRobotsTxt = true
	// A sitemap directive counts even when /sitemap.xml itself 404s.
	if strings.Contains(strings.ToLower(string(body)), "sitemap:") {
		d.HasSitemap = true
	}
}

func (c *Collector) probeSitemap(ctx context.Context, pageURL *url.URL, d *models.AnalysisDetails) {
	if d.HasSitemap {
		return
	}
	sitemapURL := pageURL.Scheme + "://" + pageURL.Host + "/sitemap.xml"
	resp, _, err := c.fetch(ctx, sitemapURL)
	if err != nil {
		return
	}
	d.HasSitemap = resp.StatusCode == http.StatusOK
}

func countSecurityHeaders(h http.Header) int {
	count := 0
	for _, name := range securityHeaders {
		if h.Get(name) != "" {
			count++
		}
	}
	return count
}

// normalizeURL defaults the scheme to https when the caller passed a
// bare domain.
func normalizeURL(raw string) (*url.URL, error) {
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Host == "" {
		return nil, fmt.Errorf("missing host")
	}
	return u, nil
}
