package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCollector(pagespeed *PageSpeedClient) *Collector {
	return New(Config{RequestsPerSecond: 100}, pagespeed, zerolog.Nop())
}

func TestCollectFullSite(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			w.Header().Set("Strict-Transport-Security", "max-age=31536000")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte(fixtureHTML))
		case "/robots.txt":
			w.Write([]byte("User-agent: *\nAllow: /\nSitemap: " + "http://" + r.Host + "/sitemap.xml\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	d, err := testCollector(nil).Collect(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "Masážní salon Harmonie Praha", d.Title)
	assert.False(t, d.HasHTTPS)
	assert.False(t, d.ValidCertificate)
	assert.True(t, d.HasSecurityHeaders)
	assert.True(t, d.HasRobotsTxt)
	// The sitemap directive counts even though /sitemap.xml 404s.
	assert.True(t, d.HasSitemap)
	// No PageSpeed client configured, so speed metrics keep defaults.
	assert.Zero(t, d.PageSpeedScore)
	assert.Zero(t, d.LCP)
}

func TestCollectOverTLS(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			w.Write([]byte("<html><head><title>ok</title></head><body></body></html>"))
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	c := testCollector(nil)
	c.client = server.Client()

	d, err := c.Collect(context.Background(), server.URL)
	require.NoError(t, err)
	assert.True(t, d.HasHTTPS)
	assert.True(t, d.ValidCertificate)
	assert.False(t, d.HasSecurityHeaders)
	assert.False(t, d.HasRobotsTxt)
	assert.False(t, d.HasSitemap)
}

func TestCollectSitemapProbeFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			w.Write([]byte("<html><head><title>ok</title></head></html>"))
		case "/sitemap.xml":
			w.Write([]byte(`<?xml version="1.0"?><urlset></urlset>`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	d, err := testCollector(nil).Collect(context.Background(), server.URL)
	require.NoError(t, err)
	assert.False(t, d.HasRobotsTxt)
	assert.True(t, d.HasSitemap)
}

func TestCollectServerErrorReturnsDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	d, err := testCollector(nil).Collect(context.Background(), server.URL)
	assert.Error(t, err)
	require.NotNil(t, d)
	assert.Empty(t, d.Title)
}

func TestCollectInvalidURL(t *testing.T) {
	d, err := testCollector(nil).Collect(context.Background(), "https://")
	assert.Error(t, err)
	assert.NotNil(t, d)
}

func TestCollectMergesPageSpeedMetrics(t *testing.T) {
	psAPI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "mobile", r.URL.Query().Get("strategy"))
		assert.NotEmpty(t, r.URL.Query().Get("url"))
		w.Write([]byte(`{
			"lighthouseResult": {
				"categories": {"performance": {"score": 0.42}},
				"audits": {
					"largest-contentful-paint": {"numericValue": 5200},
					"first-contentful-paint": {"numericValue": 2100},
					"server-response-time": {"numericValue": 900},
					"cumulative-layout-shift": {"numericValue": 0.18},
					"total-blocking-time": {"numericValue": 350}
				}
			}
		}`))
	}))
	defer psAPI.Close()

	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			w.Write([]byte("<html><head><title>ok</title></head></html>"))
			return
		}
		http.NotFound(w, r)
	}))
	defer site.Close()

	pagespeed := NewPageSpeedClient("", psAPI.URL, 0)
	d, err := testCollector(pagespeed).Collect(context.Background(), site.URL)
	require.NoError(t, err)

	assert.Equal(t, 42, d.PageSpeedScore)
	assert.Equal(t, 5200.0, d.LCP)
	assert.Equal(t, 2100.0, d.FCP)
	assert.Equal(t, 900.0, d.TTFB)
	assert.Equal(t, 0.18, d.CLS)
	assert.Equal(t, 350.0, d.TBT)
}

func TestCollectSurvivesPageSpeedOutage(t *testing.T) {
	psAPI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota", http.StatusTooManyRequests)
	}))
	defer psAPI.Close()

	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			w.Write([]byte("<html><head><title>ok</title></head></html>"))
			return
		}
		http.NotFound(w, r)
	}))
	defer site.Close()

	pagespeed := NewPageSpeedClient("", psAPI.URL, 0)
	d, err := testCollector(pagespeed).Collect(context.Background(), site.URL)
	require.NoError(t, err)
	assert.Equal(t, "ok", d.Title)
	assert.Zero(t, d.PageSpeedScore)
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"bare domain gets https", "example.com", "https://example.com", false},
		{"existing scheme kept", "http://example.com/x", "http://example.com/x", false},
		{"missing host", "https://", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := normalizeURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}
}

func TestCountSecurityHeaders(t *testing.T) {
	h := http.Header{}
	assert.Equal(t, 0, countSecurityHeaders(h))

	h.Set("Strict-Transport-Security", "max-age=1")
	h.Set("Content-Security-Policy", "default-src 'self'")
	h.Set("X-Frame-Options", "DENY")
	assert.Equal(t, 3, countSecurityHeaders(h))
}
