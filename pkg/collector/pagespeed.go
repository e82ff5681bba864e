package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultPageSpeedEndpoint = "https://www.googleapis.com/pagespeedonline/v5/runPagespeed"

// Metrics are the lab speed numbers the PageSpeed Insights API reports.
type Metrics struct {
	LCP   float64
	FCP   float64
	TTFB  float64
	CLS   float64
	TBT   float64
	Score int
}

// PageSpeedClient is a thin client for the PageSpeed Insights v5 API.
type PageSpeedClient struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewPageSpeedClient builds a client. An empty endpoint selects the
// public Google API.
func NewPageSpeedClient(apiKey, endpoint string, timeout time.Duration) *PageSpeedClient {
	if endpoint == "" {
		endpoint = defaultPageSpeedEndpoint
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &PageSpeedClient{
		apiKey:   apiKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type pagespeedResponse struct {
	LighthouseResult struct {
		Categories struct {
			Performance struct {
				Score float64 `json:"score"`
			} `json:"performance"`
		} `json:"categories"`
		Audits map[string]struct {
			NumericValue float64 `json:"numericValue"`
		} `json:"audits"`
	} `json:"lighthouseResult"`
}

// Metrics runs the audit for targetURL. On any failure the caller keeps
// the zero defaults, so an API outage degrades the speed category
// instead of failing the whole audit.
func (p *PageSpeedClient) Metrics(ctx context.Context, targetURL string) (Metrics, error) {
	q := url.Values{}
	q.Set("url", targetURL)
	q.Set("strategy", "mobile")
	if p.apiKey != "" {
		q.Set("key", p.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return Metrics{}, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return Metrics{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Metrics{}, fmt.Errorf("pagespeed status %d", resp.StatusCode)
	}

	var parsed pagespeedResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Metrics{}, fmt.Errorf("decode pagespeed response: %w", err)
	}

	audits := parsed.LighthouseResult.Audits
	return Metrics{
		LCP:   audits["largest-contentful-paint"].NumericValue,
		FCP:   audits["first-contentful-paint"].NumericValue,
		TTFB:  audits["server-response-time"].NumericValue,
		CLS:   audits["cumulative-layout-shift"].NumericValue,
		TBT:   audits["total-blocking-time"].NumericValue,
		Score: int(parsed.LighthouseResult.Categories.Performance.Score * 100),
	}, nil
}
