// Package quote implements the external market-data collaborator over a
// chart-API style HTTP endpoint.
package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"social-momentum-scanner/internal/types"
)

// Client fetches quotes and daily price histories. Absence of data is an
// error here; callers translate errors into "no data" per symbol.
type Client struct {
	baseURL    string
	rng        string
	httpClient *http.Client
	headers    map[string]string
}

// Params configures the quote client.
type Params struct {
	BaseURL string        // e.g. https://query1.finance.yahoo.com
	Range   string        // history window, e.g. "3mo"
	Timeout time.Duration // transport-level timeout
}

func NewClient(p Params) *Client {
	if p.Range == "" {
		p.Range = "3mo"
	}
	if p.Timeout <= 0 {
		p.Timeout = 30 * time.Second
	}
	return &Client{
		baseURL: p.BaseURL,
		rng:     p.Range,
		httpClient: &http.Client{
			Timeout: p.Timeout,
		},
		headers: map[string]string{
			"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
			"Accept":     "application/json",
		},
	}
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				RegularMarketPrice float64  `json:"regularMarketPrice"`
				FiftyTwoWeekHigh   *float64 `json:"fiftyTwoWeekHigh"`
				FiftyTwoWeekLow    *float64 `json:"fiftyTwoWeekLow"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

type summaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			SummaryProfile *struct {
				Sector   string `json:"sector"`
				Industry string `json:"industry"`
			} `json:"summaryProfile"`
			SummaryDetail *struct {
				TrailingPE *struct {
					Raw float64 `json:"raw"`
				} `json:"trailingPE"`
				MarketCap *struct {
					Raw float64 `json:"raw"`
				} `json:"marketCap"`
			} `json:"summaryDetail"`
		} `json:"result"`
	} `json:"quoteSummary"`
}

// Price returns the current regular-market price using a one-day chart
// request, the cheapest lookup the API offers.
func (c *Client) Price(ctx context.Context, symbol string) (float64, error) {
	resp, err := c.fetchChart(ctx, symbol, "1d")
	if err != nil {
		return 0, err
	}
	return resp.Chart.Result[0].Meta.RegularMarketPrice, nil
}

// History returns the configured range of daily bars plus the scalar quote
// fields. Profile scalars are best effort: their absence leaves the fields
// empty rather than failing the whole quote.
func (c *Client) History(ctx context.Context, symbol string) (*types.Quote, error) {
	resp, err := c.fetchChart(ctx, symbol, c.rng)
	if err != nil {
		return nil, err
	}

	result := resp.Chart.Result[0]
	q := &types.Quote{
		Symbol:             symbol,
		RegularMarketPrice: result.Meta.RegularMarketPrice,
		High52W:            result.Meta.FiftyTwoWeekHigh,
		Low52W:             result.Meta.FiftyTwoWeekLow,
	}

	if len(result.Indicators.Quote) > 0 {
		iq := result.Indicators.Quote[0]
		for i, ts := range result.Timestamp {
			if i >= len(iq.Close) || iq.Close[i] == nil {
				continue
			}
			bar := types.Bar{Ts: ts, Close: *iq.Close[i]}
			if i < len(iq.Open) && iq.Open[i] != nil {
				bar.Open = *iq.Open[i]
			}
			if i < len(iq.High) && iq.High[i] != nil {
				bar.High = *iq.High[i]
			}
			if i < len(iq.Low) && iq.Low[i] != nil {
				bar.Low = *iq.Low[i]
			}
			if i < len(iq.Volume) && iq.Volume[i] != nil {
				bar.Volume = *iq.Volume[i]
			}
			q.Bars = append(q.Bars, bar)
		}
	}
	if len(q.Bars) == 0 {
		return nil, fmt.Errorf("empty price history for %s", symbol)
	}

	c.attachProfile(ctx, symbol, q)
	return q, nil
}

func (c *Client) fetchChart(ctx context.Context, symbol, rng string) (*chartResponse, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=1d",
		c.baseURL, url.PathEscape(symbol), url.QueryEscape(rng))

	body, err := c.makeRequest(ctx, u)
	if err != nil {
		return nil, err
	}

	var resp chartResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode chart response: %w", err)
	}
	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("chart API error for %s: %s", symbol, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("no chart data for %s", symbol)
	}
	return &resp, nil
}

func (c *Client) attachProfile(ctx context.Context, symbol string, q *types.Quote) {
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=summaryProfile,summaryDetail",
		c.baseURL, url.PathEscape(symbol))

	body, err := c.makeRequest(ctx, u)
	if err != nil {
		return
	}
	var resp summaryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return
	}

	r := resp.QuoteSummary.Result[0]
	if r.SummaryProfile != nil {
		q.Sector = r.SummaryProfile.Sector
		q.Industry = r.SummaryProfile.Industry
	}
	if r.SummaryDetail != nil {
		if r.SummaryDetail.TrailingPE != nil {
			q.PERatio = &r.SummaryDetail.TrailingPE.Raw
		}
		if r.SummaryDetail.MarketCap != nil {
			q.MarketCap = &r.SummaryDetail.MarketCap.Raw
		}
	}
}

func (c *Client) makeRequest(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
