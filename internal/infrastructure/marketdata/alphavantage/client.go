package alphavantage

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "https://www.alphavantage.co"
	rapidAPIHost   = "alpha-vantage.p.rapidapi.com"
	rapidAPIURL    = "https://" + rapidAPIHost
	queryPath      = "/query"
	defaultTimeout = 30 * time.Second
	outputSizeFull = "full"
)

// Client talks to the Alpha Vantage query endpoint, either directly with an
// apikey parameter or through the RapidAPI gateway with key headers.
type Client struct {
	http   *resty.Client
	apiKey string
	rapid  bool
}

var _ Upstream = (*Client)(nil)

func NewClient(apiKey string) *Client {
	return newClient(resty.New(), apiKey, false)
}

// NewRapidAPIClient authenticates through RapidAPI instead of the native key.
func NewRapidAPIClient(apiKey string) *Client {
	return newClient(resty.New(), apiKey, true)
}

func NewClientWithHTTPClient(apiKey string, httpClient *http.Client) *Client {
	return newClient(resty.NewWithClient(httpClient), apiKey, false)
}

func newClient(rc *resty.Client, apiKey string, rapid bool) *Client {
	c := &Client{http: rc, apiKey: apiKey, rapid: rapid}
	rc.SetTimeout(defaultTimeout)
	if rapid {
		rc.SetBaseURL(rapidAPIURL)
		rc.SetHeaders(map[string]string{
			"X-RapidAPI-Key":  apiKey,
			"X-RapidAPI-Host": rapidAPIHost,
		})
	} else {
		rc.SetBaseURL(defaultBaseURL)
	}
	return c
}

func (c *Client) SetBaseURL(url string) {
	c.http.SetBaseURL(url)
}

func (c *Client) SetTimeout(timeout time.Duration) {
	c.http.SetTimeout(timeout)
}

func (c *Client) query(ctx context.Context, fn Function, params map[string]string) ([]byte, error) {
	req := c.http.R().
		SetContext(ctx).
		SetQueryParam("function", string(fn)).
		SetQueryParam("datatype", "json").
		SetQueryParams(params)
	if !c.rapid {
		req.SetQueryParam("apikey", c.apiKey)
	}

	start := time.Now()
	resp, err := req.Get(queryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	slog.DebugContext(ctx, "alpha vantage request",
		"function", fn, "status", resp.StatusCode(), "duration", time.Since(start))

	if resp.IsError() {
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode(), resp.String())
	}
	return resp.Body(), nil
}

func (c *Client) GlobalQuote(ctx context.Context, symbol string) (*GlobalQuote, error) {
	body, err := c.query(ctx, FuncGlobalQuote, map[string]string{"symbol": symbol})
	if err != nil {
		return nil, err
	}
	return decodeGlobalQuote(body)
}

func seriesParams(call SeriesCall) map[string]string {
	params := map[string]string{"outputsize": outputSizeFull}
	if call.Interval != "" {
		params["interval"] = call.Interval
	}
	return params
}

func (c *Client) StockSeries(ctx context.Context, symbol string, call SeriesCall) (*StockSeries, error) {
	params := seriesParams(call)
	params["symbol"] = symbol
	if call.Function == FuncIntraday {
		params["adjusted"] = strconv.FormatBool(call.Adjusted)
	}
	body, err := c.query(ctx, call.Function, params)
	if err != nil {
		return nil, err
	}
	return decodeStockSeries(body)
}

func (c *Client) ForexSeries(ctx context.Context, from, to string, call SeriesCall) (*ForexSeries, error) {
	params := seriesParams(call)
	params["from_symbol"] = from
	params["to_symbol"] = to
	body, err := c.query(ctx, call.Function, params)
	if err != nil {
		return nil, err
	}
	return decodeForexSeries(body)
}

func (c *Client) CryptoSeries(ctx context.Context, symbol, market string, call SeriesCall) (*CryptoSeries, error) {
	params := seriesParams(call)
	params["symbol"] = symbol
	params["market"] = market
	body, err := c.query(ctx, call.Function, params)
	if err != nil {
		return nil, err
	}
	return decodeCryptoSeries(body)
}

func (c *Client) SymbolSearch(ctx context.Context, keywords string) ([]SymbolMatch, error) {
	body, err := c.query(ctx, FuncSymbolSearch, map[string]string{"keywords": keywords})
	if err != nil {
		return nil, err
	}
	return decodeSymbolSearch(body)
}

func (c *Client) Earnings(ctx context.Context, symbol string) (*EarningsReport, error) {
	body, err := c.query(ctx, FuncEarnings, map[string]string{"symbol": symbol})
	if err != nil {
		return nil, err
	}
	return decodeEarnings(body)
}
