// Package quote is the price oracle client. It speaks the IEX-style quote
// endpoint, which serves stocks and crypto alike and tags crypto quotes with
// the "cryptocurrency" sector.
package quote

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/paxosraft/quorumbot/internal/domain"
)

const RouteAssetQuote = "/crypto/%s/quote"

const defaultRequestTimeout = 10 * time.Second

const cryptoSector = "cryptocurrency"

type quoteResponse struct {
	Symbol      string          `json:"symbol"`
	Sector      string          `json:"sector"`
	LatestPrice decimal.Decimal `json:"latestPrice"`
}

// Client is an HTTP implementation of the quoter used by the trade executor.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: defaultRequestTimeout,
		},
	}
}

// FetchAssetPrice returns the symbol's latest price and asset class. An
// unknown symbol is domain.ErrSymbolNotFound; any other non-200 answer is a
// StatusCodeError. The request carries the client's timeout, so a stalled
// oracle cannot stall a command handler indefinitely.
//
//nolint:nonamedreturns
func (c *Client) FetchAssetPrice(
	ctx context.Context,
	symbol string,
) (price decimal.Decimal, class domain.AssetClass, err error) {
	reqURL := c.baseURL + fmt.Sprintf(RouteAssetQuote, url.PathEscape(symbol))
	if c.token != "" {
		reqURL += "?token=" + url.QueryEscape(c.token)
	}

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if reqErr != nil {
		return decimal.Zero, "", errors.Wrap(reqErr, "create quote request")
	}

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return decimal.Zero, "", errors.Wrap(doErr, "do quote request")
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "close quote response")
		}
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return decimal.Zero, "", fmt.Errorf("quote %s: %w", symbol, domain.ErrSymbolNotFound)
	case resp.StatusCode != http.StatusOK:
		return decimal.Zero, "", NewStatusCodeError(resp.StatusCode)
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return decimal.Zero, "", errors.Wrap(readErr, "read quote response")
	}

	var quote quoteResponse
	if jsonErr := json.Unmarshal(body, &quote); jsonErr != nil {
		return decimal.Zero, "", errors.Wrap(jsonErr, "parse quote response")
	}

	class = domain.AssetStock
	if quote.Sector == cryptoSector {
		class = domain.AssetCrypto
	}
	return quote.LatestPrice, class, nil
}
