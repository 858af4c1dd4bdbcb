package quote

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/paxosraft/quorumbot/internal/domain"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *ClientTestSuite) TestFetchAssetPrice() {
	quotes := map[string]quoteResponse{
		"tsla": {Symbol: "TSLA", Sector: "automotive", LatestPrice: decimal.RequireFromString("412.50")},
		"btc":  {Symbol: "BTC", Sector: "cryptocurrency", LatestPrice: decimal.RequireFromString("60123.45")},
	}

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("sekret", r.URL.Query().Get("token"))

		symbol := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/crypto/"), "/quote")

		if symbol == "boom" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		quote, ok := quotes[symbol]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		s.Require().NoError(json.NewEncoder(w).Encode(quote))
	}))

	client := New(s.server.URL, "sekret")

	cases := []struct {
		name      string
		symbol    string
		wantPrice string
		wantClass domain.AssetClass
		wantErr   error
	}{
		{name: "stock", symbol: "tsla", wantPrice: "412.50", wantClass: domain.AssetStock},
		{name: "crypto sector", symbol: "btc", wantPrice: "60123.45", wantClass: domain.AssetCrypto},
		{name: "unknown symbol", symbol: "zzzz", wantErr: domain.ErrSymbolNotFound},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			price, class, err := client.FetchAssetPrice(s.T().Context(), tc.symbol)
			if tc.wantErr != nil {
				s.Require().ErrorIs(err, tc.wantErr)
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.wantClass, class)
			s.True(price.Equal(decimal.RequireFromString(tc.wantPrice)), "price %s", price)
		})
	}

	s.Run("upstream failure", func() {
		_, _, err := client.FetchAssetPrice(s.T().Context(), "boom")
		var scErr *StatusCodeError
		s.Require().ErrorAs(err, &scErr)
		s.Equal(http.StatusInternalServerError, scErr.Code)
	})
}

func (s *ClientTestSuite) TestFetchAssetPriceWithoutToken() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.False(r.URL.Query().Has("token"))
		w.Header().Set("Content-Type", "application/json")
		s.Require().NoError(json.NewEncoder(w).Encode(quoteResponse{
			Symbol:      "ETH",
			Sector:      "cryptocurrency",
			LatestPrice: decimal.RequireFromString("2000"),
		}))
	}))

	client := New(s.server.URL, "")

	price, class, err := client.FetchAssetPrice(s.T().Context(), "eth")
	s.Require().NoError(err)
	s.Equal(domain.AssetCrypto, class)
	s.True(price.Equal(decimal.NewFromInt(2000)), "price %s", price)
}

func (s *ClientTestSuite) TestFetchAssetPriceServerGone() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	server.Close()

	client := New(server.URL, "")

	_, _, err := client.FetchAssetPrice(s.T().Context(), "tsla")
	s.Require().Error(err)
	s.False(errors.Is(err, domain.ErrSymbolNotFound))
}
