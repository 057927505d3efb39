package kraken

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lemconn/krakenlink/common"
	"github.com/lemconn/krakenlink/model"
	"github.com/lemconn/krakenlink/option"
)

const tickerJSON = `{"a":["1","1","1"],"b":["1","1","1"],"c":["1","1"],"v":["1","1"],"p":["1","1"],"t":[1,1],"l":["1","1"],"h":["1","1"],"o":"1"}`

func TestClient_Name(t *testing.T) {
	c, _ := newMockClient()
	assert.Equal(t, "kraken", c.Name())
	assert.NotNil(t, c.ExchangeData())
	assert.NotNil(t, c.Account())
}

func TestGetServerTime(t *testing.T) {
	c, exec := newMockClient()
	exec.respond(t, `{"unixtime":1700000000,"rfc1123":"Tue, 14 Nov 23 22:13:20 +0000"}`)

	result, err := c.ExchangeData().GetServerTime(context.Background())
	require.NoError(t, err)

	assert.Equal(t, time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC), result.Data)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "1", result.Header.Get("X-Test"))

	req := exec.request(t, 0)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "https://api.kraken.com/0/public/Time", req.URI)
	assert.False(t, req.Signed)
	assert.Zero(t, req.Params.Len())
}

func TestGetTicker_SameParamsAsGetTickers(t *testing.T) {
	c, exec := newMockClient()
	exec.respond(t, `{"XBTUSD":`+tickerJSON+`}`)

	_, err := c.ExchangeData().GetTicker(context.Background(), "XBTUSD")
	require.NoError(t, err)
	_, err = c.ExchangeData().GetTickers(context.Background(), []string{"XBTUSD"})
	require.NoError(t, err)

	single := exec.request(t, 0)
	list := exec.request(t, 1)
	assert.Equal(t, single.URI, list.URI)
	assert.Equal(t, single.Params.EncodeQuery(), list.Params.EncodeQuery())
	assert.Equal(t, "pair=XBTUSD", single.Params.EncodeQuery())
}

func TestGetTickers_EmptyListIsRejected(t *testing.T) {
	c, exec := newMockClient()

	_, err := c.ExchangeData().GetTickers(context.Background(), nil)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
	_, err = c.ExchangeData().GetTickerList(context.Background(), []string{})
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	exec.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetTickers_BackfillsSymbol(t *testing.T) {
	c, exec := newMockClient()
	exec.respond(t, `{"ETHUSD":`+tickerJSON+`,"BTCUSD":`+tickerJSON+`}`)

	result, err := c.ExchangeData().GetTickers(context.Background(), []string{"ETHUSD", "BTCUSD"})
	require.NoError(t, err)

	require.Len(t, result.Data, 2)
	assert.Equal(t, "ETHUSD", result.Data["ETHUSD"].Symbol)
	assert.Equal(t, "BTCUSD", result.Data["BTCUSD"].Symbol)
	assert.Equal(t, "pair=ETHUSD%2CBTCUSD", exec.request(t, 0).Params.EncodeQuery())
}

func TestGetTickerList_KeepsRequestOrder(t *testing.T) {
	c, exec := newMockClient()
	exec.respond(t, `{"BTCUSD":`+tickerJSON+`,"ETHUSD":`+tickerJSON+`}`)

	result, err := c.ExchangeData().GetTickerList(context.Background(), []string{"ETHUSD", "BTC/USD"})
	require.NoError(t, err)

	require.Len(t, result.Data, 2)
	assert.Equal(t, "ETHUSD", result.Data[0].Symbol)
	assert.Equal(t, "BTCUSD", result.Data[1].Symbol)
}

func TestGetTicker_Unwrapped(t *testing.T) {
	c, exec := newMockClient()
	exec.respond(t, `{"XXBTZUSD":`+tickerJSON+`}`)

	result, err := c.ExchangeData().GetTicker(context.Background(), "XBTUSD")
	require.NoError(t, err)
	assert.Equal(t, "XXBTZUSD", result.Data.Symbol)
	assert.Equal(t, "1", result.Data.OpenPrice.String())
}

func TestGetOrderBook_SingleEntryUnwrapped(t *testing.T) {
	c, exec := newMockClient()
	exec.respond(t, `{"BTCUSD":{"asks":[["30384.1","2.059",1688671659]],"bids":[["30297.0","0.115",1688671505]]}}`)

	result, err := c.ExchangeData().GetOrderBook(context.Background(), "BTCUSD")
	require.NoError(t, err)

	require.Len(t, result.Data.Asks, 1)
	require.Len(t, result.Data.Bids, 1)
	assert.Equal(t, "30384.1", result.Data.Asks[0].Price.String())
	assert.Equal(t, "0.115", result.Data.Bids[0].Quantity.String())

	req := exec.request(t, 0)
	assert.Equal(t, []string{"pair"}, req.Params.Keys())
}

func TestGetOrderBook_MultipleEntries(t *testing.T) {
	t.Run("matching key", func(t *testing.T) {
		c, exec := newMockClient()
		exec.respond(t, `{"ETHUSD":{"asks":[],"bids":[]},"XBT/USD":{"asks":[["1","2",1688671659]],"bids":[]}}`)

		result, err := c.ExchangeData().GetOrderBook(context.Background(), "XBTUSD")
		require.NoError(t, err)
		assert.Len(t, result.Data.Asks, 1)
	})

	t.Run("no matching key", func(t *testing.T) {
		c, exec := newMockClient()
		exec.respond(t, `{"ETHUSD":{"asks":[],"bids":[]},"XXBTZUSD":{"asks":[],"bids":[]}}`)

		result, err := c.ExchangeData().GetOrderBook(context.Background(), "XBTUSD")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, common.ErrUnexpectedResponse)
	})

	t.Run("empty", func(t *testing.T) {
		c, exec := newMockClient()
		exec.respond(t, `{}`)

		result, err := c.ExchangeData().GetOrderBook(context.Background(), "XBTUSD")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, common.ErrEmptyResponse)
	})
}

func TestGetOrderBook_Limit(t *testing.T) {
	c, exec := newMockClient()
	exec.respond(t, `{"XBTUSD":{"asks":[],"bids":[]}}`)

	_, err := c.ExchangeData().GetOrderBook(context.Background(), "XBTUSD", option.WithLimit(10))
	require.NoError(t, err)
	assert.Equal(t, "pair=XBTUSD&count=10", exec.request(t, 0).Params.EncodeQuery())

	_, err = c.ExchangeData().GetOrderBook(context.Background(), "XBTUSD", option.WithLimit(0))
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
	_, err = c.ExchangeData().GetOrderBook(context.Background(), "XBTUSD", option.WithLimit(501))
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
	exec.AssertNumberOfCalls(t, "Execute", 1)
}

func TestGetKlines_Params(t *testing.T) {
	c, exec := newMockClient()
	exec.respond(t, `{"XBTUSD":[[1688671200,"1","1","1","1","1","1",1]],"last":1688671200}`)

	result, err := c.ExchangeData().GetKlines(context.Background(), "XBTUSD", model.KlineInterval4h)
	require.NoError(t, err)
	assert.Equal(t, "XBTUSD", result.Data.Symbol)
	require.Len(t, result.Data.Data, 1)
	assert.Equal(t, "pair=XBTUSD&interval=240", exec.request(t, 0).Params.EncodeQuery())

	since := time.Unix(1688671200, 500)
	_, err = c.ExchangeData().GetKlines(context.Background(), "XBTUSD", model.KlineInterval1m, option.WithSince(since))
	require.NoError(t, err)
	assert.Equal(t, "1688671200", exec.request(t, 1).Params.Get("since"))
}

func TestGetKlines_UnknownInterval(t *testing.T) {
	c, exec := newMockClient()

	_, err := c.ExchangeData().GetKlines(context.Background(), "XBTUSD", model.KlineInterval("2h"))
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
	exec.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetTradeHistory_SinceInNanoseconds(t *testing.T) {
	c, exec := newMockClient()
	exec.respond(t, `{"XBTUSD":[["1","1",1688669597.8277,"b","m","",1]],"last":"1688671969993150842"}`)

	since := time.Unix(0, 1688671969993150842)
	result, err := c.ExchangeData().GetTradeHistory(context.Background(), "XBTUSD", option.WithSince(since))
	require.NoError(t, err)
	require.Len(t, result.Data.Data, 1)

	params := exec.request(t, 0).Params
	assert.Equal(t, "1688671969993150842", params.Get("since"))
	assert.False(t, params.Has("count"))
}

func TestGetRecentSpread_SinceInSeconds(t *testing.T) {
	c, exec := newMockClient()
	exec.respond(t, `{"XBTUSD":[[1688671834,"1","2"]],"last":1688672106}`)

	_, err := c.ExchangeData().GetRecentSpread(context.Background(), "XBTUSD", option.WithSince(time.Unix(1688671834, 0)))
	require.NoError(t, err)
	assert.Equal(t, "pair=XBTUSD&since=1688671834", exec.request(t, 0).Params.EncodeQuery())
}

func TestGetRecentSpread_OmitsUnsetSince(t *testing.T) {
	c, exec := newMockClient()
	exec.respond(t, `{"XBTUSD":[],"last":1688672106}`)

	_, err := c.ExchangeData().GetRecentSpread(context.Background(), "XBTUSD")
	require.NoError(t, err)
	assert.Equal(t, []string{"pair"}, exec.request(t, 0).Params.Keys())
}

func TestGetAssetsAndSymbols_OptionalFilter(t *testing.T) {
	c, exec := newMockClient()
	exec.respond(t, `{}`)

	_, err := c.ExchangeData().GetAssets(context.Background())
	require.NoError(t, err)
	_, err = c.ExchangeData().GetAssets(context.Background(), "XBT", "ETH")
	require.NoError(t, err)
	_, err = c.ExchangeData().GetSymbols(context.Background(), "XBTUSD", "ETH/USD")
	require.NoError(t, err)

	assert.Zero(t, exec.request(t, 0).Params.Len())
	assert.Equal(t, "XBT,ETH", exec.request(t, 1).Params.Get("asset"))
	assert.Equal(t, "XBTUSD,ETH/USD", exec.request(t, 2).Params.Get("pair"))

	_, err = c.ExchangeData().GetAssets(context.Background(), "XBT", " ")
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
	exec.AssertNumberOfCalls(t, "Execute", 3)
}

func TestSingleSymbolMethods_RejectInvalidSymbol(t *testing.T) {
	ctx := context.Background()
	calls := map[string]func(d *SpotExchangeData, symbol string) error{
		"GetTicker": func(d *SpotExchangeData, s string) error {
			_, err := d.GetTicker(ctx, s)
			return err
		},
		"GetTickers": func(d *SpotExchangeData, s string) error {
			_, err := d.GetTickers(ctx, []string{s})
			return err
		},
		"GetKlines": func(d *SpotExchangeData, s string) error {
			_, err := d.GetKlines(ctx, s, model.KlineInterval1h)
			return err
		},
		"GetOrderBook": func(d *SpotExchangeData, s string) error {
			_, err := d.GetOrderBook(ctx, s)
			return err
		},
		"GetTradeHistory": func(d *SpotExchangeData, s string) error {
			_, err := d.GetTradeHistory(ctx, s)
			return err
		},
		"GetRecentSpread": func(d *SpotExchangeData, s string) error {
			_, err := d.GetRecentSpread(ctx, s)
			return err
		},
	}

	for name, call := range calls {
		for _, symbol := range []string{"", "   ", "\t", "BTC", "BTC-USD", "B/USD"} {
			c, exec := newMockClient()
			err := call(c.data, symbol)
			assert.ErrorIs(t, err, common.ErrInvalidArgument, "%s(%q)", name, symbol)
			exec.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything, mock.Anything)
		}
	}
}
