package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKlinesResult_UnmarshalJSON(t *testing.T) {
	raw := `{"XXBTZUSD":[[1688671200,"30306.1","30306.2","30305.7","30305.7","30306.1","3.39243896",23]],"last":1688671200}`

	var r KlinesResult
	require.NoError(t, json.Unmarshal([]byte(raw), &r))

	assert.Equal(t, "XXBTZUSD", r.Symbol)
	require.Len(t, r.Data, 1)
	k := r.Data[0]
	assert.Equal(t, time.Unix(1688671200, 0).UTC(), k.Timestamp.Time)
	assert.Equal(t, "30306.1", k.Open.String())
	assert.Equal(t, "30306.2", k.High.String())
	assert.Equal(t, "30305.7", k.Low.String())
	assert.Equal(t, "30305.7", k.Close.String())
	assert.Equal(t, "30306.1", k.VolumeWeightedAveragePrice.String())
	assert.Equal(t, "3.39243896", k.Volume.String())
	assert.Equal(t, int64(23), k.TradeCount)
	assert.Equal(t, time.Unix(1688671200, 0).UTC(), r.Last.Time)
}

func TestKlinesResult_UnmarshalJSON_ShortRow(t *testing.T) {
	raw := `{"XXBTZUSD":[[1688671200,"1","2"]],"last":1688671200}`
	var r KlinesResult
	assert.Error(t, json.Unmarshal([]byte(raw), &r))
}

func TestKlinesResult_UnmarshalJSON_MultiplePairs(t *testing.T) {
	raw := `{"XXBTZUSD":[],"XETHZUSD":[],"last":1}`
	var r KlinesResult
	assert.Error(t, json.Unmarshal([]byte(raw), &r))
}

func TestTradesResult_UnmarshalJSON(t *testing.T) {
	raw := `{"XXBTZUSD":[
		["30243.40000","0.34507674",1688669597.8277369,"b","m","",61044952],
		["30243.30000","0.00376960",1688669598.2804112,"s","l",""]
	],"last":"1688671969993150842"}`

	var r TradesResult
	require.NoError(t, json.Unmarshal([]byte(raw), &r))

	assert.Equal(t, "XXBTZUSD", r.Symbol)
	require.Len(t, r.Data, 2)

	first := r.Data[0]
	assert.Equal(t, "30243.4", first.Price.String())
	assert.Equal(t, "0.34507674", first.Quantity.String())
	assert.Equal(t, int64(1688669597), first.Timestamp.Unix())
	assert.Equal(t, OrderSideBuy, first.Side)
	assert.Equal(t, OrderTypeMarket, first.Type)
	assert.Equal(t, int64(61044952), first.TradeID)

	second := r.Data[1]
	assert.Equal(t, OrderSideSell, second.Side)
	assert.Equal(t, OrderTypeLimit, second.Type)
	assert.Zero(t, second.TradeID)

	assert.Equal(t, time.Unix(0, 1688671969993150842).UTC(), r.Last.Time)
}

func TestTrade_UnmarshalJSON_UnknownSide(t *testing.T) {
	var tr Trade
	assert.Error(t, json.Unmarshal([]byte(`["1","1",1688669597,"x","m",""]`), &tr))
}

func TestSpreadsResult_UnmarshalJSON(t *testing.T) {
	raw := `{"XXBTZUSD":[[1688671834,"30292.10000","30297.50000"]],"last":1688672106}`

	var r SpreadsResult
	require.NoError(t, json.Unmarshal([]byte(raw), &r))

	assert.Equal(t, "XXBTZUSD", r.Symbol)
	require.Len(t, r.Data, 1)
	assert.Equal(t, time.Unix(1688671834, 0).UTC(), r.Data[0].Timestamp.Time)
	assert.Equal(t, "30292.1", r.Data[0].BestBidPrice.String())
	assert.Equal(t, "30297.5", r.Data[0].BestAskPrice.String())
	assert.Equal(t, int64(1688672106), r.Last.Unix())
}

func TestOrderBook_UnmarshalJSON(t *testing.T) {
	raw := `{"asks":[["30384.10000","2.059",1688671659]],"bids":[["30297.00000","0.115",1688671505],["30296.90000","1.000",1688671500]]}`

	var b OrderBook
	require.NoError(t, json.Unmarshal([]byte(raw), &b))

	require.Len(t, b.Asks, 1)
	require.Len(t, b.Bids, 2)
	ask, ok := b.BestAsk()
	require.True(t, ok)
	assert.Equal(t, "30384.1", ask.Price.String())
	assert.Equal(t, "2.059", ask.Quantity.String())
	assert.Equal(t, int64(1688671659), ask.Timestamp.Unix())
	bid, ok := b.BestBid()
	require.True(t, ok)
	assert.Equal(t, "30297", bid.Price.String())

	var empty OrderBook
	_, ok = empty.BestBid()
	assert.False(t, ok)
}

func TestRestTick_UnmarshalJSON(t *testing.T) {
	raw := `{
		"a":["30300.10000","1","1.000"],
		"b":["30300.00000","1","1.000"],
		"c":["30303.20000","0.00067643"],
		"v":["4083.67001100","4412.73601799"],
		"p":["30706.77771","30689.13205"],
		"t":[34619,38907],
		"l":["29868.30000","29868.30000"],
		"h":["31631.00000","31631.00000"],
		"o":"30502.80000"
	}`

	var tick RestTick
	require.NoError(t, json.Unmarshal([]byte(raw), &tick))

	assert.Empty(t, tick.Symbol)
	assert.Equal(t, "30300.1", tick.BestAsks.Price.String())
	assert.Equal(t, "1", tick.BestAsks.WholeLotVolume.String())
	assert.Equal(t, "30300", tick.BestBids.Price.String())
	assert.Equal(t, "30303.2", tick.LastTrade.Price.String())
	assert.Equal(t, "0.00067643", tick.LastTrade.Quantity.String())
	assert.Equal(t, "4412.73601799", tick.Volume.Last24Hour.String())
	assert.Equal(t, int64(34619), tick.Trades.Today)
	assert.Equal(t, int64(38907), tick.Trades.Last24Hour)
	assert.Equal(t, "29868.3", tick.Low.Today.String())
	assert.Equal(t, "31631", tick.High.Last24Hour.String())
	assert.Equal(t, "30502.8", tick.OpenPrice.String())
}

func TestSymbol_UnmarshalJSON_FeeTiers(t *testing.T) {
	raw := `{"altname":"XBTUSD","wsname":"XBT/USD","base":"XXBT","quote":"ZUSD",
		"pair_decimals":1,"lot_decimals":8,"cost_decimals":5,"lot_multiplier":1,
		"leverage_buy":[2,3],"leverage_sell":[2,3],
		"fees":[[0,0.26],[50000,0.24]],"fees_maker":[[0,0.16]],
		"fee_volume_currency":"ZUSD","margin_call":80,"margin_stop":40,
		"ordermin":"0.0001","costmin":"0.5","tick_size":"0.1","status":"online"}`

	var s Symbol
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	assert.Equal(t, "XBT/USD", s.WebsocketName)
	assert.Equal(t, []int{2, 3}, s.LeverageBuy)
	require.Len(t, s.Fees, 2)
	assert.Equal(t, "50000", s.Fees[1].Volume.String())
	assert.Equal(t, "0.24", s.Fees[1].FeePercentage.String())
	require.Len(t, s.FeesMaker, 1)
	assert.Equal(t, "0.0001", s.OrderMin.String())
	assert.Equal(t, "0.1", s.TickSize.String())
}

func TestServerTime_Time(t *testing.T) {
	var st ServerTime
	require.NoError(t, json.Unmarshal([]byte(`{"unixtime":1700000000,"rfc1123":"Tue, 14 Nov 23 22:13:20 +0000"}`), &st))
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), st.Time())
	assert.Equal(t, time.UTC, st.Time().Location())
}

func TestSystemStatus_UnmarshalJSON(t *testing.T) {
	var s SystemStatus
	require.NoError(t, json.Unmarshal([]byte(`{"status":"cancel_only","timestamp":"2023-07-06T18:52:00Z"}`), &s))
	assert.Equal(t, SystemStatusCancelOnly, s.Status)
	assert.False(t, s.Status.IsTradable())
	assert.Equal(t, time.Date(2023, 7, 6, 18, 52, 0, 0, time.UTC), s.Timestamp.Time)

	assert.Error(t, json.Unmarshal([]byte(`{"status":"halted"}`), &s))
}
