package kraken

import (
	"context"
	"time"

	"github.com/lemconn/krakenlink/common"
	"github.com/lemconn/krakenlink/model"
	"github.com/lemconn/krakenlink/option"
	"github.com/lemconn/krakenlink/types"
)

const (
	pathServerTime   = "0/public/Time"
	pathSystemStatus = "0/public/SystemStatus"
	pathAssets       = "0/public/Assets"
	pathAssetPairs   = "0/public/AssetPairs"
	pathTicker       = "0/public/Ticker"
	pathOHLC         = "0/public/OHLC"
	pathDepth        = "0/public/Depth"
	pathTrades       = "0/public/Trades"
	pathSpread       = "0/public/Spread"

	maxOrderBookLimit = 500
	maxTradesLimit    = 1000
)

// SpotExchangeData 现货公共行情
type SpotExchangeData struct {
	exec Executor
}

// GetServerTime 获取服务器时间（UTC）
func (d *SpotExchangeData) GetServerTime(ctx context.Context) (*common.WebCallResult[time.Time], error) {
	result, err := execute[model.ServerTime](ctx, d.exec, pathServerTime, nil, false)
	if err != nil {
		return nil, err
	}
	return common.As(result, result.Data.Time()), nil
}

// GetSystemStatus 获取系统状态
func (d *SpotExchangeData) GetSystemStatus(ctx context.Context) (*common.WebCallResult[model.SystemStatus], error) {
	return execute[model.SystemStatus](ctx, d.exec, pathSystemStatus, nil, false)
}

// GetAssets 获取资产信息
func (d *SpotExchangeData) GetAssets(ctx context.Context, assets ...string) (*common.WebCallResult[map[string]model.AssetInfo], error) {
	for _, a := range assets {
		if err := common.ValidateRequired("asset", a); err != nil {
			return nil, err
		}
	}
	params := types.NewExValues()
	params.SetJoined("asset", assets)
	return execute[map[string]model.AssetInfo](ctx, d.exec, pathAssets, params, false)
}

// GetSymbols 获取交易对信息
func (d *SpotExchangeData) GetSymbols(ctx context.Context, symbols ...string) (*common.WebCallResult[map[string]model.Symbol], error) {
	if err := validateSymbols(symbols); err != nil {
		return nil, err
	}
	params := types.NewExValues()
	params.SetJoined("pair", symbols)
	return execute[map[string]model.Symbol](ctx, d.exec, pathAssetPairs, params, false)
}

// tickerParams 单个和批量行情使用同一套参数
func tickerParams(symbols []string) (*types.ExValues, error) {
	if len(symbols) == 0 {
		return nil, common.InvalidArgument("symbols are not provided")
	}
	if err := validateSymbols(symbols); err != nil {
		return nil, err
	}
	params := types.NewExValues()
	params.SetJoined("pair", symbols)
	return params, nil
}

// fetchTickers 请求行情并回填交易对
func (d *SpotExchangeData) fetchTickers(ctx context.Context, symbols []string) (*common.WebCallResult[map[string]model.RestTick], error) {
	params, err := tickerParams(symbols)
	if err != nil {
		return nil, err
	}
	result, err := execute[map[string]model.RestTick](ctx, d.exec, pathTicker, params, false)
	if err != nil {
		return nil, err
	}
	backfillTickers(result.Data)
	return result, nil
}

// GetTicker 获取单个交易对行情
func (d *SpotExchangeData) GetTicker(ctx context.Context, symbol string) (*common.WebCallResult[model.RestTick], error) {
	result, err := d.fetchTickers(ctx, []string{symbol})
	if err != nil {
		return nil, err
	}
	tick, err := unwrapSingle(result.Data, symbol)
	if err != nil {
		return nil, err
	}
	return common.As(result, tick), nil
}

// GetTickers 批量获取行情
func (d *SpotExchangeData) GetTickers(ctx context.Context, symbols []string) (*common.WebCallResult[map[string]model.RestTick], error) {
	return d.fetchTickers(ctx, symbols)
}

// GetTickerList 批量获取行情，按请求顺序返回
func (d *SpotExchangeData) GetTickerList(ctx context.Context, symbols []string) (*common.WebCallResult[[]model.RestTick], error) {
	result, err := d.fetchTickers(ctx, symbols)
	if err != nil {
		return nil, err
	}
	return common.As(result, orderTickers(result.Data, symbols)), nil
}

// GetKlines 获取K线数据，since 以秒为单位
func (d *SpotExchangeData) GetKlines(ctx context.Context, symbol string, interval model.KlineInterval, opts ...option.ArgsOption) (*common.WebCallResult[model.KlinesResult], error) {
	if err := common.ValidateSymbol(symbol); err != nil {
		return nil, err
	}
	minutes, err := interval.Minutes()
	if err != nil {
		return nil, common.InvalidArgument("%v", err)
	}
	args := option.ApplyArgsOptions(opts...)

	params := types.NewExValues()
	params.Set("pair", symbol)
	params.Set("interval", minutes)
	if since, ok := option.GetTime(args.Since); ok {
		params.Set("since", since.Unix())
	}
	return execute[model.KlinesResult](ctx, d.exec, pathOHLC, params, false)
}

// GetOrderBook 获取订单簿
func (d *SpotExchangeData) GetOrderBook(ctx context.Context, symbol string, opts ...option.ArgsOption) (*common.WebCallResult[model.OrderBook], error) {
	if err := common.ValidateSymbol(symbol); err != nil {
		return nil, err
	}
	args := option.ApplyArgsOptions(opts...)

	params := types.NewExValues()
	params.Set("pair", symbol)
	if limit, ok := option.GetInt(args.Limit); ok {
		if limit < 1 || limit > maxOrderBookLimit {
			return nil, common.InvalidArgument("limit should be between 1 and %d, got %d", maxOrderBookLimit, limit)
		}
		params.Set("count", limit)
	}

	result, err := execute[map[string]model.OrderBook](ctx, d.exec, pathDepth, params, false)
	if err != nil {
		return nil, err
	}
	book, err := unwrapSingle(result.Data, symbol)
	if err != nil {
		return nil, err
	}
	return common.As(result, book), nil
}

// GetTradeHistory 获取最近成交，since 以纳秒为单位
func (d *SpotExchangeData) GetTradeHistory(ctx context.Context, symbol string, opts ...option.ArgsOption) (*common.WebCallResult[model.TradesResult], error) {
	if err := common.ValidateSymbol(symbol); err != nil {
		return nil, err
	}
	args := option.ApplyArgsOptions(opts...)

	params := types.NewExValues()
	params.Set("pair", symbol)
	if since, ok := option.GetTime(args.Since); ok {
		params.Set("since", since.UnixNano())
	}
	if limit, ok := option.GetInt(args.Limit); ok {
		if limit < 1 || limit > maxTradesLimit {
			return nil, common.InvalidArgument("limit should be between 1 and %d, got %d", maxTradesLimit, limit)
		}
		params.Set("count", limit)
	}
	return execute[model.TradesResult](ctx, d.exec, pathTrades, params, false)
}

// GetRecentSpread 获取最近价差，since 以秒为单位
func (d *SpotExchangeData) GetRecentSpread(ctx context.Context, symbol string, opts ...option.ArgsOption) (*common.WebCallResult[model.SpreadsResult], error) {
	if err := common.ValidateSymbol(symbol); err != nil {
		return nil, err
	}
	args := option.ApplyArgsOptions(opts...)

	params := types.NewExValues()
	params.Set("pair", symbol)
	if since, ok := option.GetTime(args.Since); ok {
		params.Set("since", since.Unix())
	}
	return execute[model.SpreadsResult](ctx, d.exec, pathSpread, params, false)
}
