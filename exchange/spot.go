package exchange

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lemconn/krakenlink/common"
	"github.com/lemconn/krakenlink/model"
	"github.com/lemconn/krakenlink/option"
)

// SpotExchangeData 现货公共行情接口，无需认证
type SpotExchangeData interface {
	// ========== 系统信息 ==========

	// GetServerTime 获取服务器时间
	GetServerTime(ctx context.Context) (*common.WebCallResult[time.Time], error)

	// GetSystemStatus 获取系统状态
	GetSystemStatus(ctx context.Context) (*common.WebCallResult[model.SystemStatus], error)

	// GetAssets 获取资产信息，不传 assets 时返回全部
	GetAssets(ctx context.Context, assets ...string) (*common.WebCallResult[map[string]model.AssetInfo], error)

	// GetSymbols 获取交易对信息，不传 symbols 时返回全部
	GetSymbols(ctx context.Context, symbols ...string) (*common.WebCallResult[map[string]model.Symbol], error)

	// ========== 行情 ==========

	// GetTicker 获取单个交易对行情
	GetTicker(ctx context.Context, symbol string) (*common.WebCallResult[model.RestTick], error)

	// GetTickers 批量获取行情（交易对 -> 行情）
	GetTickers(ctx context.Context, symbols []string) (*common.WebCallResult[map[string]model.RestTick], error)

	// GetTickerList 批量获取行情，按请求顺序返回
	GetTickerList(ctx context.Context, symbols []string) (*common.WebCallResult[[]model.RestTick], error)

	// GetKlines 获取K线数据
	// 支持 option.WithSince
	GetKlines(ctx context.Context, symbol string, interval model.KlineInterval, opts ...option.ArgsOption) (*common.WebCallResult[model.KlinesResult], error)

	// GetOrderBook 获取订单簿
	// 支持 option.WithLimit
	GetOrderBook(ctx context.Context, symbol string, opts ...option.ArgsOption) (*common.WebCallResult[model.OrderBook], error)

	// GetTradeHistory 获取最近成交
	// 支持 option.WithSince、option.WithLimit
	GetTradeHistory(ctx context.Context, symbol string, opts ...option.ArgsOption) (*common.WebCallResult[model.TradesResult], error)

	// GetRecentSpread 获取最近价差
	// 支持 option.WithSince
	GetRecentSpread(ctx context.Context, symbol string, opts ...option.ArgsOption) (*common.WebCallResult[model.SpreadsResult], error)
}

// SpotAccount 现货私有账户接口，所有请求都需要签名
// 所有方法都支持 option.WithTwoFactor
type SpotAccount interface {
	// ========== 余额 ==========

	// GetBalances 获取余额
	GetBalances(ctx context.Context, opts ...option.ArgsOption) (*common.WebCallResult[model.Balances], error)

	// GetAvailableBalances 获取含冻结金额的余额
	GetAvailableBalances(ctx context.Context, opts ...option.ArgsOption) (*common.WebCallResult[model.AvailableBalances], error)

	// GetTradeBalance 获取交易账户余额汇总
	// 支持 option.WithBaseAsset
	GetTradeBalance(ctx context.Context, opts ...option.ArgsOption) (*common.WebCallResult[model.TradeBalance], error)

	// GetOpenPositions 获取保证金持仓
	// 支持 option.WithTransactionIDs
	GetOpenPositions(ctx context.Context, opts ...option.ArgsOption) (*common.WebCallResult[model.Positions], error)

	// ========== 账本 ==========

	// GetLedgerInfo 分页查询账本流水
	// 支持 option.WithAssets、option.WithLedgerTypes、option.WithStartTime、option.WithEndTime、option.WithOffset
	GetLedgerInfo(ctx context.Context, opts ...option.ArgsOption) (*common.WebCallResult[model.LedgerPage], error)

	// GetLedgersEntry 按 ID 查询账本流水
	// 支持 option.WithLedgerIDs
	GetLedgersEntry(ctx context.Context, opts ...option.ArgsOption) (*common.WebCallResult[model.LedgerEntries], error)

	// GetTradeVolume 获取 30 天交易量及费率
	// 支持 option.WithSymbols
	GetTradeVolume(ctx context.Context, opts ...option.ArgsOption) (*common.WebCallResult[model.TradeVolume], error)

	// ========== 充值提现 ==========

	// GetDepositMethods 获取充值方式
	GetDepositMethods(ctx context.Context, asset string, opts ...option.ArgsOption) (*common.WebCallResult[[]model.DepositMethod], error)

	// GetDepositAddresses 获取充值地址
	// 支持 option.WithGenerateNew
	GetDepositAddresses(ctx context.Context, asset, method string, opts ...option.ArgsOption) (*common.WebCallResult[[]model.DepositAddress], error)

	// GetDepositStatus 获取最近充值记录状态
	GetDepositStatus(ctx context.Context, asset, method string, opts ...option.ArgsOption) (*common.WebCallResult[[]model.DepositStatus], error)

	// GetWithdrawInfo 获取提现预估信息
	GetWithdrawInfo(ctx context.Context, asset, key string, quantity decimal.Decimal, opts ...option.ArgsOption) (*common.WebCallResult[model.WithdrawInfo], error)

	// Withdraw 提现到预先配置的提现地址 key
	Withdraw(ctx context.Context, asset, key string, quantity decimal.Decimal, opts ...option.ArgsOption) (*common.WebCallResult[model.Withdraw], error)

	// GetWebsocketToken 获取 WebSocket 私有频道令牌
	GetWebsocketToken(ctx context.Context) (*common.WebCallResult[model.WebSocketToken], error)
}
