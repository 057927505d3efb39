package kraken

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lemconn/krakenlink/common"
	"github.com/lemconn/krakenlink/model"
	"github.com/lemconn/krakenlink/option"
	"github.com/lemconn/krakenlink/types"
)

const (
	pathBalance          = "0/private/Balance"
	pathBalanceEx        = "0/private/BalanceEx"
	pathTradeBalance     = "0/private/TradeBalance"
	pathOpenPositions    = "0/private/OpenPositions"
	pathLedgers          = "0/private/Ledgers"
	pathQueryLedgers     = "0/private/QueryLedgers"
	pathTradeVolume      = "0/private/TradeVolume"
	pathDepositMethods   = "0/private/DepositMethods"
	pathDepositAddresses = "0/private/DepositAddresses"
	pathDepositStatus    = "0/private/DepositStatus"
	pathWithdrawInfo     = "0/private/WithdrawInfo"
	pathWithdraw         = "0/private/Withdraw"
	pathWebSocketsToken  = "0/private/GetWebSocketsToken"
)

// SpotAccount 现货私有账户，所有请求都需要签名
type SpotAccount struct {
	exec Executor
}

// privateParams 创建私有接口参数并附加二次验证密码
func privateParams(args *option.ExchangeArgsOptions) *types.ExValues {
	params := types.NewExValues()
	setTwoFactor(params, args)
	return params
}

// GetBalances 获取余额
func (a *SpotAccount) GetBalances(ctx context.Context, opts ...option.ArgsOption) (*common.WebCallResult[model.Balances], error) {
	args := option.ApplyArgsOptions(opts...)
	return execute[model.Balances](ctx, a.exec, pathBalance, privateParams(args), true)
}

// GetAvailableBalances 获取含冻结金额的余额
func (a *SpotAccount) GetAvailableBalances(ctx context.Context, opts ...option.ArgsOption) (*common.WebCallResult[model.AvailableBalances], error) {
	args := option.ApplyArgsOptions(opts...)
	return execute[model.AvailableBalances](ctx, a.exec, pathBalanceEx, privateParams(args), true)
}

// GetTradeBalance 获取交易账户余额汇总
func (a *SpotAccount) GetTradeBalance(ctx context.Context, opts ...option.ArgsOption) (*common.WebCallResult[model.TradeBalance], error) {
	args := option.ApplyArgsOptions(opts...)
	params := privateParams(args)
	asset, _ := option.GetString(args.BaseAsset)
	params.SetOptional("asset", asset)
	return execute[model.TradeBalance](ctx, a.exec, pathTradeBalance, params, true)
}

// GetOpenPositions 获取保证金持仓，总是请求交易所计算盈亏
func (a *SpotAccount) GetOpenPositions(ctx context.Context, opts ...option.ArgsOption) (*common.WebCallResult[model.Positions], error) {
	args := option.ApplyArgsOptions(opts...)
	params := privateParams(args)
	params.SetJoined("txid", args.TransactionIDs)
	params.Set("docalcs", true)
	return execute[model.Positions](ctx, a.exec, pathOpenPositions, params, true)
}

// GetLedgerInfo 分页查询账本流水，start/end 以秒为单位
func (a *SpotAccount) GetLedgerInfo(ctx context.Context, opts ...option.ArgsOption) (*common.WebCallResult[model.LedgerPage], error) {
	args := option.ApplyArgsOptions(opts...)
	params := privateParams(args)
	params.SetJoined("asset", args.Assets)

	if len(args.LedgerTypes) > 0 {
		wire := make([]string, 0, len(args.LedgerTypes))
		for _, t := range args.LedgerTypes {
			s, err := t.Wire()
			if err != nil {
				return nil, common.InvalidArgument("%v", err)
			}
			wire = append(wire, s)
		}
		params.SetJoined("type", wire)
	}
	if start, ok := option.GetTime(args.StartTime); ok {
		params.Set("start", start.Unix())
	}
	if end, ok := option.GetTime(args.EndTime); ok {
		params.Set("end", end.Unix())
	}
	if offset, ok := option.GetInt(args.Offset); ok {
		if offset < 0 {
			return nil, common.InvalidArgument("offset should not be negative, got %d", offset)
		}
		params.Set("ofs", offset)
	}
	return execute[model.LedgerPage](ctx, a.exec, pathLedgers, params, true)
}

// GetLedgersEntry 按 ID 查询账本流水
func (a *SpotAccount) GetLedgersEntry(ctx context.Context, opts ...option.ArgsOption) (*common.WebCallResult[model.LedgerEntries], error) {
	args := option.ApplyArgsOptions(opts...)
	params := privateParams(args)
	params.SetJoined("id", args.LedgerIDs)
	return execute[model.LedgerEntries](ctx, a.exec, pathQueryLedgers, params, true)
}

// GetTradeVolume 获取 30 天交易量及费率
func (a *SpotAccount) GetTradeVolume(ctx context.Context, opts ...option.ArgsOption) (*common.WebCallResult[model.TradeVolume], error) {
	args := option.ApplyArgsOptions(opts...)
	if err := validateSymbols(args.Symbols); err != nil {
		return nil, err
	}
	params := privateParams(args)
	params.SetJoined("pair", args.Symbols)
	return execute[model.TradeVolume](ctx, a.exec, pathTradeVolume, params, true)
}

// GetDepositMethods 获取充值方式
func (a *SpotAccount) GetDepositMethods(ctx context.Context, asset string, opts ...option.ArgsOption) (*common.WebCallResult[[]model.DepositMethod], error) {
	if err := common.ValidateRequired("asset", asset); err != nil {
		return nil, err
	}
	args := option.ApplyArgsOptions(opts...)
	params := privateParams(args)
	params.Set("asset", asset)
	return execute[[]model.DepositMethod](ctx, a.exec, pathDepositMethods, params, true)
}

// GetDepositAddresses 获取充值地址，仅在明确要求时生成新地址
func (a *SpotAccount) GetDepositAddresses(ctx context.Context, asset, method string, opts ...option.ArgsOption) (*common.WebCallResult[[]model.DepositAddress], error) {
	if err := common.ValidateRequired("asset", asset); err != nil {
		return nil, err
	}
	if err := common.ValidateRequired("method", method); err != nil {
		return nil, err
	}
	args := option.ApplyArgsOptions(opts...)
	params := privateParams(args)
	params.Set("asset", asset)
	params.Set("method", method)
	if generate, ok := option.GetBool(args.GenerateNew); ok && generate {
		params.Set("new", true)
	}
	return execute[[]model.DepositAddress](ctx, a.exec, pathDepositAddresses, params, true)
}

// GetDepositStatus 获取最近充值记录状态
func (a *SpotAccount) GetDepositStatus(ctx context.Context, asset, method string, opts ...option.ArgsOption) (*common.WebCallResult[[]model.DepositStatus], error) {
	if err := common.ValidateRequired("asset", asset); err != nil {
		return nil, err
	}
	if err := common.ValidateRequired("method", method); err != nil {
		return nil, err
	}
	args := option.ApplyArgsOptions(opts...)
	params := privateParams(args)
	params.Set("asset", asset)
	params.Set("method", method)
	return execute[[]model.DepositStatus](ctx, a.exec, pathDepositStatus, params, true)
}

// withdrawParams 提现相关接口的公共参数
func withdrawParams(asset, key string, quantity decimal.Decimal, args *option.ExchangeArgsOptions) (*types.ExValues, error) {
	if err := common.ValidateRequired("asset", asset); err != nil {
		return nil, err
	}
	if err := common.ValidateRequired("key", key); err != nil {
		return nil, err
	}
	if !quantity.IsPositive() {
		return nil, common.InvalidArgument("quantity should be positive, got %s", quantity.String())
	}
	params := privateParams(args)
	params.Set("asset", asset)
	params.Set("key", key)
	params.Set("amount", quantity)
	return params, nil
}

// GetWithdrawInfo 获取提现预估信息
func (a *SpotAccount) GetWithdrawInfo(ctx context.Context, asset, key string, quantity decimal.Decimal, opts ...option.ArgsOption) (*common.WebCallResult[model.WithdrawInfo], error) {
	params, err := withdrawParams(asset, key, quantity, option.ApplyArgsOptions(opts...))
	if err != nil {
		return nil, err
	}
	return execute[model.WithdrawInfo](ctx, a.exec, pathWithdrawInfo, params, true)
}

// Withdraw 提现到预先配置的提现地址 key
func (a *SpotAccount) Withdraw(ctx context.Context, asset, key string, quantity decimal.Decimal, opts ...option.ArgsOption) (*common.WebCallResult[model.Withdraw], error) {
	params, err := withdrawParams(asset, key, quantity, option.ApplyArgsOptions(opts...))
	if err != nil {
		return nil, err
	}
	return execute[model.Withdraw](ctx, a.exec, pathWithdraw, params, true)
}

// GetWebsocketToken 获取 WebSocket 私有频道令牌
func (a *SpotAccount) GetWebsocketToken(ctx context.Context) (*common.WebCallResult[model.WebSocketToken], error) {
	return execute[model.WebSocketToken](ctx, a.exec, pathWebSocketsToken, nil, true)
}
