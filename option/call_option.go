package option

import (
	"time"

	"github.com/lemconn/krakenlink/model"
)

// ExchangeArgsOptions 方法调用参数选项（用于 Client 方法调用）
// 所有字段均为可选，未设置的字段不会出现在请求参数中
type ExchangeArgsOptions struct {
	// ========== 行情查询参数 ==========
	// Limit 返回数量（订单簿的 count）
	Limit *int
	// Since 起始时间（K线、成交、价差的增量查询）
	Since *time.Time

	// ========== 账户查询参数 ==========
	// Symbols 交易对列表（TradeVolume）
	Symbols []string
	// Assets 资产列表（Ledgers）
	Assets []string
	// BaseAsset 计价资产（TradeBalance），默认 ZUSD
	BaseAsset *string
	// TransactionIDs 交易 ID 列表（OpenPositions）
	TransactionIDs []string
	// LedgerIDs 流水 ID 列表（QueryLedgers）
	LedgerIDs []string
	// LedgerTypes 流水类型（Ledgers）
	LedgerTypes []model.LedgerEntryType
	// StartTime 开始时间（Ledgers）
	StartTime *time.Time
	// EndTime 结束时间（Ledgers）
	EndTime *time.Time
	// Offset 分页偏移（Ledgers）
	Offset *int
	// GenerateNew 是否生成新的充值地址（DepositAddresses）
	GenerateNew *bool

	// ========== 认证参数 ==========
	// TwoFactor 二次验证密码，设置后以 otp 参数发送
	TwoFactor *string
}

// ArgsOption 方法调用参数选项函数类型
type ArgsOption func(*ExchangeArgsOptions)

// ApplyArgsOptions 依次应用参数选项
func ApplyArgsOptions(opts ...ArgsOption) *ExchangeArgsOptions {
	args := &ExchangeArgsOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(args)
		}
	}
	return args
}

// ========== 行情查询参数选项 ==========

// WithLimit 设置返回数量
func WithLimit(limit int) ArgsOption {
	return func(opts *ExchangeArgsOptions) {
		opts.Limit = &limit
	}
}

// WithSince 设置起始时间
func WithSince(since time.Time) ArgsOption {
	return func(opts *ExchangeArgsOptions) {
		opts.Since = &since
	}
}

// ========== 账户查询参数选项 ==========

// WithSymbols 设置交易对列表
func WithSymbols(symbols ...string) ArgsOption {
	return func(opts *ExchangeArgsOptions) {
		opts.Symbols = symbols
	}
}

// WithAssets 设置资产列表
func WithAssets(assets ...string) ArgsOption {
	return func(opts *ExchangeArgsOptions) {
		opts.Assets = assets
	}
}

// WithBaseAsset 设置计价资产
func WithBaseAsset(asset string) ArgsOption {
	return func(opts *ExchangeArgsOptions) {
		opts.BaseAsset = &asset
	}
}

// WithTransactionIDs 设置交易 ID 列表
func WithTransactionIDs(ids ...string) ArgsOption {
	return func(opts *ExchangeArgsOptions) {
		opts.TransactionIDs = ids
	}
}

// WithLedgerIDs 设置流水 ID 列表
func WithLedgerIDs(ids ...string) ArgsOption {
	return func(opts *ExchangeArgsOptions) {
		opts.LedgerIDs = ids
	}
}

// WithLedgerTypes 设置流水类型
func WithLedgerTypes(types ...model.LedgerEntryType) ArgsOption {
	return func(opts *ExchangeArgsOptions) {
		opts.LedgerTypes = types
	}
}

// WithStartTime 设置开始时间
func WithStartTime(start time.Time) ArgsOption {
	return func(opts *ExchangeArgsOptions) {
		opts.StartTime = &start
	}
}

// WithEndTime 设置结束时间
func WithEndTime(end time.Time) ArgsOption {
	return func(opts *ExchangeArgsOptions) {
		opts.EndTime = &end
	}
}

// WithOffset 设置分页偏移
func WithOffset(offset int) ArgsOption {
	return func(opts *ExchangeArgsOptions) {
		opts.Offset = &offset
	}
}

// WithGenerateNew 设置是否生成新的充值地址
func WithGenerateNew(generate bool) ArgsOption {
	return func(opts *ExchangeArgsOptions) {
		opts.GenerateNew = &generate
	}
}

// ========== 认证参数选项 ==========

// WithTwoFactor 设置二次验证密码
func WithTwoFactor(password string) ArgsOption {
	return func(opts *ExchangeArgsOptions) {
		opts.TwoFactor = &password
	}
}
