package model

import (
	"github.com/shopspring/decimal"

	"github.com/lemconn/krakenlink/types"
)

// Balances 所有余额（资产 -> 余额的映射）
type Balances map[string]types.ExDecimal

// GetBalance 获取指定资产余额，不存在时返回 0
func (b Balances) GetBalance(asset string) decimal.Decimal {
	if balance, ok := b[asset]; ok {
		return balance.Decimal
	}
	return decimal.Zero
}

// BalanceAvailable 含冻结金额的余额信息
type BalanceAvailable struct {
	// Total 总余额
	Total types.ExDecimal `json:"balance"`
	// Locked 挂单冻结的金额
	Locked types.ExDecimal `json:"hold_trade"`
	// Credit 授信额度
	Credit types.ExDecimal `json:"credit,omitempty"`
	// CreditUsed 已使用的授信额度
	CreditUsed types.ExDecimal `json:"credit_used,omitempty"`
}

// Available 可用余额 = 总余额 - 冻结金额
func (b BalanceAvailable) Available() decimal.Decimal {
	return b.Total.Sub(b.Locked.Decimal)
}

// AvailableBalances 所有资产的可用余额
type AvailableBalances map[string]BalanceAvailable

// TradeBalance 交易账户余额汇总
type TradeBalance struct {
	// CombinedBalance 所有资产折算后的总余额
	CombinedBalance types.ExDecimal `json:"eb"`
	// TotalBalance 可用于保证金的资产折算总额
	TotalBalance types.ExDecimal `json:"tb"`
	// MarginAmount 持仓占用的保证金
	MarginAmount types.ExDecimal `json:"m"`
	// ProfitLoss 持仓未实现盈亏
	ProfitLoss types.ExDecimal `json:"n"`
	// CostBasis 持仓成本
	CostBasis types.ExDecimal `json:"c"`
	// FloatingValuation 持仓当前估值
	FloatingValuation types.ExDecimal `json:"v"`
	// Equity 净值 = TotalBalance + ProfitLoss
	Equity types.ExDecimal `json:"e"`
	// FreeMargin 可用保证金
	FreeMargin types.ExDecimal `json:"mf"`
	// MarginLevel 保证金水平
	MarginLevel types.ExDecimal `json:"ml"`
	// UnexecutedValue 未成交订单价值
	UnexecutedValue types.ExDecimal `json:"uv"`
}
