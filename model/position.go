package model

import "github.com/lemconn/krakenlink/types"

// Position 保证金持仓信息
type Position struct {
	// OrderID 开仓订单 ID
	OrderID string `json:"ordertxid"`
	// Symbol 交易对
	Symbol string `json:"pair"`
	// Timestamp 开仓时间
	Timestamp types.ExTimestamp `json:"time"`
	// Side 持仓方向
	Side OrderSide `json:"type"`
	// Type 开仓订单类型
	Type OrderType `json:"ordertype"`
	// Cost 开仓成本
	Cost types.ExDecimal `json:"cost"`
	// Fee 手续费
	Fee types.ExDecimal `json:"fee"`
	// Quantity 持仓数量
	Quantity types.ExDecimal `json:"vol"`
	// QuantityClosed 已平仓数量
	QuantityClosed types.ExDecimal `json:"vol_closed"`
	// Margin 保证金
	Margin types.ExDecimal `json:"margin"`
	// Value 当前估值，请求时需开启计算才会返回
	Value *types.ExDecimal `json:"value,omitempty"`
	// ProfitLoss 未实现盈亏，请求时需开启计算才会返回
	ProfitLoss *types.ExDecimal `json:"net,omitempty"`
	// Misc 附加信息
	Misc string `json:"misc"`
	// OFlags 订单标记
	OFlags string `json:"oflags"`
}

// Positions 持仓（交易 ID -> 持仓）
type Positions map[string]Position
