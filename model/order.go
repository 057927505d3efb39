package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// OrderSide 订单方向
type OrderSide string

const (
	// OrderSideBuy 买入
	OrderSideBuy OrderSide = "buy"
	// OrderSideSell 卖出
	OrderSideSell OrderSide = "sell"
)

// ParseOrderSide 解析交易所返回的方向，支持完整写法和成交记录中的缩写 b/s
func ParseOrderSide(s string) (OrderSide, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy", "b":
		return OrderSideBuy, nil
	case "sell", "s":
		return OrderSideSell, nil
	}
	return "", fmt.Errorf("unknown order side: %q", s)
}

// Wire 返回请求参数中使用的字符串
func (s OrderSide) Wire() (string, error) {
	switch s {
	case OrderSideBuy:
		return "buy", nil
	case OrderSideSell:
		return "sell", nil
	}
	return "", fmt.Errorf("unknown order side: %q", string(s))
}

// IsBuy 是否为买入
func (s OrderSide) IsBuy() bool {
	return s == OrderSideBuy
}

// IsSell 是否为卖出
func (s OrderSide) IsSell() bool {
	return s == OrderSideSell
}

// UnmarshalJSON 自定义 JSON 反序列化
func (s *OrderSide) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	side, err := ParseOrderSide(raw)
	if err != nil {
		return err
	}
	*s = side
	return nil
}

// OrderType 订单类型
type OrderType string

const (
	// OrderTypeMarket 市价单
	OrderTypeMarket OrderType = "market"
	// OrderTypeLimit 限价单
	OrderTypeLimit OrderType = "limit"
	// OrderTypeStopLoss 止损单
	OrderTypeStopLoss OrderType = "stop-loss"
	// OrderTypeTakeProfit 止盈单
	OrderTypeTakeProfit OrderType = "take-profit"
	// OrderTypeStopLossLimit 限价止损单
	OrderTypeStopLossLimit OrderType = "stop-loss-limit"
	// OrderTypeTakeProfitLimit 限价止盈单
	OrderTypeTakeProfitLimit OrderType = "take-profit-limit"
	// OrderTypeSettlePosition 平仓结算
	OrderTypeSettlePosition OrderType = "settle-position"
	// OrderTypeTrailingStop 追踪止损单
	OrderTypeTrailingStop OrderType = "trailing-stop"
	// OrderTypeTrailingStopLimit 限价追踪止损单
	OrderTypeTrailingStopLimit OrderType = "trailing-stop-limit"
	// OrderTypeStopLossProfit 止损止盈单
	OrderTypeStopLossProfit OrderType = "stop-loss-profit"
	// OrderTypeStopLossProfitLimit 限价止损止盈单
	OrderTypeStopLossProfitLimit OrderType = "stop-loss-profit-limit"
	// OrderTypeIceberg 冰山单
	OrderTypeIceberg OrderType = "iceberg"
)

// OrderTypes 已知的订单类型
var OrderTypes = []OrderType{
	OrderTypeMarket,
	OrderTypeLimit,
	OrderTypeStopLoss,
	OrderTypeTakeProfit,
	OrderTypeStopLossLimit,
	OrderTypeTakeProfitLimit,
	OrderTypeSettlePosition,
	OrderTypeTrailingStop,
	OrderTypeTrailingStopLimit,
	OrderTypeStopLossProfit,
	OrderTypeStopLossProfitLimit,
	OrderTypeIceberg,
}

// ParseOrderType 解析交易所返回的订单类型，支持成交记录中的缩写 m/l
func ParseOrderType(s string) (OrderType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "market", "m":
		return OrderTypeMarket, nil
	case "limit", "l":
		return OrderTypeLimit, nil
	case "stop-loss":
		return OrderTypeStopLoss, nil
	case "take-profit":
		return OrderTypeTakeProfit, nil
	case "stop-loss-limit":
		return OrderTypeStopLossLimit, nil
	case "take-profit-limit":
		return OrderTypeTakeProfitLimit, nil
	case "settle-position":
		return OrderTypeSettlePosition, nil
	case "trailing-stop":
		return OrderTypeTrailingStop, nil
	case "trailing-stop-limit":
		return OrderTypeTrailingStopLimit, nil
	case "stop-loss-profit":
		return OrderTypeStopLossProfit, nil
	case "stop-loss-profit-limit":
		return OrderTypeStopLossProfitLimit, nil
	case "iceberg":
		return OrderTypeIceberg, nil
	}
	return "", fmt.Errorf("unknown order type: %q", s)
}

// IsMarket 是否为市价单
func (t OrderType) IsMarket() bool {
	return t == OrderTypeMarket
}

// IsLimit 是否为限价单
func (t OrderType) IsLimit() bool {
	return t == OrderTypeLimit
}

// UnmarshalJSON 自定义 JSON 反序列化
// 未知类型按原样保留，交易所可能新增类型
func (t *OrderType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	typ, err := ParseOrderType(raw)
	if err != nil {
		*t = OrderType(raw)
		return nil
	}
	*t = typ
	return nil
}
