package model

import (
	"encoding/json"
	"fmt"

	"github.com/lemconn/krakenlink/types"
)

// Trade 成交记录，交易所以 [price, volume, time, side, type, misc, trade_id] 数组返回
type Trade struct {
	// Price 成交价格
	Price types.ExDecimal `json:"price"`
	// Quantity 成交数量
	Quantity types.ExDecimal `json:"quantity"`
	// Timestamp 成交时间
	Timestamp types.ExTimestamp `json:"timestamp"`
	// Side 方向
	Side OrderSide `json:"side"`
	// Type 订单类型
	Type OrderType `json:"type"`
	// Misc 附加信息
	Misc string `json:"misc"`
	// TradeID 成交 ID，旧版响应没有该字段
	TradeID int64 `json:"trade_id,omitempty"`
}

// UnmarshalJSON 自定义 JSON 反序列化
func (t *Trade) UnmarshalJSON(data []byte) error {
	arr, err := decodeArray(data, 6, "trade")
	if err != nil {
		return err
	}
	if t.Price, err = decodeDecimal(arr[0], "price"); err != nil {
		return err
	}
	if t.Quantity, err = decodeDecimal(arr[1], "quantity"); err != nil {
		return err
	}
	if t.Timestamp, err = decodeTimestamp(arr[2], "time"); err != nil {
		return err
	}
	side, err := decodeString(arr[3], "side")
	if err != nil {
		return err
	}
	if t.Side, err = ParseOrderSide(side); err != nil {
		return err
	}
	typ, err := decodeString(arr[4], "type")
	if err != nil {
		return err
	}
	if t.Type, err = ParseOrderType(typ); err != nil {
		return err
	}
	if t.Misc, err = decodeString(arr[5], "misc"); err != nil {
		return err
	}
	if len(arr) > 6 {
		if t.TradeID, err = decodeInt(arr[6], "trade id"); err != nil {
			return err
		}
	}
	return nil
}

// TradesResult 最近成交查询结果
type TradesResult struct {
	// Symbol 交易对（响应中的键）
	Symbol string `json:"symbol"`
	// Data 成交列表
	Data []Trade `json:"data"`
	// Last 下一次增量查询可作为 since 使用的时间（纳秒）
	Last types.ExTimestamp `json:"last"`
}

// UnmarshalJSON 自定义 JSON 反序列化
func (r *TradesResult) UnmarshalJSON(data []byte) error {
	pair, rows, last, err := splitPairResult(data, "trades")
	if err != nil {
		return err
	}
	var trades []Trade
	if err := json.Unmarshal(rows, &trades); err != nil {
		return fmt.Errorf("parse trades: %w", err)
	}
	r.Symbol = pair
	r.Data = trades
	if len(last) > 0 {
		if r.Last, err = decodeTimestamp(last, "trades last"); err != nil {
			return err
		}
	}
	return nil
}

// Spread 买卖价差，交易所以 [time, bid, ask] 数组返回
type Spread struct {
	// Timestamp 时间
	Timestamp types.ExTimestamp `json:"timestamp"`
	// BestBidPrice 最优买价
	BestBidPrice types.ExDecimal `json:"bid"`
	// BestAskPrice 最优卖价
	BestAskPrice types.ExDecimal `json:"ask"`
}

// UnmarshalJSON 自定义 JSON 反序列化
func (s *Spread) UnmarshalJSON(data []byte) error {
	arr, err := decodeArray(data, 3, "spread")
	if err != nil {
		return err
	}
	if s.Timestamp, err = decodeTimestamp(arr[0], "time"); err != nil {
		return err
	}
	if s.BestBidPrice, err = decodeDecimal(arr[1], "bid"); err != nil {
		return err
	}
	if s.BestAskPrice, err = decodeDecimal(arr[2], "ask"); err != nil {
		return err
	}
	return nil
}

// SpreadsResult 价差查询结果
type SpreadsResult struct {
	Symbol string            `json:"symbol"`
	Data   []Spread          `json:"data"`
	Last   types.ExTimestamp `json:"last"`
}

// UnmarshalJSON 自定义 JSON 反序列化
func (r *SpreadsResult) UnmarshalJSON(data []byte) error {
	pair, rows, last, err := splitPairResult(data, "spreads")
	if err != nil {
		return err
	}
	var spreads []Spread
	if err := json.Unmarshal(rows, &spreads); err != nil {
		return fmt.Errorf("parse spreads: %w", err)
	}
	r.Symbol = pair
	r.Data = spreads
	if len(last) > 0 {
		if r.Last, err = decodeTimestamp(last, "spreads last"); err != nil {
			return err
		}
	}
	return nil
}
