package model

import (
	"github.com/lemconn/krakenlink/types"
)

// BestEntry 最优买/卖价，交易所以 [price, whole_lot_volume, lot_volume] 数组返回
type BestEntry struct {
	Price          types.ExDecimal `json:"price"`
	WholeLotVolume types.ExDecimal `json:"whole_lot_volume"`
	LotVolume      types.ExDecimal `json:"lot_volume"`
}

// UnmarshalJSON 自定义 JSON 反序列化
func (e *BestEntry) UnmarshalJSON(data []byte) error {
	arr, err := decodeArray(data, 3, "best entry")
	if err != nil {
		return err
	}
	if e.Price, err = decodeDecimal(arr[0], "price"); err != nil {
		return err
	}
	if e.WholeLotVolume, err = decodeDecimal(arr[1], "whole lot volume"); err != nil {
		return err
	}
	if e.LotVolume, err = decodeDecimal(arr[2], "lot volume"); err != nil {
		return err
	}
	return nil
}

// LastTrade 最新成交，[price, lot_volume]
type LastTrade struct {
	Price    types.ExDecimal `json:"price"`
	Quantity types.ExDecimal `json:"quantity"`
}

// UnmarshalJSON 自定义 JSON 反序列化
func (l *LastTrade) UnmarshalJSON(data []byte) error {
	arr, err := decodeArray(data, 2, "last trade")
	if err != nil {
		return err
	}
	if l.Price, err = decodeDecimal(arr[0], "price"); err != nil {
		return err
	}
	if l.Quantity, err = decodeDecimal(arr[1], "quantity"); err != nil {
		return err
	}
	return nil
}

// TickValues 今日与最近 24 小时的一对数值，[today, last_24_hours]
type TickValues struct {
	Today      types.ExDecimal `json:"today"`
	Last24Hour types.ExDecimal `json:"last_24_hour"`
}

// UnmarshalJSON 自定义 JSON 反序列化
func (v *TickValues) UnmarshalJSON(data []byte) error {
	arr, err := decodeArray(data, 2, "tick values")
	if err != nil {
		return err
	}
	if v.Today, err = decodeDecimal(arr[0], "today"); err != nil {
		return err
	}
	if v.Last24Hour, err = decodeDecimal(arr[1], "last 24 hour"); err != nil {
		return err
	}
	return nil
}

// TickCounts 成交笔数，[today, last_24_hours]
type TickCounts struct {
	Today      int64 `json:"today"`
	Last24Hour int64 `json:"last_24_hour"`
}

// UnmarshalJSON 自定义 JSON 反序列化
func (c *TickCounts) UnmarshalJSON(data []byte) error {
	arr, err := decodeArray(data, 2, "tick counts")
	if err != nil {
		return err
	}
	if c.Today, err = decodeInt(arr[0], "today"); err != nil {
		return err
	}
	if c.Last24Hour, err = decodeInt(arr[1], "last 24 hour"); err != nil {
		return err
	}
	return nil
}

// RestTick 行情快照
type RestTick struct {
	// Symbol 交易对，由响应中的键回填
	Symbol string `json:"symbol,omitempty"`
	// BestAsks 最优卖价
	BestAsks BestEntry `json:"a"`
	// BestBids 最优买价
	BestBids BestEntry `json:"b"`
	// LastTrade 最新成交
	LastTrade LastTrade `json:"c"`
	// Volume 成交量
	Volume TickValues `json:"v"`
	// VolumeWeightedAveragePrice 成交量加权平均价
	VolumeWeightedAveragePrice TickValues `json:"p"`
	// Trades 成交笔数
	Trades TickCounts `json:"t"`
	// Low 最低价
	Low TickValues `json:"l"`
	// High 最高价
	High TickValues `json:"h"`
	// OpenPrice 今日开盘价
	OpenPrice types.ExDecimal `json:"o"`
}
