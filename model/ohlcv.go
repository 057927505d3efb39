package model

import (
	"encoding/json"
	"fmt"

	"github.com/lemconn/krakenlink/types"
)

// Kline K线数据，交易所以 [time, open, high, low, close, vwap, volume, count] 数组返回
type Kline struct {
	// Timestamp 开盘时间
	Timestamp types.ExTimestamp `json:"timestamp"`
	// Open 开盘价
	Open types.ExDecimal `json:"open"`
	// High 最高价
	High types.ExDecimal `json:"high"`
	// Low 最低价
	Low types.ExDecimal `json:"low"`
	// Close 收盘价
	Close types.ExDecimal `json:"close"`
	// VolumeWeightedAveragePrice 成交量加权平均价
	VolumeWeightedAveragePrice types.ExDecimal `json:"vwap"`
	// Volume 成交量
	Volume types.ExDecimal `json:"volume"`
	// TradeCount 成交笔数
	TradeCount int64 `json:"count"`
}

// UnmarshalJSON 自定义 JSON 反序列化
func (k *Kline) UnmarshalJSON(data []byte) error {
	arr, err := decodeArray(data, 8, "kline")
	if err != nil {
		return err
	}
	if k.Timestamp, err = decodeTimestamp(arr[0], "kline time"); err != nil {
		return err
	}
	fields := []*types.ExDecimal{&k.Open, &k.High, &k.Low, &k.Close, &k.VolumeWeightedAveragePrice, &k.Volume}
	names := []string{"open", "high", "low", "close", "vwap", "volume"}
	for i, f := range fields {
		if *f, err = decodeDecimal(arr[i+1], names[i]); err != nil {
			return err
		}
	}
	if k.TradeCount, err = decodeInt(arr[7], "count"); err != nil {
		return err
	}
	return nil
}

// KlinesResult K线查询结果
type KlinesResult struct {
	// Symbol 交易对（响应中的键）
	Symbol string `json:"symbol"`
	// Data K线列表
	Data []Kline `json:"data"`
	// Last 下一次增量查询可作为 since 使用的时间（秒）
	Last types.ExTimestamp `json:"last"`
}

// UnmarshalJSON 自定义 JSON 反序列化，结果形如 {"XXBTZUSD": [...], "last": 1688671200}
func (r *KlinesResult) UnmarshalJSON(data []byte) error {
	pair, rows, last, err := splitPairResult(data, "klines")
	if err != nil {
		return err
	}
	var klines []Kline
	if err := json.Unmarshal(rows, &klines); err != nil {
		return fmt.Errorf("parse klines: %w", err)
	}
	r.Symbol = pair
	r.Data = klines
	if len(last) > 0 {
		if r.Last, err = decodeTimestamp(last, "klines last"); err != nil {
			return err
		}
	}
	return nil
}
