package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lemconn/krakenlink/types"
)

// ServerTime 服务器时间
type ServerTime struct {
	// UnixTime Unix 秒级时间戳
	UnixTime types.ExTimestamp `json:"unixtime"`
	// RFC1123 RFC1123 格式的时间字符串
	RFC1123 string `json:"rfc1123"`
}

// Time 返回 UTC 时间
func (t ServerTime) Time() time.Time {
	return t.UnixTime.Time.UTC()
}

// SystemStatusKind 系统状态
type SystemStatusKind string

const (
	// SystemStatusOnline 正常运行
	SystemStatusOnline SystemStatusKind = "online"
	// SystemStatusMaintenance 维护中
	SystemStatusMaintenance SystemStatusKind = "maintenance"
	// SystemStatusCancelOnly 仅允许撤单
	SystemStatusCancelOnly SystemStatusKind = "cancel_only"
	// SystemStatusPostOnly 仅允许挂单
	SystemStatusPostOnly SystemStatusKind = "post_only"
)

// ParseSystemStatusKind 解析系统状态
func ParseSystemStatusKind(s string) (SystemStatusKind, error) {
	switch s {
	case "online":
		return SystemStatusOnline, nil
	case "maintenance":
		return SystemStatusMaintenance, nil
	case "cancel_only":
		return SystemStatusCancelOnly, nil
	case "post_only":
		return SystemStatusPostOnly, nil
	}
	return "", fmt.Errorf("unknown system status: %q", s)
}

// IsTradable 是否可以下单
func (s SystemStatusKind) IsTradable() bool {
	return s == SystemStatusOnline || s == SystemStatusPostOnly
}

// UnmarshalJSON 自定义 JSON 反序列化
func (s *SystemStatusKind) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	kind, err := ParseSystemStatusKind(raw)
	if err != nil {
		return err
	}
	*s = kind
	return nil
}

// SystemStatus 系统状态信息
type SystemStatus struct {
	Status    SystemStatusKind  `json:"status"`
	Timestamp types.ExTimestamp `json:"timestamp"`
}

// AssetInfo 资产信息
type AssetInfo struct {
	// AltName 备用名称，如 XBT
	AltName string `json:"altname"`
	// AssetClass 资产类别
	AssetClass string `json:"aclass"`
	// Decimals 记账精度
	Decimals int `json:"decimals"`
	// DisplayDecimals 展示精度
	DisplayDecimals int `json:"display_decimals"`
	// CollateralValue 作为保证金时的折算率
	CollateralValue *types.ExDecimal `json:"collateral_value,omitempty"`
	// Status 资产状态，如 enabled
	Status string `json:"status,omitempty"`
}

// FeeTier 手续费阶梯，交易所以 [volume, percentage] 数组返回
type FeeTier struct {
	// Volume 30 天交易量门槛
	Volume types.ExDecimal `json:"volume"`
	// FeePercentage 手续费百分比
	FeePercentage types.ExDecimal `json:"fee"`
}

// UnmarshalJSON 自定义 JSON 反序列化
func (f *FeeTier) UnmarshalJSON(data []byte) error {
	arr, err := decodeArray(data, 2, "fee tier")
	if err != nil {
		return err
	}
	if f.Volume, err = decodeDecimal(arr[0], "fee tier volume"); err != nil {
		return err
	}
	if f.FeePercentage, err = decodeDecimal(arr[1], "fee tier percentage"); err != nil {
		return err
	}
	return nil
}

// Symbol 交易对信息
type Symbol struct {
	// AltName 备用名称，如 XBTUSD
	AltName string `json:"altname"`
	// WebsocketName WebSocket 使用的名称，如 XBT/USD
	WebsocketName string `json:"wsname"`
	// BaseAssetClass 基础资产类别
	BaseAssetClass string `json:"aclass_base"`
	// BaseAsset 基础资产，如 XXBT
	BaseAsset string `json:"base"`
	// QuoteAssetClass 计价资产类别
	QuoteAssetClass string `json:"aclass_quote"`
	// QuoteAsset 计价资产，如 ZUSD
	QuoteAsset string `json:"quote"`
	// PriceDecimals 价格精度
	PriceDecimals int `json:"pair_decimals"`
	// QuantityDecimals 数量精度
	QuantityDecimals int `json:"lot_decimals"`
	// CostDecimals 成交额精度
	CostDecimals int `json:"cost_decimals"`
	// LotMultiplier 数量乘数
	LotMultiplier int `json:"lot_multiplier"`
	// LeverageBuy 买入可用杠杆倍数
	LeverageBuy []int `json:"leverage_buy"`
	// LeverageSell 卖出可用杠杆倍数
	LeverageSell []int `json:"leverage_sell"`
	// Fees taker 手续费阶梯
	Fees []FeeTier `json:"fees"`
	// FeesMaker maker 手续费阶梯
	FeesMaker []FeeTier `json:"fees_maker"`
	// FeeVolumeCurrency 交易量计价货币
	FeeVolumeCurrency string `json:"fee_volume_currency"`
	// MarginCall 追加保证金比例
	MarginCall int `json:"margin_call"`
	// MarginStop 强平比例
	MarginStop int `json:"margin_stop"`
	// OrderMin 最小下单数量
	OrderMin types.ExDecimal `json:"ordermin"`
	// CostMin 最小下单金额
	CostMin types.ExDecimal `json:"costmin"`
	// TickSize 最小价格变动
	TickSize types.ExDecimal `json:"tick_size"`
	// Status 交易对状态
	Status string `json:"status"`
}
