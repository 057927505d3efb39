package model

import "github.com/lemconn/krakenlink/types"

// FeeInfo 交易对当前手续费档位
type FeeInfo struct {
	// Fee 当前费率（百分比）
	Fee types.ExDecimal `json:"fee"`
	// MinimalFee 最低费率
	MinimalFee types.ExDecimal `json:"minfee"`
	// MaximumFee 最高费率
	MaximumFee types.ExDecimal `json:"maxfee"`
	// NextFee 下一档费率，已在最低档时为空
	NextFee *types.ExDecimal `json:"nextfee,omitempty"`
	// NextVolume 进入下一档所需交易量，已在最低档时为空
	NextVolume *types.ExDecimal `json:"nextvolume,omitempty"`
	// TierVolume 当前档位的交易量门槛
	TierVolume types.ExDecimal `json:"tiervolume"`
}

// TradeVolume 30 天交易量及费率
type TradeVolume struct {
	// Currency 交易量计价货币
	Currency string `json:"currency"`
	// Volume 30 天交易量
	Volume types.ExDecimal `json:"volume"`
	// Fees taker 费率（交易对 -> 费率）
	Fees map[string]FeeInfo `json:"fees,omitempty"`
	// MakerFees maker 费率（交易对 -> 费率）
	MakerFees map[string]FeeInfo `json:"fees_maker,omitempty"`
}
