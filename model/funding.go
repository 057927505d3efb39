package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/lemconn/krakenlink/types"
)

// DepositLimit 充值限额，交易所用 false 表示不限额
type DepositLimit struct {
	// Limited 是否有限额
	Limited bool
	// Value 限额，Limited 为 false 时无意义
	Value types.ExDecimal
}

// UnmarshalJSON 自定义 JSON 反序列化
func (l *DepositLimit) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("false")) || bytes.Equal(data, []byte("null")) {
		*l = DepositLimit{}
		return nil
	}
	var d types.ExDecimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("parse deposit limit: %w", err)
	}
	*l = DepositLimit{Limited: true, Value: d}
	return nil
}

// MarshalJSON 自定义 JSON 序列化，不限额时输出 false
func (l DepositLimit) MarshalJSON() ([]byte, error) {
	if !l.Limited {
		return []byte("false"), nil
	}
	return json.Marshal(l.Value.String())
}

// DepositMethod 充值方式
type DepositMethod struct {
	// Method 充值方式名称
	Method string `json:"method"`
	// Limit 限额
	Limit DepositLimit `json:"limit"`
	// Fee 手续费
	Fee types.ExDecimal `json:"fee"`
	// AddressSetupFee 生成地址的费用
	AddressSetupFee types.ExDecimal `json:"address-setup-fee"`
	// GenerateAddress 是否可以生成新地址
	GenerateAddress bool `json:"gen-address"`
	// Minimum 最小充值数量
	Minimum types.ExDecimal `json:"minimum"`
}

// DepositAddress 充值地址
type DepositAddress struct {
	// Address 地址
	Address string `json:"address"`
	// ExpireTime 过期时间，零值表示不过期
	ExpireTime types.ExTimestamp `json:"expiretm"`
	// New 是否从未使用过
	New bool `json:"new"`
	// Tag 部分资产需要的 memo/tag
	Tag string `json:"tag,omitempty"`
}

// DepositStatus 充值记录状态
type DepositStatus struct {
	// Method 充值方式
	Method string `json:"method"`
	// AssetClass 资产类别
	AssetClass string `json:"aclass"`
	// Asset 资产
	Asset string `json:"asset"`
	// ReferenceID 参考 ID
	ReferenceID string `json:"refid"`
	// TransactionID 链上交易 ID
	TransactionID string `json:"txid"`
	// Information 地址等附加信息
	Information string `json:"info"`
	// Quantity 充值数量
	Quantity types.ExDecimal `json:"amount"`
	// Fee 手续费
	Fee types.ExDecimal `json:"fee"`
	// Timestamp 请求时间
	Timestamp types.ExTimestamp `json:"time"`
	// Status 状态，如 Success、Settled、Failure
	Status string `json:"status"`
	// AdditionalStatus 附加状态，如 return、onhold
	AdditionalStatus string `json:"status-prop,omitempty"`
}

// WithdrawInfo 提现预估信息
type WithdrawInfo struct {
	// Method 提现方式
	Method string `json:"method"`
	// Limit 可提现上限
	Limit types.ExDecimal `json:"limit"`
	// Quantity 扣除手续费后实际到账数量
	Quantity types.ExDecimal `json:"amount"`
	// Fee 手续费
	Fee types.ExDecimal `json:"fee"`
}

// Withdraw 提现结果
type Withdraw struct {
	// ReferenceID 提现参考 ID
	ReferenceID string `json:"refid"`
}
