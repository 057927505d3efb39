package model

import (
	"fmt"

	"github.com/lemconn/krakenlink/types"
)

// LedgerEntryType 账本流水类型
type LedgerEntryType string

const (
	LedgerEntryTypeAll        LedgerEntryType = "all"
	LedgerEntryTypeTrade      LedgerEntryType = "trade"
	LedgerEntryTypeDeposit    LedgerEntryType = "deposit"
	LedgerEntryTypeWithdrawal LedgerEntryType = "withdrawal"
	LedgerEntryTypeTransfer   LedgerEntryType = "transfer"
	LedgerEntryTypeMargin     LedgerEntryType = "margin"
	LedgerEntryTypeAdjustment LedgerEntryType = "adjustment"
	LedgerEntryTypeRollover   LedgerEntryType = "rollover"
	LedgerEntryTypeCredit     LedgerEntryType = "credit"
	LedgerEntryTypeSettled    LedgerEntryType = "settled"
	LedgerEntryTypeStaking    LedgerEntryType = "staking"
	LedgerEntryTypeDividend   LedgerEntryType = "dividend"
	LedgerEntryTypeSale       LedgerEntryType = "sale"
	LedgerEntryTypeNftRebate  LedgerEntryType = "nft_rebate"
)

// Wire 返回请求参数中使用的字符串，未知类型返回错误
func (t LedgerEntryType) Wire() (string, error) {
	switch t {
	case LedgerEntryTypeAll:
		return "all", nil
	case LedgerEntryTypeTrade:
		return "trade", nil
	case LedgerEntryTypeDeposit:
		return "deposit", nil
	case LedgerEntryTypeWithdrawal:
		return "withdrawal", nil
	case LedgerEntryTypeTransfer:
		return "transfer", nil
	case LedgerEntryTypeMargin:
		return "margin", nil
	case LedgerEntryTypeAdjustment:
		return "adjustment", nil
	case LedgerEntryTypeRollover:
		return "rollover", nil
	case LedgerEntryTypeCredit:
		return "credit", nil
	case LedgerEntryTypeSettled:
		return "settled", nil
	case LedgerEntryTypeStaking:
		return "staking", nil
	case LedgerEntryTypeDividend:
		return "dividend", nil
	case LedgerEntryTypeSale:
		return "sale", nil
	case LedgerEntryTypeNftRebate:
		return "nft_rebate", nil
	}
	return "", fmt.Errorf("unknown ledger entry type: %q", string(t))
}

// LedgerEntry 账本流水
// Type 按原样保留交易所返回的值，交易所可能新增类型
type LedgerEntry struct {
	// ReferenceID 关联的交易或资金记录 ID
	ReferenceID string `json:"refid"`
	// Timestamp 时间
	Timestamp types.ExTimestamp `json:"time"`
	// Type 流水类型
	Type LedgerEntryType `json:"type"`
	// SubType 流水子类型
	SubType string `json:"subtype"`
	// AssetClass 资产类别
	AssetClass string `json:"aclass"`
	// Asset 资产
	Asset string `json:"asset"`
	// Quantity 变动数量
	Quantity types.ExDecimal `json:"amount"`
	// Fee 手续费
	Fee types.ExDecimal `json:"fee"`
	// BalanceAfter 变动后余额
	BalanceAfter types.ExDecimal `json:"balance"`
}

// LedgerEntries 账本流水（流水 ID -> 流水）
type LedgerEntries map[string]LedgerEntry

// LedgerPage 分页账本查询结果
type LedgerPage struct {
	// Ledger 当前页的流水
	Ledger LedgerEntries `json:"ledger"`
	// Count 符合条件的流水总数
	Count int `json:"count"`
}
