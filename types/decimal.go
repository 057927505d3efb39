package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ExDecimal 支持空字符串的 decimal.Decimal 类型
// 用于 JSON 反序列化时处理空字符串或 null 值，Kraken 同时返回带引号和不带引号的数字
type ExDecimal struct {
	decimal.Decimal
}

// NewExDecimal 由 decimal.Decimal 构造
func NewExDecimal(d decimal.Decimal) ExDecimal {
	return ExDecimal{Decimal: d}
}

// RequireExDecimal 由字符串构造，解析失败时 panic，仅用于常量和测试
func RequireExDecimal(s string) ExDecimal {
	return ExDecimal{Decimal: decimal.RequireFromString(s)}
}

// UnmarshalJSON 自定义 JSON 反序列化，支持空字符串
func (d *ExDecimal) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(strings.Trim(string(data), `"`))
	if s == "" || s == "null" {
		d.Decimal = decimal.Zero
		return nil
	}
	return d.Decimal.UnmarshalJSON(data)
}
