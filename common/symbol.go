package common

import (
	"regexp"
	"strings"
)

var (
	// symbolPattern Kraken 交易对格式：XBTUSD / XXBTZUSD
	symbolPattern = regexp.MustCompile(`^[a-zA-Z0-9]{5,}$`)
	// slashSymbolPattern 带分隔符的格式：XBT/USD
	slashSymbolPattern = regexp.MustCompile(`^[a-zA-Z0-9]{2,}/[a-zA-Z0-9]{2,}$`)
)

// ValidateSymbol 校验单个交易对参数
// 空字符串和纯空白与格式错误一样返回 ErrInvalidArgument
func ValidateSymbol(symbol string) error {
	if strings.TrimSpace(symbol) == "" {
		return InvalidArgument("symbol is not provided")
	}
	if !symbolPattern.MatchString(symbol) && !slashSymbolPattern.MatchString(symbol) {
		return InvalidArgument("%s is not a valid kraken symbol, expected [BaseAsset][QuoteAsset] or [BaseAsset]/[QuoteAsset], e.g. ETHUSD or ETH/USD", symbol)
	}
	return nil
}

// ValidateRequired 校验必填字符串参数
func ValidateRequired(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return InvalidArgument("%s is not provided", name)
	}
	return nil
}

// SameSymbol 判断响应中的交易对名称是否对应请求的交易对
// 比较时忽略大小写和 "/" 分隔符
func SameSymbol(a, b string) bool {
	return normalizeSymbol(a) == normalizeSymbol(b)
}

func normalizeSymbol(s string) string {
	return strings.ToUpper(strings.ReplaceAll(s, "/", ""))
}
