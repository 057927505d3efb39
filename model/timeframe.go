package model

import "fmt"

// KlineInterval K线周期
type KlineInterval string

const (
	// KlineInterval1m 1分钟
	KlineInterval1m KlineInterval = "1m"
	// KlineInterval5m 5分钟
	KlineInterval5m KlineInterval = "5m"
	// KlineInterval15m 15分钟
	KlineInterval15m KlineInterval = "15m"
	// KlineInterval30m 30分钟
	KlineInterval30m KlineInterval = "30m"
	// KlineInterval1h 1小时
	KlineInterval1h KlineInterval = "1h"
	// KlineInterval4h 4小时
	KlineInterval4h KlineInterval = "4h"
	// KlineInterval1d 1天
	KlineInterval1d KlineInterval = "1d"
	// KlineInterval1w 1周
	KlineInterval1w KlineInterval = "1w"
	// KlineInterval15d 15天
	KlineInterval15d KlineInterval = "15d"
)

// KlineIntervals 全部支持的周期
var KlineIntervals = []KlineInterval{
	KlineInterval1m,
	KlineInterval5m,
	KlineInterval15m,
	KlineInterval30m,
	KlineInterval1h,
	KlineInterval4h,
	KlineInterval1d,
	KlineInterval1w,
	KlineInterval15d,
}

// Minutes 转换为 Kraken OHLC 接口的 interval 参数（分钟数）
func (i KlineInterval) Minutes() (int, error) {
	switch i {
	case KlineInterval1m:
		return 1, nil
	case KlineInterval5m:
		return 5, nil
	case KlineInterval15m:
		return 15, nil
	case KlineInterval30m:
		return 30, nil
	case KlineInterval1h:
		return 60, nil
	case KlineInterval4h:
		return 240, nil
	case KlineInterval1d:
		return 1440, nil
	case KlineInterval1w:
		return 10080, nil
	case KlineInterval15d:
		return 21600, nil
	}
	return 0, fmt.Errorf("unsupported kline interval: %q", string(i))
}

// ParseKlineInterval 解析周期字符串，兼容 1H/1D/1W 等大写写法
func ParseKlineInterval(s string) (KlineInterval, error) {
	switch s {
	case "1m":
		return KlineInterval1m, nil
	case "5m":
		return KlineInterval5m, nil
	case "15m":
		return KlineInterval15m, nil
	case "30m":
		return KlineInterval30m, nil
	case "1h", "1H":
		return KlineInterval1h, nil
	case "4h", "4H":
		return KlineInterval4h, nil
	case "1d", "1D":
		return KlineInterval1d, nil
	case "1w", "1W", "7d":
		return KlineInterval1w, nil
	case "15d", "15D":
		return KlineInterval15d, nil
	}
	return "", fmt.Errorf("unsupported kline interval: %q", s)
}
