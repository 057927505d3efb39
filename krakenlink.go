package krakenlink

import (
	"github.com/lemconn/krakenlink/common"
	"github.com/lemconn/krakenlink/kraken"
	"github.com/lemconn/krakenlink/option"
)

const (
	// ExchangeKraken Kraken 交易所
	ExchangeKraken = "kraken"

	defaultRateLimit = 1.0
	defaultRateBurst = 15
)

// NewExecutor 按配置创建默认的 HTTP 执行器
func NewExecutor(opts ...option.Option) (*common.HTTPClient, error) {
	options := option.ApplyOptions(opts...)

	baseURL := options.BaseURL
	if baseURL == "" {
		baseURL = kraken.BaseURL
	}
	exec := common.NewHTTPClient(baseURL)

	if err := exec.SetCredentials(options.APIKey, options.SecretKey); err != nil {
		return nil, err
	}
	if options.Proxy != "" {
		if err := exec.SetProxy(options.Proxy); err != nil {
			return nil, err
		}
	}
	if options.Timeout > 0 {
		exec.SetTimeout(options.Timeout)
	}
	if options.Logger != nil {
		exec.SetLogger(options.Logger)
	}
	exec.SetDebug(options.Debug)

	// 未配置时使用 Kraken 公共接口的默认计数器：约每秒恢复 1 次，最多累积 15 次
	switch {
	case options.RateLimit > 0:
		exec.SetRateLimit(options.RateLimit, options.RateBurst)
	case options.RateLimit == 0:
		exec.SetRateLimit(defaultRateLimit, defaultRateBurst)
	}

	return exec, nil
}

// NewClient 创建 Kraken 客户端（使用 Functional Options Pattern）
func NewClient(opts ...option.Option) (*kraken.Client, error) {
	exec, err := NewExecutor(opts...)
	if err != nil {
		return nil, err
	}
	return kraken.NewClient(exec), nil
}
