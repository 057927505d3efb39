package option

import (
	"time"

	"github.com/sirupsen/logrus"
)

// ExchangeOptions 客户端配置选项（用于 Client 初始化）
type ExchangeOptions struct {
	APIKey    string
	SecretKey string
	BaseURL   string
	Proxy     string
	Timeout   time.Duration
	Debug     bool
	Logger    *logrus.Logger
	// RateLimit 每秒请求数，0 使用默认值，小于 0 表示不限速
	RateLimit float64
	RateBurst int
}

// Option 配置选项函数类型（用于 Client 初始化）
type Option func(*ExchangeOptions)

// ApplyOptions 依次应用配置选项
func ApplyOptions(opts ...Option) *ExchangeOptions {
	options := &ExchangeOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}
	return options
}

// WithAPIKey 设置 API Key
func WithAPIKey(apiKey string) Option {
	return func(opts *ExchangeOptions) {
		opts.APIKey = apiKey
	}
}

// WithSecretKey 设置 Secret Key（Base64 编码的私钥）
func WithSecretKey(secretKey string) Option {
	return func(opts *ExchangeOptions) {
		opts.SecretKey = secretKey
	}
}

// WithBaseURL 设置基础 URL
func WithBaseURL(baseURL string) Option {
	return func(opts *ExchangeOptions) {
		opts.BaseURL = baseURL
	}
}

// WithProxy 设置代理
func WithProxy(proxy string) Option {
	return func(opts *ExchangeOptions) {
		opts.Proxy = proxy
	}
}

// WithTimeout 设置请求超时
func WithTimeout(timeout time.Duration) Option {
	return func(opts *ExchangeOptions) {
		opts.Timeout = timeout
	}
}

// WithDebug 设置是否启用调试模式
func WithDebug(debug bool) Option {
	return func(opts *ExchangeOptions) {
		opts.Debug = debug
	}
}

// WithLogger 设置日志
func WithLogger(logger *logrus.Logger) Option {
	return func(opts *ExchangeOptions) {
		opts.Logger = logger
	}
}

// WithRateLimit 设置限速（每秒请求数和突发数）
func WithRateLimit(perSecond float64, burst int) Option {
	return func(opts *ExchangeOptions) {
		opts.RateLimit = perSecond
		opts.RateBurst = burst
	}
}
