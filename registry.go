package krakenlink

import (
	"fmt"
	"sort"
	"sync"

	"github.com/lemconn/krakenlink/exchange"
	"github.com/lemconn/krakenlink/option"
)

// ExchangeFactory 交易所工厂函数
type ExchangeFactory func(opts ...option.Option) (exchange.Exchange, error)

// Registry 交易所注册表
type Registry struct {
	mu        sync.RWMutex
	factories map[string]ExchangeFactory
}

var globalRegistry = &Registry{
	factories: make(map[string]ExchangeFactory),
}

func init() {
	Register(ExchangeKraken, func(opts ...option.Option) (exchange.Exchange, error) {
		c, err := NewClient(opts...)
		if err != nil {
			return nil, err
		}
		return c, nil
	})
}

// Register 注册交易所，同名时覆盖
func Register(name string, factory ExchangeFactory) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.factories[name] = factory
}

// NewExchange 按名称创建交易所实例
func NewExchange(name string, opts ...option.Option) (exchange.Exchange, error) {
	globalRegistry.mu.RLock()
	factory, ok := globalRegistry.factories[name]
	globalRegistry.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrExchangeNotSupported, name)
	}
	return factory(opts...)
}

// GetSupportedExchanges 获取支持的交易所列表
func GetSupportedExchanges() []string {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	exchanges := make([]string, 0, len(globalRegistry.factories))
	for name := range globalRegistry.factories {
		exchanges = append(exchanges, name)
	}
	sort.Strings(exchanges)
	return exchanges
}

// IsExchangeSupported 检查交易所是否支持
func IsExchangeSupported(name string) bool {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	_, ok := globalRegistry.factories[name]
	return ok
}
