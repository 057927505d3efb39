package common

import (
	"strconv"
	"sync/atomic"
	"time"
)

// NonceProvider 生成严格递增的 nonce（毫秒时间戳，同一毫秒内顺延）
// 同一个 API Key 的所有私有请求必须共用一个 NonceProvider
type NonceProvider struct {
	last atomic.Int64
	now  func() time.Time
}

// NewNonceProvider 创建 nonce 生成器
func NewNonceProvider() *NonceProvider {
	return &NonceProvider{now: time.Now}
}

// Next 返回下一个 nonce
func (p *NonceProvider) Next() string {
	now := p.now
	if now == nil {
		now = time.Now
	}
	for {
		last := p.last.Load()
		n := now().UnixMilli()
		if n <= last {
			n = last + 1
		}
		if p.last.CompareAndSwap(last, n) {
			return strconv.FormatInt(n, 10)
		}
	}
}
