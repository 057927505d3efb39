package model

import "time"

// WebSocketToken WebSocket 私有频道认证令牌
type WebSocketToken struct {
	// Token 令牌
	Token string `json:"token"`
	// Expires 有效期（秒），在连接建立后开始计算
	Expires int `json:"expires"`
}

// ExpiresIn 有效期
func (t WebSocketToken) ExpiresIn() time.Duration {
	return time.Duration(t.Expires) * time.Second
}
