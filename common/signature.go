package common

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
)

// Signer Kraken 签名工具
type Signer struct {
	secret []byte
}

// NewSigner 创建签名工具，secretKey 为 Kraken 后台给出的 base64 私钥
func NewSigner(secretKey string) (*Signer, error) {
	secret, err := base64.StdEncoding.DecodeString(secretKey)
	if err != nil {
		return nil, fmt.Errorf("decode secret key: %w", err)
	}
	if len(secret) == 0 {
		return nil, InvalidArgument("secret key is empty")
	}
	return &Signer{secret: secret}, nil
}

// Sign 对请求进行签名
// path: URI 路径，如 /0/private/Balance
// nonce: 与表单中的 nonce 相同
// postData: 编码后的完整表单（包含 nonce）
//
// API-Sign = base64(HMAC-SHA512(path + SHA256(nonce + postData), secret))
func (s *Signer) Sign(path, nonce, postData string) string {
	sum := sha256.Sum256([]byte(nonce + postData))

	mac := hmac.New(sha512.New, s.secret)
	mac.Write([]byte(path))
	mac.Write(sum[:])
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
