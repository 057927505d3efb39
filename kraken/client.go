package kraken

import (
	"context"

	"github.com/lemconn/krakenlink/common"
	"github.com/lemconn/krakenlink/exchange"
)

const (
	krakenName = "kraken"
	// BaseURL Kraken REST 地址
	BaseURL = "https://api.kraken.com"
)

// Executor 请求执行器
// 负责发送请求、签名和解析响应信封，接口方法只负责构造参数和处理结果
type Executor interface {
	// Execute 执行请求并将 result 解码到 out
	Execute(ctx context.Context, req *common.Request, out any) (*common.CallInfo, error)
	// GetURI 将相对路径解析为完整地址
	GetURI(path string) string
}

// Client Kraken 客户端
type Client struct {
	exec    Executor
	data    *SpotExchangeData
	account *SpotAccount
}

// NewClient 创建 Kraken 客户端，执行器由调用方提供
func NewClient(exec Executor) *Client {
	c := &Client{exec: exec}
	c.data = &SpotExchangeData{exec: exec}
	c.account = &SpotAccount{exec: exec}
	return c
}

// ExchangeData 返回公共行情接口
func (c *Client) ExchangeData() exchange.SpotExchangeData {
	return c.data
}

// Account 返回私有账户接口
func (c *Client) Account() exchange.SpotAccount {
	return c.account
}

// Name 返回交易所名称
func (c *Client) Name() string {
	return krakenName
}

// 确保 Client 实现了 exchange.Exchange 接口
var _ exchange.Exchange = (*Client)(nil)
