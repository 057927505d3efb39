package exchange

// Exchange 顶层交易所接口
type Exchange interface {
	// ExchangeData 获取公共行情接口
	ExchangeData() SpotExchangeData

	// Account 获取私有账户接口
	Account() SpotAccount

	// Name 返回交易所名称
	Name() string
}
