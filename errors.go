package krakenlink

import (
	"errors"

	"github.com/lemconn/krakenlink/common"
)

var (
	// ErrInvalidArgument 参数不合法
	ErrInvalidArgument = common.ErrInvalidArgument
	// ErrAuthenticationRequired 需要认证
	ErrAuthenticationRequired = common.ErrAuthenticationRequired
	// ErrEmptyResponse 响应中没有预期的数据
	ErrEmptyResponse = common.ErrEmptyResponse
	// ErrUnexpectedResponse 响应结构与请求不匹配
	ErrUnexpectedResponse = common.ErrUnexpectedResponse
	// ErrExchangeNotSupported 不支持的交易所
	ErrExchangeNotSupported = errors.New("exchange not supported")
)

// APIError HTTP 错误或交易所返回的业务错误
type APIError = common.APIError
