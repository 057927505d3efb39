package common

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrInvalidArgument 参数不合法（请求发出前校验失败）
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAuthenticationRequired 需要认证
	ErrAuthenticationRequired = errors.New("authentication required")
	// ErrEmptyResponse 响应中没有预期的数据
	ErrEmptyResponse = errors.New("empty response")
	// ErrUnexpectedResponse 响应结构与请求不匹配
	ErrUnexpectedResponse = errors.New("unexpected response")
)

// InvalidArgument 构造带说明的参数错误，errors.Is(err, ErrInvalidArgument) 为 true
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// APIError HTTP 错误或交易所返回的业务错误
// 两类错误使用同一结构，调用方可以统一处理
type APIError struct {
	// StatusCode HTTP 状态码
	StatusCode int
	// Header 响应头
	Header http.Header
	// Messages 交易所错误码，如 "EGeneral:Invalid arguments"；HTTP 错误时为响应体
	Messages []string
	// Exchange 是否为交易所返回的业务错误（HTTP 2xx 但 error 数组非空）
	Exchange bool
}

func (e *APIError) Error() string {
	msg := strings.Join(e.Messages, "; ")
	if e.Exchange {
		return fmt.Sprintf("kraken api error: %s", msg)
	}
	return fmt.Sprintf("http error %d: %s", e.StatusCode, msg)
}

// exchangeErrors 过滤出错误项；Kraken 的 error 数组中以 W 开头的是警告
func exchangeErrors(messages []string) []string {
	var errs []string
	for _, m := range messages {
		if strings.HasPrefix(m, "W") {
			continue
		}
		errs = append(errs, m)
	}
	return errs
}
