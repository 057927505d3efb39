package common

import (
	"net/http"

	"github.com/lemconn/krakenlink/types"
)

// Request 一次 REST 调用的描述，由各接口方法构造后交给执行器
type Request struct {
	// Method HTTP 方法
	Method string
	// URI 完整地址，由执行器的 GetURI 解析得到
	URI string
	// Params 查询参数（GET）或表单参数（POST）
	Params *types.ExValues
	// Signed 是否需要签名
	Signed bool
}

// CallInfo 执行器返回的 HTTP 元信息
type CallInfo struct {
	StatusCode int
	Header     http.Header
}

// WebCallResult 统一的成功结果：HTTP 元信息 + 数据
// 失败时接口方法返回 nil 和原始错误，不会返回部分解码的数据
type WebCallResult[T any] struct {
	// StatusCode HTTP 状态码
	StatusCode int
	// Header 响应头
	Header http.Header
	// Data 数据
	Data T
}

// NewWebCallResult 由执行器元信息和数据构造结果
func NewWebCallResult[T any](info *CallInfo, data T) *WebCallResult[T] {
	r := &WebCallResult[T]{Data: data}
	if info != nil {
		r.StatusCode = info.StatusCode
		r.Header = info.Header
	}
	return r
}

// As 保留 HTTP 元信息，替换数据
func As[T, U any](r *WebCallResult[T], data U) *WebCallResult[U] {
	return &WebCallResult[U]{
		StatusCode: r.StatusCode,
		Header:     r.Header,
		Data:       data,
	}
}
