package common

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/lemconn/krakenlink/types"
)

// HTTPClient Kraken REST 执行器：负责连接、签名、限频和响应信封解析
// 可被多个 goroutine 并发使用
type HTTPClient struct {
	client    *http.Client
	baseURL   string
	apiKey    string
	signer    *Signer
	nonce     *NonceProvider
	limiter   *rate.Limiter
	logger    *logrus.Logger
	userAgent string
	proxy     string
	debug     bool
}

// envelope Kraken 统一响应信封
type envelope struct {
	Error  []string        `json:"error"`
	Result json.RawMessage `json:"result"`
}

// NewHTTPClient 创建HTTP客户端
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:   strings.TrimRight(baseURL, "/"),
		nonce:     NewNonceProvider(),
		logger:    logrus.StandardLogger(),
		userAgent: "krakenlink",
	}
}

// SetCredentials 设置 API Key 和 Secret，两者都为空时清除凭证，只设置其中一个视为参数错误
func (c *HTTPClient) SetCredentials(apiKey, secretKey string) error {
	if apiKey == "" && secretKey == "" {
		c.apiKey = ""
		c.signer = nil
		return nil
	}
	if apiKey == "" {
		return InvalidArgument("api key is not provided")
	}
	if secretKey == "" {
		return InvalidArgument("secret key is not provided")
	}
	signer, err := NewSigner(secretKey)
	if err != nil {
		return err
	}
	c.apiKey = apiKey
	c.signer = signer
	return nil
}

// HasCredentials 是否已配置凭证
func (c *HTTPClient) HasCredentials() bool {
	return c.apiKey != "" && c.signer != nil
}

// SetProxy 设置代理
func (c *HTTPClient) SetProxy(proxyURL string) error {
	if proxyURL == "" {
		c.client.Transport = nil
		c.proxy = ""
		return nil
	}

	proxy, err := url.Parse(proxyURL)
	if err != nil {
		return fmt.Errorf("invalid proxy URL: %w", err)
	}

	transport := &http.Transport{
		Proxy: http.ProxyURL(proxy),
	}

	if c.client.Transport != nil {
		// 保留现有的Transport设置
		if existingTransport, ok := c.client.Transport.(*http.Transport); ok {
			transport.TLSClientConfig = existingTransport.TLSClientConfig
		}
	}

	c.client.Transport = transport
	c.proxy = proxyURL
	return nil
}

// SetTimeout 设置超时时间
func (c *HTTPClient) SetTimeout(timeout time.Duration) {
	c.client.Timeout = timeout
}

// SetRateLimit 设置每秒请求数和突发量，r <= 0 表示不限频
func (c *HTTPClient) SetRateLimit(r float64, burst int) {
	if r <= 0 {
		c.limiter = nil
		return
	}
	if burst <= 0 {
		burst = 1
	}
	c.limiter = rate.NewLimiter(rate.Limit(r), burst)
}

// SetLogger 设置日志
func (c *HTTPClient) SetLogger(logger *logrus.Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// SetDebug 设置是否启用调试模式
func (c *HTTPClient) SetDebug(debug bool) {
	c.debug = debug
}

// GetURI 将相对路径解析为完整地址
func (c *HTTPClient) GetURI(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// Execute 发送请求并将信封中的 result 解码到 out
// 取消或超时返回 context 错误；HTTP 非 2xx 和交易所业务错误均返回 *APIError
func (c *HTTPClient) Execute(ctx context.Context, req *Request, out any) (*CallInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Signed && !c.HasCredentials() {
		return nil, ErrAuthenticationRequired
	}

	u, err := url.Parse(req.URI)
	if err != nil {
		return nil, fmt.Errorf("parse uri: %w", err)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	httpReq, err := c.buildRequest(ctx, req, u)
	if err != nil {
		return nil, err
	}

	if c.debug {
		c.logger.WithFields(logrus.Fields{
			"method": httpReq.Method,
			"url":    httpReq.URL.String(),
			"signed": req.Signed,
			"proxy":  c.proxy,
		}).Debug("kraken request")
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && c.debug {
			c.logger.WithError(closeErr).Warn("failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("read response: %w", err)
	}

	if c.debug {
		c.logger.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(body),
		}).Debug("kraken response")
	}

	info := &CallInfo{StatusCode: resp.StatusCode, Header: resp.Header}

	// 检查状态码
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Header: resp.Header}
		var env envelope
		if json.Unmarshal(body, &env) == nil && len(exchangeErrors(env.Error)) > 0 {
			apiErr.Messages = exchangeErrors(env.Error)
		} else {
			apiErr.Messages = []string{strings.TrimSpace(string(body))}
		}
		return nil, apiErr
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if errs := exchangeErrors(env.Error); len(errs) > 0 {
		return nil, &APIError{StatusCode: resp.StatusCode, Header: resp.Header, Messages: errs, Exchange: true}
	}

	if out != nil {
		if len(env.Result) == 0 {
			return nil, fmt.Errorf("unmarshal result: %w", ErrEmptyResponse)
		}
		if err := json.Unmarshal(env.Result, out); err != nil {
			return nil, fmt.Errorf("unmarshal result: %w", err)
		}
	}

	return info, nil
}

// buildRequest 构建 HTTP 请求；公共接口为 GET + 查询参数，私有接口为 POST + 签名表单
func (c *HTTPClient) buildRequest(ctx context.Context, req *Request, u *url.URL) (*http.Request, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	if !req.Signed {
		target := req.URI
		if method == http.MethodGet || method == http.MethodDelete {
			target = req.Params.JoinPath(req.URI)
			httpReq, err := http.NewRequestWithContext(ctx, method, target, nil)
			if err != nil {
				return nil, fmt.Errorf("create request: %w", err)
			}
			httpReq.Header.Set("User-Agent", c.userAgent)
			return httpReq, nil
		}
		httpReq, err := http.NewRequestWithContext(ctx, method, target, strings.NewReader(req.Params.EncodeQuery()))
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		httpReq.Header.Set("User-Agent", c.userAgent)
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return httpReq, nil
	}

	// nonce 放在表单首位，签名使用与请求体完全相同的字符串
	nonce := c.nonce.Next()
	form := types.NewExValues()
	form.Set("nonce", nonce)
	form.Merge(req.Params)
	postData := form.EncodeQuery()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, req.URI, strings.NewReader(postData))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("API-Key", c.apiKey)
	httpReq.Header.Set("API-Sign", c.signer.Sign(u.Path, nonce, postData))
	return httpReq, nil
}
