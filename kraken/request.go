package kraken

import (
	"context"
	"net/http"

	"github.com/lemconn/krakenlink/common"
	"github.com/lemconn/krakenlink/option"
	"github.com/lemconn/krakenlink/types"
)

// execute 构造请求并交给执行器，执行器的错误原样返回
func execute[T any](ctx context.Context, exec Executor, path string, params *types.ExValues, signed bool) (*common.WebCallResult[T], error) {
	if params == nil {
		params = types.NewExValues()
	}
	method := http.MethodGet
	if signed {
		method = http.MethodPost
	}
	req := &common.Request{
		Method: method,
		URI:    exec.GetURI(path),
		Params: params,
		Signed: signed,
	}

	var data T
	info, err := exec.Execute(ctx, req, &data)
	if err != nil {
		return nil, err
	}
	return common.NewWebCallResult(info, data), nil
}

// setTwoFactor 设置了二次验证密码时添加 otp 参数
func setTwoFactor(params *types.ExValues, args *option.ExchangeArgsOptions) {
	otp, _ := option.GetString(args.TwoFactor)
	params.SetOptional("otp", otp)
}

// validateSymbols 校验交易对列表中的每一项
func validateSymbols(symbols []string) error {
	for _, s := range symbols {
		if err := common.ValidateSymbol(s); err != nil {
			return err
		}
	}
	return nil
}
