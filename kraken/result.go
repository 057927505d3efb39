package kraken

import (
	"fmt"
	"sort"

	"github.com/lemconn/krakenlink/common"
	"github.com/lemconn/krakenlink/model"
)

// unwrapSingle 从以交易对为键的结果中取出请求的那一项
// 只有一项时直接返回；多于一项时按请求的交易对匹配键，匹配不到视为异常响应
func unwrapSingle[T any](m map[string]T, symbol string) (T, error) {
	var zero T
	switch len(m) {
	case 0:
		return zero, fmt.Errorf("%w: no entry for %s", common.ErrEmptyResponse, symbol)
	case 1:
		for _, v := range m {
			return v, nil
		}
	}
	if k, ok := matchKey(sortedKeys(m), symbol, nil); ok {
		return m[k], nil
	}
	return zero, fmt.Errorf("%w: %d entries returned for %s", common.ErrUnexpectedResponse, len(m), symbol)
}

// sortedKeys 返回排序后的键，保证匹配结果与 map 遍历顺序无关
func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// matchKey 在 keys 中查找与 symbol 对应的键，完全相同的键优先
func matchKey(keys []string, symbol string, used map[string]bool) (string, bool) {
	for _, k := range keys {
		if !used[k] && k == symbol {
			return k, true
		}
	}
	for _, k := range keys {
		if !used[k] && common.SameSymbol(k, symbol) {
			return k, true
		}
	}
	return "", false
}

// backfillTickers 行情数据本身不带交易对，用响应中的键回填
func backfillTickers(m map[string]model.RestTick) {
	for k, v := range m {
		v.Symbol = k
		m[k] = v
	}
}

// orderTickers 按请求顺序排列行情，匹配不到请求的键按名称排在最后
func orderTickers(m map[string]model.RestTick, symbols []string) []model.RestTick {
	keys := sortedKeys(m)
	list := make([]model.RestTick, 0, len(m))
	used := make(map[string]bool, len(m))
	for _, s := range symbols {
		if k, ok := matchKey(keys, s, used); ok {
			list = append(list, m[k])
			used[k] = true
		}
	}

	for _, k := range keys {
		if !used[k] {
			list = append(list, m[k])
		}
	}
	return list
}
