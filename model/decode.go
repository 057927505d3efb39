package model

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/lemconn/krakenlink/types"
)

// Kraken 大量使用定长数组表示记录，这里的工具函数按下标解析

// decodeArray 解析 JSON 数组，要求至少 min 个元素
func decodeArray(data []byte, min int, what string) ([]json.RawMessage, error) {
	var arr []json.RawMessage
	if err := json.Unmarshal(data, &arr); err != nil {
		return nil, fmt.Errorf("parse %s: %w", what, err)
	}
	if len(arr) < min {
		return nil, fmt.Errorf("invalid %s array length: %d", what, len(arr))
	}
	return arr, nil
}

func decodeDecimal(raw json.RawMessage, field string) (types.ExDecimal, error) {
	var d types.ExDecimal
	if err := d.UnmarshalJSON(raw); err != nil {
		return d, fmt.Errorf("parse %s: %w", field, err)
	}
	return d, nil
}

func decodeTimestamp(raw json.RawMessage, field string) (types.ExTimestamp, error) {
	var ts types.ExTimestamp
	if err := ts.UnmarshalJSON(raw); err != nil {
		return ts, fmt.Errorf("parse %s: %w", field, err)
	}
	return ts, nil
}

func decodeString(raw json.RawMessage, field string) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("parse %s: %w", field, err)
	}
	return s, nil
}

// decodeInt 同时接受数字和数字字符串
func decodeInt(raw json.RawMessage, field string) (int64, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		var s string
		if err2 := json.Unmarshal(raw, &s); err2 != nil {
			return 0, fmt.Errorf("parse %s: %w", field, err)
		}
		n = json.Number(s)
	}
	v, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", field, err)
	}
	return v, nil
}

// splitPairResult 拆分 {"<pair>": [...], "last": ...} 形式的结果
// 请求只包含一个交易对，因此除 last 之外只应有一个键
func splitPairResult(data []byte, what string) (pair string, rows json.RawMessage, last json.RawMessage, err error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return "", nil, nil, fmt.Errorf("parse %s: %w", what, err)
	}
	last = m["last"]
	delete(m, "last")
	if len(m) != 1 {
		return "", nil, nil, fmt.Errorf("parse %s: expected exactly one pair, got %d", what, len(m))
	}
	for k, v := range m {
		pair, rows = k, v
	}
	return pair, rows, last, nil
}
