package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ExTimestamp 支持多种格式的时间戳类型
// 用于 JSON 反序列化时处理不同格式的时间戳（秒、带小数的秒、毫秒、微秒、纳秒、RFC3339）
// 解析结果统一为 UTC
type ExTimestamp struct {
	time.Time
	// sourceFormat 记录输入格式，用于序列化时保持原始格式
	// 可能的值: "s"(秒), "sf"(带小数的秒), "ms"(毫秒), "us"(微秒), "ns"(纳秒), "rfc3339"(RFC3339字符串)
	sourceFormat string
}

// NewExTimestamp 由 time.Time 构造
func NewExTimestamp(t time.Time) ExTimestamp {
	return ExTimestamp{Time: t.UTC()}
}

// UnmarshalJSON 自定义 JSON 反序列化，支持多种时间戳格式
func (t *ExTimestamp) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	if s == "" || s == "null" {
		// 明确设置为零值
		t.Time = time.Time{}
		t.sourceFormat = ""
		return nil
	}

	// 尝试 int64（各种 timestamp）
	if ts, err := strconv.ParseInt(s, 10, 64); err == nil {
		if ts == 0 {
			// Kraken 用 0 表示“无”，例如永不过期的充值地址
			t.Time = time.Time{}
			t.sourceFormat = ""
			return nil
		}
		switch len(s) {
		case 10:
			t.Time = time.Unix(ts, 0).UTC()
			t.sourceFormat = "s"
		case 13:
			t.Time = time.UnixMilli(ts).UTC()
			t.sourceFormat = "ms"
		case 16:
			t.Time = time.UnixMicro(ts).UTC()
			t.sourceFormat = "us"
		case 19:
			t.Time = time.Unix(0, ts).UTC()
			t.sourceFormat = "ns"
		default:
			return fmt.Errorf("unsupported timestamp length: %d (%s)", len(s), s)
		}
		return nil
	}

	// 带小数的秒，例如 1688669448.2446；用 decimal 解析避免浮点误差
	if d, err := decimal.NewFromString(s); err == nil {
		sec := d.IntPart()
		nsec := d.Sub(decimal.NewFromInt(sec)).Shift(9).IntPart()
		t.Time = time.Unix(sec, nsec).UTC()
		t.sourceFormat = "sf"
		return nil
	}

	// fallback: RFC3339 string
	tt, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", s, err)
	}
	t.Time = tt.UTC()
	t.sourceFormat = "rfc3339"
	return nil
}

// MarshalJSON 自定义 JSON 序列化，保持原始格式
func (t ExTimestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("0"), nil
	}
	switch t.sourceFormat {
	case "s":
		return []byte(strconv.FormatInt(t.Unix(), 10)), nil
	case "sf":
		return []byte(decimal.New(t.UnixNano(), -9).String()), nil
	case "ms":
		return []byte(strconv.FormatInt(t.UnixMilli(), 10)), nil
	case "us":
		return []byte(strconv.FormatInt(t.UnixMicro(), 10)), nil
	case "ns":
		return []byte(strconv.FormatInt(t.UnixNano(), 10)), nil
	case "rfc3339":
		return json.Marshal(t.Format(time.RFC3339))
	default:
		// Kraken 的时间戳以秒为主
		return []byte(strconv.FormatInt(t.Unix(), 10)), nil
	}
}
