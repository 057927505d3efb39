package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"
	"gopkg.in/yaml.v3"

	"github.com/lemconn/krakenlink/model"
)

// printer 按配置的格式输出结果
type printer struct {
	w      io.Writer
	format string
	au     aurora.Aurora
}

func newPrinter(w io.Writer, format string, color bool) *printer {
	return &printer{w: w, format: format, au: aurora.NewAurora(color)}
}

// Print 输出任意结果；yaml 和 text 都使用 YAML，字段名与 JSON 保持一致
func (p *printer) Print(v any) error {
	switch p.format {
	case "yaml", "text":
		return p.printYAML(v)
	default:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

func (p *printer) printYAML(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return fmt.Errorf("decode output: %w", err)
	}

	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlNumbers(generic)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// yamlNumbers 将 json.Number 还原为整数或浮点数，否则 YAML 会输出带引号的字符串
func yamlNumbers(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, item := range val {
			val[k] = yamlNumbers(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = yamlNumbers(item)
		}
		return val
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return n
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	default:
		return v
	}
}

// PrintStatus text 格式下输出带颜色的状态行
func (p *printer) PrintStatus(s model.SystemStatus) error {
	if p.format != "text" {
		return p.Print(s)
	}
	var status aurora.Value
	switch s.Status {
	case model.SystemStatusOnline:
		status = p.au.Green(s.Status)
	case model.SystemStatusPostOnly, model.SystemStatusCancelOnly:
		status = p.au.Yellow(s.Status)
	default:
		status = p.au.Red(s.Status)
	}
	_, err := fmt.Fprintf(p.w, "kraken is %s since %s\n", p.au.Bold(status), s.Timestamp.Format(time.RFC3339))
	return err
}

// parseTime 解析命令行中的时间：RFC3339、Unix 秒，或相对当前时间的 duration（如 2h）
func parseTime(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(sec, 0).UTC(), nil
	}
	if d, err := time.ParseDuration(s); err == nil {
		return now.Add(-d), nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q, expected RFC3339, unix seconds or a duration like 2h", s)
}
