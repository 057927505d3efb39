package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemconn/krakenlink/model"
	"github.com/lemconn/krakenlink/types"
)

type sample struct {
	Name  string          `json:"name"`
	Price types.ExDecimal `json:"price"`
	Time  int64           `json:"time"`
}

func TestPrinter_JSON(t *testing.T) {
	var buf bytes.Buffer
	p := newPrinter(&buf, "json", false)

	require.NoError(t, p.Print(sample{Name: "XBTUSD", Price: types.RequireExDecimal("30384.1"), Time: 1688671659}))
	assert.JSONEq(t, `{"name":"XBTUSD","price":"30384.1","time":1688671659}`, buf.String())
	assert.Contains(t, buf.String(), "\n  \"name\"")
}

func TestPrinter_YAMLKeepsIntegers(t *testing.T) {
	var buf bytes.Buffer
	p := newPrinter(&buf, "yaml", false)

	require.NoError(t, p.Print(sample{Name: "XBTUSD", Price: types.RequireExDecimal("30384.1"), Time: 1688671659}))
	out := buf.String()
	assert.Contains(t, out, "name: XBTUSD")
	assert.Contains(t, out, "time: 1688671659")
	assert.Contains(t, out, `price: "30384.1"`)
	assert.NotContains(t, out, "e+09")
}

func TestYAMLNumbers(t *testing.T) {
	got := yamlNumbers(map[string]any{
		"count": json.Number("1688671659"),
		"ratio": json.Number("0.25"),
		"rows":  []any{json.Number("7"), "x"},
	})
	assert.Equal(t, map[string]any{
		"count": int64(1688671659),
		"ratio": 0.25,
		"rows":  []any{int64(7), "x"},
	}, got)
}

func TestPrinter_StatusText(t *testing.T) {
	ts := types.NewExTimestamp(time.Date(2023, 7, 6, 18, 52, 0, 0, time.UTC))

	tests := []struct {
		status model.SystemStatusKind
		want   string
	}{
		{model.SystemStatusOnline, "kraken is online since 2023-07-06T18:52:00Z\n"},
		{model.SystemStatusMaintenance, "kraken is maintenance since 2023-07-06T18:52:00Z\n"},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			var buf bytes.Buffer
			p := newPrinter(&buf, "text", false)
			require.NoError(t, p.PrintStatus(model.SystemStatus{Status: tt.status, Timestamp: ts}))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrinter_StatusColored(t *testing.T) {
	var buf bytes.Buffer
	p := newPrinter(&buf, "text", true)
	require.NoError(t, p.PrintStatus(model.SystemStatus{Status: model.SystemStatusOnline}))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestParseTime(t *testing.T) {
	now := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)

	got, err := parseTime("2024-01-01T00:00:00Z", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = parseTime("1688671659", now)
	require.NoError(t, err)
	assert.Equal(t, int64(1688671659), got.Unix())

	got, err = parseTime("2h", now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(-2*time.Hour), got)

	_, err = parseTime("yesterday", now)
	assert.Error(t, err)
}
