package krakenlink

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemconn/krakenlink/option"
)

func TestNewClient_Defaults(t *testing.T) {
	exec, err := NewExecutor()
	require.NoError(t, err)
	assert.Equal(t, "https://api.kraken.com/0/public/Time", exec.GetURI("0/public/Time"))
	assert.False(t, exec.HasCredentials())

	c, err := NewClient()
	require.NoError(t, err)
	assert.Equal(t, ExchangeKraken, c.Name())
}

func TestNewClient_InvalidSecret(t *testing.T) {
	_, err := NewClient(option.WithAPIKey("key"), option.WithSecretKey("not base64!"))
	assert.Error(t, err)
}

func TestNewClient_HalfSetCredentials(t *testing.T) {
	_, err := NewClient(option.WithAPIKey("key"))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	secret := base64.StdEncoding.EncodeToString([]byte("secret"))
	_, err = NewClient(option.WithSecretKey(secret))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewClient_InvalidProxy(t *testing.T) {
	_, err := NewClient(option.WithProxy("://bad"))
	assert.Error(t, err)
}

func TestNewClient_WithOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/0/public/Time", r.URL.Path)
		_, _ = io.WriteString(w, `{"error":[],"result":{"unixtime":1700000000,"rfc1123":""}}`)
	}))
	defer srv.Close()

	secret := base64.StdEncoding.EncodeToString([]byte("secret"))
	c, err := NewClient(
		option.WithBaseURL(srv.URL),
		option.WithAPIKey("key"),
		option.WithSecretKey(secret),
		option.WithTimeout(5*time.Second),
		option.WithRateLimit(-1, 0),
	)
	require.NoError(t, err)

	result, err := c.ExchangeData().GetServerTime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), result.Data.Unix())
}

func TestRegistry(t *testing.T) {
	assert.True(t, IsExchangeSupported(ExchangeKraken))
	assert.False(t, IsExchangeSupported("binance"))
	assert.Contains(t, GetSupportedExchanges(), ExchangeKraken)

	ex, err := NewExchange(ExchangeKraken)
	require.NoError(t, err)
	assert.Equal(t, "kraken", ex.Name())

	_, err = NewExchange("binance")
	assert.ErrorIs(t, err, ErrExchangeNotSupported)
}
