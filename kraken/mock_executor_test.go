package kraken

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lemconn/krakenlink/common"
)

type mockExecutor struct {
	mock.Mock
}

func (m *mockExecutor) Execute(ctx context.Context, req *common.Request, out any) (*common.CallInfo, error) {
	args := m.Called(ctx, req, out)
	info, _ := args.Get(0).(*common.CallInfo)
	return info, args.Error(1)
}

func (m *mockExecutor) GetURI(path string) string {
	return BaseURL + "/" + path
}

// respond 将 result 解码到调用方传入的 out
func (m *mockExecutor) respond(t *testing.T, result string) *mock.Call {
	t.Helper()
	return m.On("Execute", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			require.NoError(t, json.Unmarshal([]byte(result), args.Get(2)))
		}).
		Return(&common.CallInfo{StatusCode: http.StatusOK, Header: http.Header{"X-Test": []string{"1"}}}, nil)
}

func (m *mockExecutor) fail(err error) *mock.Call {
	return m.On("Execute", mock.Anything, mock.Anything, mock.Anything).Return(nil, err)
}

// request 返回第 i 次调用的请求
func (m *mockExecutor) request(t *testing.T, i int) *common.Request {
	t.Helper()
	require.Greater(t, len(m.Calls), i)
	req, ok := m.Calls[i].Arguments.Get(1).(*common.Request)
	require.True(t, ok)
	return req
}

func newMockClient() (*Client, *mockExecutor) {
	exec := &mockExecutor{}
	return NewClient(exec), exec
}
