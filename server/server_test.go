package server

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsonrpc-client/message"
)

func newMathServer(t *testing.T) *Server {
	t.Helper()
	svr := NewServer()
	require.NoError(t, svr.Register("mul", func(a, b float64) float64 { return a * b }))
	require.NoError(t, svr.Register("div", func(a, b float64) (float64, error) {
		if b == 0 {
			return 0, errors.New("division by zero")
		}
		return a / b, nil
	}))
	return svr
}

func TestRegisterRejectsNonFunction(t *testing.T) {
	assert.Error(t, NewServer().Register("x", 42))
}

func TestRegisterRejectsBadReturns(t *testing.T) {
	svr := NewServer()
	assert.Error(t, svr.Register("x", func() {}))
	assert.Error(t, svr.Register("x", func() error { return nil }))
	assert.Error(t, svr.Register("x", func() (int, int) { return 0, 0 }))
}

func TestDispatchSuccess(t *testing.T) {
	svr := newMathServer(t)

	resp := svr.dispatch([]byte(`{"jsonrpc":"2.0","method":"mul","params":[2.5,3.5],"id":1}`))

	require.Nil(t, resp.Error)
	var result float64
	require.NoError(t, resp.UnmarshalResult(&result))
	assert.Equal(t, 8.75, result)
	assert.Equal(t, float64(1), resp.ID)
}

func TestDispatchInvalidParams(t *testing.T) {
	svr := newMathServer(t)

	resp := svr.dispatch([]byte(`{"jsonrpc":"2.0","method":"mul","params":[2.5],"id":2}`))

	require.NotNil(t, resp.Error)
	assert.Equal(t, message.CodeInvalidParams, resp.Error.Code)
	assert.Equal(t, "Invalid params", resp.Error.Message)
	assert.Nil(t, resp.Result)
}

func TestDispatchWrongParamType(t *testing.T) {
	svr := newMathServer(t)

	resp := svr.dispatch([]byte(`{"jsonrpc":"2.0","method":"mul","params":["a","b"],"id":3}`))

	require.NotNil(t, resp.Error)
	assert.Equal(t, message.CodeInvalidParams, resp.Error.Code)
}

func TestDispatchMethodNotFound(t *testing.T) {
	svr := newMathServer(t)

	resp := svr.dispatch([]byte(`{"jsonrpc":"2.0","method":"pow","params":[2,3],"id":4}`))

	require.NotNil(t, resp.Error)
	assert.Equal(t, message.CodeMethodNotFound, resp.Error.Code)
}

func TestDispatchParseError(t *testing.T) {
	svr := newMathServer(t)

	resp := svr.dispatch([]byte(`{not json`))

	require.NotNil(t, resp.Error)
	assert.Equal(t, message.CodeParseError, resp.Error.Code)
}

func TestDispatchBadVersion(t *testing.T) {
	svr := newMathServer(t)

	resp := svr.dispatch([]byte(`{"jsonrpc":"1.0","method":"mul","params":[1,2],"id":5}`))

	require.NotNil(t, resp.Error)
	assert.Equal(t, message.CodeInvalidRequest, resp.Error.Code)
}

func TestDispatchHandlerError(t *testing.T) {
	svr := newMathServer(t)

	resp := svr.dispatch([]byte(`{"jsonrpc":"2.0","method":"div","params":[1,0],"id":6}`))

	require.NotNil(t, resp.Error)
	assert.Equal(t, message.CodeInternalError, resp.Error.Code)
	assert.Equal(t, "division by zero", resp.Error.Message)
}

func TestDispatchEchoesID(t *testing.T) {
	svr := newMathServer(t)

	resp := svr.dispatch([]byte(`{"jsonrpc":"2.0","method":"mul","params":[2,2],"id":"corr-9"}`))

	assert.Equal(t, "corr-9", resp.ID)
}
