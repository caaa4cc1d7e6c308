package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeRequest(t *testing.T) {
	msg, err := InitializeRequest()
	require.NoError(t, err)

	assert.Equal(t, "2.0", msg.JSONRPC)
	assert.Equal(t, "initialize", msg.Method)
	assert.JSONEq(t, "1", string(msg.ID))

	var params InitializeParams
	require.NoError(t, json.Unmarshal(msg.Params, &params))
	assert.Equal(t, MCPVersion, params.ProtocolVersion)
	assert.NotNil(t, params.Capabilities)
	assert.Empty(t, params.Capabilities)
	assert.Equal(t, "mcpcall", params.ClientInfo.Name)
	assert.NotEmpty(t, params.ClientInfo.Version)
}

func TestToolsListRequest(t *testing.T) {
	msg, err := ToolsListRequest()
	require.NoError(t, err)

	assert.Equal(t, "tools/list", msg.Method)
	assert.JSONEq(t, "1", string(msg.ID))
	assert.Empty(t, msg.Params)
}

func TestToolCallRequests(t *testing.T) {
	t.Run("balance", func(t *testing.T) {
		msg, err := BalanceRequest("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
		require.NoError(t, err)

		assert.Equal(t, "tools/call", msg.Method)
		var params struct {
			Name      string          `json:"name"`
			Arguments json.RawMessage `json:"arguments"`
		}
		require.NoError(t, json.Unmarshal(msg.Params, &params))
		assert.Equal(t, "get_balance", params.Name)
		assert.JSONEq(t, `{"wallet_address":"0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"}`, string(params.Arguments))
	})

	t.Run("price", func(t *testing.T) {
		msg, err := TokenPriceRequest("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
		require.NoError(t, err)

		assert.Equal(t, "tools/call", msg.Method)
		var params struct {
			Name      string          `json:"name"`
			Arguments json.RawMessage `json:"arguments"`
		}
		require.NoError(t, json.Unmarshal(msg.Params, &params))
		assert.Equal(t, "get_token_price", params.Name)
		assert.JSONEq(t, `{"token_address":"0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"}`, string(params.Arguments))
	})

	t.Run("swap carries fixed slippage", func(t *testing.T) {
		msg, err := SwapRequest("a", "b", "0.1", "w")
		require.NoError(t, err)

		assert.Equal(t, "tools/call", msg.Method)
		var params struct {
			Name      string   `json:"name"`
			Arguments SwapArgs `json:"arguments"`
		}
		require.NoError(t, json.Unmarshal(msg.Params, &params))
		assert.Equal(t, "swap_tokens", params.Name)
		assert.Equal(t, "a", params.Arguments.FromToken)
		assert.Equal(t, "b", params.Arguments.ToToken)
		assert.Equal(t, "0.1", params.Arguments.Amount)
		assert.Equal(t, "w", params.Arguments.WalletAddress)
		assert.Equal(t, 50, params.Arguments.SlippageBps)
	})

	t.Run("amount passes through verbatim", func(t *testing.T) {
		msg, err := SwapRequest("a", "b", "not-a-number", "w")
		require.NoError(t, err)
		assert.Contains(t, string(msg.Params), `"amount":"not-a-number"`)
	})
}

func TestRequestIDIsConstant(t *testing.T) {
	first, err := BalanceRequest("w")
	require.NoError(t, err)
	second, err := BalanceRequest("w")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.JSONEq(t, "1", string(second.ID))
}
