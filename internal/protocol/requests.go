package protocol

import (
	"encoding/json"
	"fmt"
)

// MCPVersion is the MCP protocol revision sent during initialize.
const MCPVersion = "2024-11-05"

const (
	clientName    = "mcpcall"
	clientVersion = "1.0"
)

// RequestID is the constant JSON-RPC id used for every request.
// Each invocation sends exactly one request to a fresh process, so
// there is nothing to correlate and no counter to increment.
const RequestID = 1

// Tool names exposed by the trading server.
const (
	ToolGetBalance    = "get_balance"
	ToolGetTokenPrice = "get_token_price"
	ToolSwapTokens    = "swap_tokens"
)

// SlippageBps is the fixed slippage tolerance forwarded with swaps,
// in basis points. The server interprets it; we only pass it through.
const SlippageBps = 50

type ClientInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type InitializeParams struct {
	ProtocolVersion string         `json:"protocolVersion"`
	Capabilities    map[string]any `json:"capabilities"`
	ClientInfo      ClientInfo     `json:"clientInfo"`
}

type CallToolParams struct {
	Name      string `json:"name"`
	Arguments any    `json:"arguments"`
}

type BalanceArgs struct {
	WalletAddress string `json:"wallet_address"`
}

type TokenPriceArgs struct {
	TokenAddress string `json:"token_address"`
}

// SwapArgs carries the swap request verbatim. Amount stays a string:
// no numeric parsing happens on this side, malformed values are the
// server's problem to report.
type SwapArgs struct {
	FromToken     string `json:"from_token"`
	ToToken       string `json:"to_token"`
	Amount        string `json:"amount"`
	WalletAddress string `json:"wallet_address"`
	SlippageBps   int    `json:"slippage_bps"`
}

// NewRequest builds a request envelope with the constant id.
func NewRequest(method string, params any) (*Message, error) {
	msg := &Message{
		JSONRPC: "2.0",
		ID:      json.RawMessage(fmt.Sprintf("%d", RequestID)),
		Method:  method,
	}
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("marshal params for %s: %w", method, err)
		}
		msg.Params = data
	}
	return msg, nil
}

// InitializeRequest builds the capability-negotiation request.
func InitializeRequest() (*Message, error) {
	return NewRequest("initialize", InitializeParams{
		ProtocolVersion: MCPVersion,
		Capabilities:    map[string]any{},
		ClientInfo:      ClientInfo{Name: clientName, Version: clientVersion},
	})
}

// ToolsListRequest builds the tool-listing request.
func ToolsListRequest() (*Message, error) {
	return NewRequest("tools/list", nil)
}

// CallToolRequest builds a tools/call request for the named tool.
func CallToolRequest(name string, args any) (*Message, error) {
	return NewRequest("tools/call", CallToolParams{Name: name, Arguments: args})
}

// BalanceRequest builds a get_balance call for a wallet address.
func BalanceRequest(walletAddress string) (*Message, error) {
	return CallToolRequest(ToolGetBalance, BalanceArgs{WalletAddress: walletAddress})
}

// TokenPriceRequest builds a get_token_price call for a token address.
func TokenPriceRequest(tokenAddress string) (*Message, error) {
	return CallToolRequest(ToolGetTokenPrice, TokenPriceArgs{TokenAddress: tokenAddress})
}

// SwapRequest builds a swap_tokens call with the fixed slippage tolerance.
func SwapRequest(fromToken, toToken, amount, walletAddress string) (*Message, error) {
	return CallToolRequest(ToolSwapTokens, SwapArgs{
		FromToken:     fromToken,
		ToToken:       toToken,
		Amount:        amount,
		WalletAddress: walletAddress,
		SlippageBps:   SlippageBps,
	})
}
