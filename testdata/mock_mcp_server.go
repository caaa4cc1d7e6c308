// mock_mcp_server imitates the Ethereum trading MCP server for
// integration testing. It answers initialize, tools/list, and
// tools/call for get_balance / get_token_price / swap_tokens over
// newline-delimited JSON on stdin/stdout.
//
// Behavior knobs for tests:
//
//	MOCK_SILENT=1   read the request but write nothing to stdout
//	MOCK_HANG=1     never answer and never exit
//	MOCK_STDERR=s   write s to stderr before answering
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type message struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   json.RawMessage `json:"error,omitempty"`
}

func main() {
	if os.Getenv("MOCK_HANG") == "1" {
		time.Sleep(time.Hour)
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)

	for scanner.Scan() {
		var msg message
		if err := json.Unmarshal(scanner.Bytes(), &msg); err != nil {
			fmt.Fprintf(os.Stderr, "mock: invalid JSON: %v\n", err)
			continue
		}

		if s := os.Getenv("MOCK_STDERR"); s != "" {
			fmt.Fprintln(os.Stderr, s)
		}
		if os.Getenv("MOCK_SILENT") == "1" {
			continue
		}

		switch msg.Method {
		case "initialize":
			reply(msg.ID, json.RawMessage(`{
				"protocolVersion": "2024-11-05",
				"serverInfo": {"name": "eth-trading-server", "version": "0.1.0"},
				"capabilities": {"tools": {}}
			}`), nil)

		case "initialized":
			// Notification — no response

		case "tools/list":
			reply(msg.ID, json.RawMessage(`{
				"tools": [
					{"name": "get_balance", "description": "Get ETH balance of a wallet", "inputSchema": {"type": "object", "properties": {"wallet_address": {"type": "string"}}, "required": ["wallet_address"]}},
					{"name": "get_token_price", "description": "Get USD price of an ERC-20 token", "inputSchema": {"type": "object", "properties": {"token_address": {"type": "string"}}, "required": ["token_address"]}},
					{"name": "swap_tokens", "description": "Swap tokens via a DEX", "inputSchema": {"type": "object", "properties": {"from_token": {"type": "string"}, "to_token": {"type": "string"}, "amount": {"type": "string"}, "wallet_address": {"type": "string"}, "slippage_bps": {"type": "integer"}}, "required": ["from_token", "to_token", "amount", "wallet_address"]}}
				]
			}`), nil)

		case "tools/call":
			handleToolCall(msg)

		default:
			errData, _ := json.Marshal(map[string]any{
				"code":    -32601,
				"message": fmt.Sprintf("method not found: %s", msg.Method),
			})
			reply(msg.ID, nil, errData)
		}
	}
}

func handleToolCall(msg message) {
	var params struct {
		Name      string         `json:"name"`
		Arguments map[string]any `json:"arguments"`
	}
	json.Unmarshal(msg.Params, &params)

	var text string
	switch params.Name {
	case "get_balance":
		text = fmt.Sprintf(`{"wallet_address":%q,"balance_eth":"1.523","block":19000000}`,
			str(params.Arguments["wallet_address"]))
	case "get_token_price":
		text = fmt.Sprintf(`{"token_address":%q,"price_usd":"0.9998","source":"mock-oracle"}`,
			str(params.Arguments["token_address"]))
	case "swap_tokens":
		text = fmt.Sprintf(`{"status":"submitted","tx_hash":"0xabc123","from_token":%q,"to_token":%q,"amount":%q,"slippage_bps":%v}`,
			str(params.Arguments["from_token"]),
			str(params.Arguments["to_token"]),
			str(params.Arguments["amount"]),
			params.Arguments["slippage_bps"])
	default:
		errData, _ := json.Marshal(map[string]any{
			"code":    -32602,
			"message": fmt.Sprintf("unknown tool: %s", params.Name),
		})
		reply(msg.ID, nil, errData)
		return
	}

	content, _ := json.Marshal(map[string]any{
		"content": []map[string]any{{"type": "text", "text": text}},
	})
	reply(msg.ID, content, nil)
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func reply(id, result, errObj json.RawMessage) {
	data, _ := json.Marshal(message{
		JSONRPC: "2.0",
		ID:      id,
		Result:  result,
		Error:   errObj,
	})
	data = append(data, '\n')
	os.Stdout.Write(data)
}
