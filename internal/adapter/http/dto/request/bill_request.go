package request

import (
	"encoding/json"
	"strings"
)

// IssueBillRequest is the payload of POST /v1/bills.
type IssueBillRequest struct {
	ID              string `json:"id" binding:"required"`
	Website         string `json:"website"`
	Domain          string `json:"domain"`
	TransactionAmnt string `json:"transaction_amnt"`
}

func (r IssueBillRequest) ResolveID() string {
	return strings.TrimSpace(r.ID)
}

// SettleBillRequest documents the optional envelope accepted by the settle
// route. A bare provider payload is accepted as well.
type SettleBillRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}

// InvokeRequest is a raw contract call: function name plus positional args.
type InvokeRequest struct {
	Function string   `json:"function" binding:"required"`
	Args     []string `json:"args"`
}

func (r InvokeRequest) ResolveFunction() string {
	return strings.TrimSpace(r.Function)
}

// ResolveArgs never returns nil, so a call without args reaches the
// dispatcher as zero arguments.
func (r InvokeRequest) ResolveArgs() []string {
	if r.Args == nil {
		return []string{}
	}
	return r.Args
}
