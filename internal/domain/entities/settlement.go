package entities

import "encoding/json"

// Settlement is the outcome of charging a bill through a payment provider.
//
// ProviderResponse keeps the provider body as returned, for traceability.
type Settlement struct {
	Bill              Bill            `json:"bill"`
	ProviderPaymentID string          `json:"provider_payment_id"`
	ProviderStatus    string          `json:"provider_status"`
	ProviderResponse  json.RawMessage `json:"provider_response,omitempty"`
}
