package response

import (
	"encoding/json"

	"bill_ledger/internal/domain/entities"
)

type BillResponse struct {
	ID              string `json:"id"`
	Website         string `json:"website"`
	Domain          string `json:"domain"`
	TransactionAmnt string `json:"transaction_amnt"`
	Paid            bool   `json:"paid"`
}

type BillExistsResponse struct {
	ID     string `json:"id"`
	Exists bool   `json:"exists"`
}

type SettlementResponse struct {
	Bill              BillResponse           `json:"bill"`
	ProviderPaymentID string                 `json:"provider_payment_id"`
	ProviderStatus    string                 `json:"provider_status"`
	ProviderResponse  map[string]interface{} `json:"provider_response,omitempty"`
}

func FromBill(b entities.Bill) BillResponse {
	return BillResponse{
		ID:              b.ID,
		Website:         b.Website,
		Domain:          b.Domain,
		TransactionAmnt: b.TransactionAmnt,
		Paid:            b.Paid,
	}
}

func FromBills(bills []entities.Bill) []BillResponse {
	out := make([]BillResponse, 0, len(bills))
	for _, b := range bills {
		out = append(out, FromBill(b))
	}
	return out
}

// FromSettlement decodes the provider response when it is a JSON object and
// omits it otherwise.
func FromSettlement(s entities.Settlement) SettlementResponse {
	resp := SettlementResponse{
		Bill:              FromBill(s.Bill),
		ProviderPaymentID: s.ProviderPaymentID,
		ProviderStatus:    s.ProviderStatus,
	}
	if len(s.ProviderResponse) > 0 {
		var m map[string]interface{}
		if err := json.Unmarshal(s.ProviderResponse, &m); err == nil {
			resp.ProviderResponse = m
		}
	}
	return resp
}
