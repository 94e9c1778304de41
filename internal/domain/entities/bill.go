package entities

// Bill is the ledger asset persisted in the world state.
//
// Storage model (world state):
//   - key: ID
//   - value: canonical JSON of the bill (see EncodeBill)
//
// Website is only ever used as an exact-match query filter. Domain and
// TransactionAmnt are opaque metadata supplied by the caller.
//
// Fields are declared in lexicographic order so that a plain struct encoding
// matches the canonical key order as well.
type Bill struct {
	Domain          string `json:"Domain"`
	ID              string `json:"ID"`
	Paid            bool   `json:"Paid"`
	TransactionAmnt string `json:"TransactionAmnt"`
	Website         string `json:"Website"`
}

// NewBill builds an unpaid bill.
func NewBill(id, website, domain, transactionAmnt string) Bill {
	return Bill{
		ID:              id,
		Website:         website,
		Domain:          domain,
		TransactionAmnt: transactionAmnt,
		Paid:            false,
	}
}

// MatchesWebsite reports whether the bill belongs to website and carries the
// wanted payment status.
func (b Bill) MatchesWebsite(website string, wantPaid bool) bool {
	return b.Website == website && b.Paid == wantPaid
}
