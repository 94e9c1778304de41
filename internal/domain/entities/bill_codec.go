package entities

import (
	"bytes"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// Stored field names. The canonical encoding emits them in this (sorted) order.
const (
	FieldDomain          = "Domain"
	FieldID              = "ID"
	FieldPaid            = "Paid"
	FieldTransactionAmnt = "TransactionAmnt"
	FieldWebsite         = "Website"
)

var ErrMalformedRecord = errors.New("malformed bill record")

// MalformedRecordError describes why a stored value could not be read as a Bill.
type MalformedRecordError struct {
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrMalformedRecord.Error(), e.Reason)
	}
	return fmt.Sprintf("%s: field %s: %s", ErrMalformedRecord.Error(), e.Field, e.Reason)
}

func (e *MalformedRecordError) Unwrap() error { return ErrMalformedRecord }

// canonicalJSON sorts object keys recursively and never escapes HTML, so the
// output depends only on the logical content.
var canonicalJSON = jsoniter.Config{
	SortMapKeys:            true,
	EscapeHTML:             false,
	ValidateJsonRawMessage: true,
}.Froze()

// EncodeBill returns the canonical byte form of b.
func EncodeBill(b Bill) ([]byte, error) {
	return canonicalJSON.Marshal(map[string]interface{}{
		FieldDomain:          b.Domain,
		FieldID:              b.ID,
		FieldPaid:            b.Paid,
		FieldTransactionAmnt: b.TransactionAmnt,
		FieldWebsite:         b.Website,
	})
}

// EncodeBills returns the canonical JSON array of bills. A nil slice encodes as [].
func EncodeBills(bills []Bill) ([]byte, error) {
	items := make([]map[string]interface{}, 0, len(bills))
	for _, b := range bills {
		items = append(items, map[string]interface{}{
			FieldDomain:          b.Domain,
			FieldID:              b.ID,
			FieldPaid:            b.Paid,
			FieldTransactionAmnt: b.TransactionAmnt,
			FieldWebsite:         b.Website,
		})
	}
	return canonicalJSON.Marshal(items)
}

// DecodeBill parses a stored value. Every field must be present with its JSON
// type: Paid must be a JSON boolean, TransactionAmnt may be a string or a
// number (kept as its literal text). Unknown keys are ignored.
func DecodeBill(raw []byte) (Bill, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Bill{}, &MalformedRecordError{Reason: "empty value"}
	}
	if raw[0] != '{' {
		return Bill{}, &MalformedRecordError{Reason: "not a JSON object"}
	}

	var fields map[string]jsoniter.RawMessage
	if err := canonicalJSON.Unmarshal(raw, &fields); err != nil {
		return Bill{}, &MalformedRecordError{Reason: err.Error()}
	}

	var (
		b   Bill
		err error
	)
	if b.ID, err = stringField(fields, FieldID); err != nil {
		return Bill{}, err
	}
	if b.Website, err = stringField(fields, FieldWebsite); err != nil {
		return Bill{}, err
	}
	if b.Domain, err = stringField(fields, FieldDomain); err != nil {
		return Bill{}, err
	}
	if b.TransactionAmnt, err = amountField(fields, FieldTransactionAmnt); err != nil {
		return Bill{}, err
	}
	if b.Paid, err = boolField(fields, FieldPaid); err != nil {
		return Bill{}, err
	}
	return b, nil
}

// MarkPaid returns raw with Paid set to true. Every other key keeps its
// stored JSON text, so amounts stay numeric when they were and unknown keys
// survive. raw must decode as a bill.
func MarkPaid(raw []byte) ([]byte, error) {
	if _, err := DecodeBill(raw); err != nil {
		return nil, err
	}
	var fields map[string]jsoniter.RawMessage
	if err := canonicalJSON.Unmarshal(bytes.TrimSpace(raw), &fields); err != nil {
		return nil, &MalformedRecordError{Reason: err.Error()}
	}
	fields[FieldPaid] = jsoniter.RawMessage("true")
	return canonicalJSON.Marshal(fields)
}

func lookup(fields map[string]jsoniter.RawMessage, name string) ([]byte, error) {
	v, ok := fields[name]
	if !ok {
		return nil, &MalformedRecordError{Field: name, Reason: "missing"}
	}
	v = bytes.TrimSpace(v)
	if len(v) == 0 {
		return nil, &MalformedRecordError{Field: name, Reason: "missing"}
	}
	return v, nil
}

func stringField(fields map[string]jsoniter.RawMessage, name string) (string, error) {
	v, err := lookup(fields, name)
	if err != nil {
		return "", err
	}
	if v[0] != '"' {
		return "", &MalformedRecordError{Field: name, Reason: "expected string"}
	}
	var s string
	if err := canonicalJSON.Unmarshal(v, &s); err != nil {
		return "", &MalformedRecordError{Field: name, Reason: err.Error()}
	}
	return s, nil
}

func amountField(fields map[string]jsoniter.RawMessage, name string) (string, error) {
	v, err := lookup(fields, name)
	if err != nil {
		return "", err
	}
	if v[0] == '"' {
		return stringField(fields, name)
	}
	if v[0] == '-' || (v[0] >= '0' && v[0] <= '9') {
		var n jsoniter.Number
		if err := canonicalJSON.Unmarshal(v, &n); err != nil {
			return "", &MalformedRecordError{Field: name, Reason: err.Error()}
		}
		return string(v), nil
	}
	return "", &MalformedRecordError{Field: name, Reason: "expected string or number"}
}

func boolField(fields map[string]jsoniter.RawMessage, name string) (bool, error) {
	v, err := lookup(fields, name)
	if err != nil {
		return false, err
	}
	switch string(v) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, &MalformedRecordError{Field: name, Reason: "expected boolean"}
	}
}
