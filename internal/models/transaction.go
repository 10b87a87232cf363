package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// Violation codes, listed in the order the checks run.
const (
	CodeMissingMerchantID = "MISSING_MERCHANT_ID"
	CodeMissingAmount     = "MISSING_AMOUNT"
	CodeMissingCurrency   = "MISSING_CURRENCY"
	CodeMissingCardType   = "MISSING_CARD_TYPE"
	CodeInvalidAmount     = "INVALID_AMOUNT"
	CodeInvalidCurrency   = "INVALID_CURRENCY"
	CodeSLABreach         = "SLA_BREACH"
)

// Transaction is a single payment transaction record. Optional fields are
// pointers: nil means the field was absent at ingest, which is a different
// condition from a zero value.
type Transaction struct {
	TransactionID  string     `gorm:"primarykey" json:"transaction_id"`
	Timestamp      time.Time  `gorm:"index" json:"timestamp"`
	MerchantID     *string    `json:"merchant_id,omitempty"`
	Amount         *float64   `json:"amount,omitempty"`
	Currency       *string    `json:"currency,omitempty"`
	CardType       *string    `json:"card_type,omitempty"`
	ResponseCode   *string    `json:"response_code,omitempty"`
	ErrorCode      *string    `json:"error_code,omitempty"`
	ProcessingTime float64    `json:"processing_time"`
	Region         *string    `json:"region,omitempty"`
	IsValid        bool       `json:"is_valid"`
	ErrorCodes     StringList `gorm:"type:jsonb" json:"error_codes"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Failed reports whether the transaction carries an error code.
func (t *Transaction) Failed() bool {
	return t.ErrorCode != nil
}

// Date returns the transaction's UTC calendar date in YYYY-MM-DD form.
func (t *Transaction) Date() string {
	return t.Timestamp.UTC().Format("2006-01-02")
}

// Timestamp layouts accepted on ingest.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// TransactionInput decodes an inbound transaction leniently. A field that
// is absent, null, or carries a JSON type that cannot be coerced decodes
// as nil instead of failing the whole payload, so the validator can report
// it as missing rather than the request erroring out.
type TransactionInput struct {
	TransactionID  string
	Timestamp      *time.Time
	MerchantID     *string
	Amount         *float64
	Currency       *string
	CardType       *string
	ResponseCode   *string
	ErrorCode      *string
	ProcessingTime float64
	Region         *string
}

func (in *TransactionInput) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if id := coerceString(raw["transaction_id"]); id != nil {
		in.TransactionID = *id
	}
	in.Timestamp = coerceTime(raw["timestamp"])
	in.MerchantID = coerceString(raw["merchant_id"])
	in.Amount = coerceFloat(raw["amount"])
	in.Currency = coerceString(raw["currency"])
	in.CardType = coerceString(raw["card_type"])
	in.ResponseCode = coerceString(raw["response_code"])
	in.ErrorCode = coerceString(raw["error_code"])
	in.Region = coerceString(raw["region"])
	if pt := coerceFloat(raw["processing_time"]); pt != nil {
		in.ProcessingTime = *pt
	}
	return nil
}

// Transaction converts the decoded input into a store record. An absent or
// unparsable timestamp falls back to receipt time.
func (in *TransactionInput) Transaction() *Transaction {
	ts := time.Now().UTC()
	if in.Timestamp != nil {
		ts = *in.Timestamp
	}
	return &Transaction{
		TransactionID:  in.TransactionID,
		Timestamp:      ts,
		MerchantID:     in.MerchantID,
		Amount:         in.Amount,
		Currency:       in.Currency,
		CardType:       in.CardType,
		ResponseCode:   in.ResponseCode,
		ErrorCode:      in.ErrorCode,
		ProcessingTime: in.ProcessingTime,
		Region:         in.Region,
	}
}

func coerceString(raw json.RawMessage) *string {
	if len(raw) == 0 {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}
	// Numeric identifiers keep their decimal text form.
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		s = n.String()
		return &s
	}
	return nil
}

func coerceFloat(raw json.RawMessage) *float64 {
	if len(raw) == 0 {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if parsed, err := strconv.ParseFloat(s, 64); err == nil {
			return &parsed
		}
	}
	return nil
}

func coerceTime(raw json.RawMessage) *time.Time {
	s := coerceString(raw)
	if s == nil {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, *s); err == nil {
			return &t
		}
	}
	return nil
}
