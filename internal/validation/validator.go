// Package validation applies the per-transaction integrity and SLA rules.
// Violations accumulate as ordered codes returned to the caller; they are
// domain data, never errors, and nothing short-circuits.
package validation

import (
	"unicode/utf8"

	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/models"
)

// Result is a single transaction's verdict.
type Result struct {
	Valid      bool     `json:"is_valid"`
	ErrorCodes []string `json:"error_codes"`
}

// Validator accumulates violation codes in check order.
type Validator struct {
	codes []string
}

// New creates a new validator
func New() *Validator {
	return &Validator{}
}

// AddCode appends a violation code.
func (v *Validator) AddCode(code string) {
	v.codes = append(v.codes, code)
}

// Check appends a code if the condition is false.
func (v *Validator) Check(ok bool, code string) {
	if !ok {
		v.AddCode(code)
	}
}

// Result returns the accumulated verdict.
func (v *Validator) Result() Result {
	return Result{Valid: len(v.codes) == 0, ErrorCodes: v.codes}
}

// Validate runs every integrity and SLA check against tx in fixed order:
// missing-field checks for merchant_id, amount, currency and card_type,
// then amount sign, currency shape, and the processing-time SLA. A check
// that depends on a field's value is skipped when that field is absent;
// the missing-field code already covers it.
func Validate(tx *models.Transaction) Result {
	v := New()

	v.Check(tx.MerchantID != nil, models.CodeMissingMerchantID)
	v.Check(tx.Amount != nil, models.CodeMissingAmount)
	v.Check(tx.Currency != nil, models.CodeMissingCurrency)
	v.Check(tx.CardType != nil, models.CodeMissingCardType)

	if tx.Amount != nil {
		v.Check(*tx.Amount > 0, models.CodeInvalidAmount)
	}
	if tx.Currency != nil {
		// Character count, not byte count: a 3-byte non-ASCII rune is
		// still a single character.
		v.Check(utf8.RuneCountInString(*tx.Currency) == CurrencyCodeLength, models.CodeInvalidCurrency)
	}
	v.Check(tx.ProcessingTime <= ResponseTimeSLASeconds, models.CodeSLABreach)

	return v.Result()
}
