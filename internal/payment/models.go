// Package payment validates and dispatches payment requests. Gateway
// integration is stubbed per method; the contract — explicit success/error
// results and a recorded transaction per accepted payment — is stable.
package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Method is a supported payment method.
type Method string

const (
	MethodCard         Method = "card"
	MethodBankTransfer Method = "bank_transfer"
	MethodACH          Method = "ach"
)

// SupportedMethods lists the accepted payment methods.
func SupportedMethods() []Method {
	return []Method{MethodCard, MethodBankTransfer, MethodACH}
}

// Request describes one payment to process.
type Request struct {
	Amount   decimal.Decimal
	Currency string
	Method   Method
}

// Status is the terminal state of a processing attempt.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Result is the explicit outcome of Process: a success variant carrying the
// transaction, or an error variant carrying a message. No exceptions-as-flow.
type Result struct {
	Status        Status          `json:"status"`
	TransactionID string          `json:"transaction_id,omitempty"`
	Timestamp     time.Time       `json:"timestamp"`
	Method        Method          `json:"payment_method,omitempty"`
	Amount        decimal.Decimal `json:"amount,omitempty"`
	Currency      string          `json:"currency,omitempty"`
	Message       string          `json:"error,omitempty"`
}

// Transaction is the record kept for each accepted payment.
type Transaction struct {
	ID        string          `json:"transaction_id"`
	Timestamp time.Time       `json:"timestamp"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Method    Method          `json:"payment_method"`
	Status    string          `json:"status"`
	Processor string          `json:"processor"`
}
