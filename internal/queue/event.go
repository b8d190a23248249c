// Package queue defines message payloads exchanged over the message broker.
package queue

// Loan event actions.
const (
	ActionBorrowed = "borrowed"
	ActionReturned = "returned"
	ActionRenewed  = "renewed"
)

// LoanEvent is published whenever a loan changes state.  It carries
// enough information for downstream consumers to log or feed analytics
// without querying the primary store.
type LoanEvent struct {
	Action       string `json:"action"` // borrowed | returned | renewed
	RecordID     string `json:"record_id"`
	UserID       string `json:"user_id"`
	BookID       string `json:"book_id"`
	BookTitle    string `json:"book_title,omitempty"`
	DueDate      string `json:"due_date,omitempty"`
	RenewalCount int    `json:"renewal_count"`
	OccurredAt   string `json:"occurred_at"`
}
