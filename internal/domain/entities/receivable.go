package entities

import "time"

// ReceivableStatus is derived from paid amount vs amount. paid is terminal:
// a future balance on the same vehicle gets a new receivable, never a
// reopened one.

type ReceivableStatus string

const (
	ReceivableStatusPending ReceivableStatus = "pending"
	ReceivableStatusPartial ReceivableStatus = "partial"
	ReceivableStatusPaid    ReceivableStatus = "paid"
)

// PaymentRecord is one append-only entry in a receivable's payment history.
type PaymentRecord struct {
	Amount int64     `json:"amount"`
	Date   time.Time `json:"date"`
	Method string    `json:"method"`
}

// Receivable is a ledger entry for money a client owes the shop.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (vehicle_id-index): vehicle_id
//
// Invariant: at most one open (pending/partial) receivable per vehicle. The
// debt materializer enforces it by looking up the open record before creating
// a new one and by only ever updating in place while the record stays open.
type Receivable struct {
	ID             string           `json:"id"`
	VehicleID      string           `json:"vehicle_id"`
	Amount         int64            `json:"amount"`
	PaidAmount     int64            `json:"paid_amount"`
	Status         ReceivableStatus `json:"status"`
	PaymentHistory []PaymentRecord  `json:"payment_history"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// DeriveReceivableStatus maps (paid, amount) to the receivable status.
func DeriveReceivableStatus(paid, amount int64) ReceivableStatus {
	switch {
	case amount > 0 && paid >= amount:
		return ReceivableStatusPaid
	case paid > 0:
		return ReceivableStatusPartial
	default:
		return ReceivableStatusPending
	}
}

// Open reports whether the receivable can still absorb balance changes.
func (r Receivable) Open() bool {
	return r.Status == ReceivableStatusPending || r.Status == ReceivableStatusPartial
}
