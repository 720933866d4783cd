package entities

import "time"

// VehicleStatus represents the overall repair record lifecycle.
//
// completed is reachable only through the completion coordinator once every
// task and service line for the vehicle is resolved; task handlers never set
// it directly. delivered requires the record to be fully paid.

type VehicleStatus string

const (
	VehicleStatusPending    VehicleStatus = "pending"
	VehicleStatusInProgress VehicleStatus = "in_progress"
	VehicleStatusCompleted  VehicleStatus = "completed"
	VehicleStatusDelivered  VehicleStatus = "delivered"
)

// PaymentStatus is derived from paid amount vs total, never stored on its own.

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// DerivePaymentStatus maps (paid, total) to the payment status.
func DerivePaymentStatus(paid, total int64) PaymentStatus {
	switch {
	case total > 0 && paid >= total:
		return PaymentStatusPaid
	case paid > 0:
		return PaymentStatusPartial
	default:
		return PaymentStatusPending
	}
}

// Vehicle is the per-vehicle service record aggregating tasks and service
// lines.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Version is an optimistic-concurrency counter: the completion flip and other
// record-level writes are conditional on the version read, so two concurrent
// approvals on the same vehicle cannot race past each other.
type Vehicle struct {
	ID               string        `json:"id"`
	Plate            string        `json:"plate"`
	CustomerName     string        `json:"customer_name"`
	Status           VehicleStatus `json:"status"`
	TotalEstimate    int64         `json:"total_estimate"`
	PaidAmount       int64         `json:"paid_amount"`
	ReadyForDelivery bool          `json:"ready_for_delivery"`
	Version          int64         `json:"version"`
	CompletedAt      *time.Time    `json:"completed_at,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// PaymentStatus derives the record's payment status from its amounts.
func (v Vehicle) PaymentStatus() PaymentStatus {
	return DerivePaymentStatus(v.PaidAmount, v.TotalEstimate)
}

// Outstanding is the balance still owed by the client.
func (v Vehicle) Outstanding() int64 {
	return v.TotalEstimate - v.PaidAmount
}
