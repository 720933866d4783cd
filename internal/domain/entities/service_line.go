package entities

import "time"

// ServiceLineStatus is the lifecycle of a single service line-item.

type ServiceLineStatus string

const (
	ServiceLineStatusPending    ServiceLineStatus = "pending"
	ServiceLineStatusInProgress ServiceLineStatus = "in_progress"
	ServiceLineStatusCompleted  ServiceLineStatus = "completed"
)

// ServiceLine is one billable line-item on a vehicle's service record.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (vehicle_id-index): vehicle_id
//
// Price is integer minor units; the vehicle's total estimate is the sum of
// its line prices and is recomputed by the ledger whenever lines change.
type ServiceLine struct {
	ID          string            `json:"id"`
	VehicleID   string            `json:"vehicle_id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Price       int64             `json:"price"`
	Status      ServiceLineStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
