package response

import (
	"time"

	"oficina_prime/internal/domain/entities"
	"oficina_prime/internal/usecase"
)

type VehicleResponse struct {
	VehicleID        string     `json:"vehicle_id"`
	ID               string     `json:"id"`
	Plate            string     `json:"plate"`
	CustomerName     string     `json:"customer_name"`
	Status           string     `json:"status"`
	TotalEstimate    int64      `json:"total_estimate"`
	PaidAmount       int64      `json:"paid_amount"`
	PaymentStatus    string     `json:"payment_status"`
	ReadyForDelivery bool       `json:"ready_for_delivery"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// VehicleRecordResponse is the aggregate view: the record plus its tasks,
// service lines and any open receivable.
type VehicleRecordResponse struct {
	VehicleResponse
	Tasks        []TaskResponse        `json:"tasks"`
	ServiceLines []ServiceLineResponse `json:"service_lines"`
	Receivable   *ReceivableResponse   `json:"receivable,omitempty"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		VehicleID:        v.ID,
		ID:               v.ID,
		Plate:            v.Plate,
		CustomerName:     v.CustomerName,
		Status:           string(v.Status),
		TotalEstimate:    v.TotalEstimate,
		PaidAmount:       v.PaidAmount,
		PaymentStatus:    string(v.PaymentStatus()),
		ReadyForDelivery: v.ReadyForDelivery,
		CompletedAt:      v.CompletedAt,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func FromVehicleRecord(rec usecase.VehicleRecord) VehicleRecordResponse {
	out := VehicleRecordResponse{
		VehicleResponse: FromVehicle(rec.Vehicle),
		Tasks:           FromTasks(rec.Tasks),
		ServiceLines:    FromServiceLines(rec.ServiceLines),
	}
	if rec.Receivable != nil {
		r := FromReceivable(*rec.Receivable)
		out.Receivable = &r
	}
	return out
}
