package response

import (
	"time"

	"oficina_prime/internal/domain/entities"
)

type PaymentRecordResponse struct {
	Amount int64     `json:"amount"`
	Date   time.Time `json:"date"`
	Method string    `json:"method"`
}

type ReceivableResponse struct {
	ReceivableID   string                  `json:"receivable_id"`
	ID             string                  `json:"id"`
	VehicleID      string                  `json:"vehicle_id"`
	Amount         int64                   `json:"amount"`
	PaidAmount     int64                   `json:"paid_amount"`
	Status         string                  `json:"status"`
	PaymentHistory []PaymentRecordResponse `json:"payment_history"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

func FromReceivable(r entities.Receivable) ReceivableResponse {
	history := make([]PaymentRecordResponse, len(r.PaymentHistory))
	for i, p := range r.PaymentHistory {
		history[i] = PaymentRecordResponse{Amount: p.Amount, Date: p.Date, Method: p.Method}
	}
	return ReceivableResponse{
		ReceivableID:   r.ID,
		ID:             r.ID,
		VehicleID:      r.VehicleID,
		Amount:         r.Amount,
		PaidAmount:     r.PaidAmount,
		Status:         string(r.Status),
		PaymentHistory: history,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
