package response

import (
	"time"

	"oficina_prime/internal/domain/entities"
)

type ServiceLineResponse struct {
	LineID      string    `json:"line_id"`
	ID          string    `json:"id"`
	VehicleID   string    `json:"vehicle_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       int64     `json:"price"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromServiceLine(l entities.ServiceLine) ServiceLineResponse {
	return ServiceLineResponse{
		LineID:      l.ID,
		ID:          l.ID,
		VehicleID:   l.VehicleID,
		Name:        l.Name,
		Description: l.Description,
		Price:       l.Price,
		Status:      string(l.Status),
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func FromServiceLines(lines []entities.ServiceLine) []ServiceLineResponse {
	out := make([]ServiceLineResponse, len(lines))
	for i, l := range lines {
		out[i] = FromServiceLine(l)
	}
	return out
}
