package request

// ServiceLineRequest adds one billable line-item to a vehicle's record.
// Price is integer minor units (centavos).
type ServiceLineRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required"`
}
