package request

// VehicleCheckInRequest opens a new service record for a vehicle.
type VehicleCheckInRequest struct {
	Plate        string `json:"plate" binding:"required"`
	CustomerName string `json:"customer_name"`
}

// ClientPaymentRequest books a payment received from the client against the
// vehicle record. Amount is integer minor units (centavos).
type ClientPaymentRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}
