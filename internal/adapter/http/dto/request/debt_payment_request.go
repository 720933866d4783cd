package request

import "encoding/json"

// DebtPaymentRequest settles (part of) a vehicle's open receivable.
//
// `mp_payload` is forwarded as-is (raw JSON) to the payment gateway when
// present; without it the payment is recorded as an offline charge.
type DebtPaymentRequest struct {
	Amount    int64           `json:"amount" binding:"required"`
	Method    string          `json:"method"`
	MPPayload json.RawMessage `json:"mp_payload"`
}
