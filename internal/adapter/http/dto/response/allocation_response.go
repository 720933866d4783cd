package response

import "oficina_prime/internal/domain/allocation"

// AllocationPreviewResponse is the dry-run result of the commission split.
type AllocationPreviewResponse struct {
	Payment         int64                     `json:"payment"`
	Earnings        []EarningSnapshotResponse `json:"earnings"`
	MasterRemainder int64                     `json:"master_remainder"`
}

func FromAllocationResult(payment int64, res allocation.Result) AllocationPreviewResponse {
	earnings := make([]EarningSnapshotResponse, len(res.Earnings))
	for i, e := range res.Earnings {
		earnings[i] = EarningSnapshotResponse{ParticipantID: e.ParticipantID, Earning: e.Amount}
	}
	return AllocationPreviewResponse{
		Payment:         payment,
		Earnings:        earnings,
		MasterRemainder: res.MasterRemainder,
	}
}
