package models

type RejectionReason string

const (
	RejectionInvalidRequest  RejectionReason = "INVALID_REQUEST"
	RejectionInvalidDuration RejectionReason = "INVALID_DURATION"
	RejectionFutureEventTime RejectionReason = "FUTURE_EVENT_TIME"
)

type Rejection struct {
	EventID string          `json:"eventId"`
	Reason  RejectionReason `json:"reason"`
}

// BatchIngestResult classifies every element of a batch. Accepted+Updated+Deduped+Rejected
// always equals the number of submitted elements.
type BatchIngestResult struct {
	Accepted   int          `json:"accepted"`
	Deduped    int          `json:"deduped"`
	Updated    int          `json:"updated"`
	Rejected   int          `json:"rejected"`
	Rejections []*Rejection `json:"rejections"`
}

func NewEmptyBatchIngestResult() *BatchIngestResult {
	return &BatchIngestResult{Rejections: []*Rejection{}}
}

func (r *BatchIngestResult) Reject(eventID string, reason RejectionReason) {
	r.Rejected++
	r.Rejections = append(r.Rejections, &Rejection{EventID: eventID, Reason: reason})
}

func (r *BatchIngestResult) Total() int {
	return r.Accepted + r.Deduped + r.Updated + r.Rejected
}
