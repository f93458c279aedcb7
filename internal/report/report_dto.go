package report

type OnLeaveResponse struct {
	OnLeave int64 `json:"on_leave"`
}

// GenderSlice keeps the original contract's field spelling, including the
// "presentage" misspelling consumers already depend on.
type GenderSlice struct {
	Gender     string  `json:"gender"`
	Percentage float64 `json:"presentage_by_gender"`
}
