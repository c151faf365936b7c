package requests

// ScheduleRequest carries the raw form input. Values are kept as text so
// that parsing failures can be reported the same way for every adapter.
type ScheduleRequest struct {
	Processes    string `json:"processes" form:"processes"`
	ArrivalTimes string `json:"arrival_times" form:"arrival_times"`
	BurstTimes   string `json:"burst_times" form:"burst_times"`
	Algorithm    string `json:"algorithm" form:"algorithm"`
	TimeQuantum  *int   `json:"time_quantum,omitempty" form:"time_quantum"`
}
