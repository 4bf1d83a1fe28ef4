package dto

// AdvisorCount is one bucket of the advisor grouping. A null advisor is its
// own bucket with a null key.
type AdvisorCount struct {
	MainAdvisor *string `json:"main_advisor"`
	Count       int     `json:"count"`
}

// StatusCount is one bucket of the status grouping, with the same null rule.
type StatusCount struct {
	Status *string `json:"status"`
	Count  int     `json:"count"`
}

// Statistics is the aggregate report over the student table. AvgAge is null
// when no student carries a non-null age.
type Statistics struct {
	TotalStudents int            `json:"totalStudents"`
	AvgAge        *float64       `json:"avgAge"`
	Advisors      []AdvisorCount `json:"advisors"`
	Statuses      []StatusCount  `json:"statuses"`
}
