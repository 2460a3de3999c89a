package dto

type StatsResponse struct {
	Users                UserCounts        `json:"users"`
	ActiveJobs           int64             `json:"activeJobs"`
	Applications         ApplicationCounts `json:"applications"`
	Reviews              int64             `json:"reviews"`
	FlaggedEmployers     int64             `json:"flaggedEmployers"`
	PendingVerifications int64             `json:"pendingVerifications"`
}

type UserCounts struct {
	Students  int64 `json:"students"`
	Employers int64 `json:"employers"`
	Admins    int64 `json:"admins"`
	Total     int64 `json:"total"`
}

type ApplicationCounts struct {
	Pending   int64 `json:"pending"`
	Approved  int64 `json:"approved"`
	Rejected  int64 `json:"rejected"`
	Completed int64 `json:"completed"`
	Total     int64 `json:"total"`
}
