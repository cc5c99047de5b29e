package dto

// TaskStats aggregates tasks for the mentor and student dashboards.
type TaskStats struct {
	TotalTasks     int `json:"total_tasks"`
	CompletedTasks int `json:"completed_tasks"`
}

// StudentStats aggregates a mentor's roster.
type StudentStats struct {
	TotalStudents          int     `json:"total_students"`
	StudentsWithPlacements int     `json:"students_with_placements"`
	PlacedPercentage       float64 `json:"placed_percentage"`
}

// MentorDashboard is the mentor's stat widget payload.
type MentorDashboard struct {
	TaskStats    TaskStats    `json:"taskStats"`
	StudentStats StudentStats `json:"studentStats"`
}

// StudentPlacementStats aggregates a student's own applications.
type StudentPlacementStats struct {
	TotalApplications int `json:"total_applications"`
	AcceptedOffers    int `json:"accepted_offers"`
	PendingOffers     int `json:"pending_offers"`
}

// StudentDashboard is the student's stat widget payload.
type StudentDashboard struct {
	TaskStats      TaskStats             `json:"taskStats"`
	PlacementStats StudentPlacementStats `json:"placementStats"`
}

// OfficerPlacementStats is the global placement summary.
type OfficerPlacementStats struct {
	TotalStudents       int     `json:"total_students"`
	PlacedStudents      int     `json:"placed_students"`
	PlacementPercentage float64 `json:"placement_percentage"`
	AvgSalary           float64 `json:"avg_salary"`
}

// DepartmentStat is one bar of the department breakdown chart.
type DepartmentStat struct {
	Department     string `json:"department"`
	TotalStudents  int    `json:"total_students"`
	PlacedStudents int    `json:"placed_students"`
}

// OfficerDashboard is the placement officer's stat widget payload.
type OfficerDashboard struct {
	PlacementStats OfficerPlacementStats `json:"placementStats"`
	DeptStats      []DepartmentStat      `json:"deptStats"`
}
