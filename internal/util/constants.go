package util

// Display contexts a suggestion fetch can be scoped to.
const (
	LocationDashboard    = "dashboard"
	LocationSchoolDetail = "school_detail"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)
