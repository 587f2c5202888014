package models

// Dashboard aggregates everything the home screen needs for one user
type Dashboard struct {
	User                User              `json:"user"`
	Events              []Event           `json:"events"`
	Subscription        *Subscription     `json:"subscription,omitempty"`
	RecentVideos        []VideoSubmission `json:"recentVideos"`
	UnreadNotifications int               `json:"unreadNotifications"`
}

// Analytics scopes
const (
	AnalyticsScopeUser   = "user"
	AnalyticsScopeGlobal = "global"
)

// Analytics summarises platform activity for one user or for everyone
type Analytics struct {
	Scope               string  `json:"scope"`
	UserID              string  `json:"userId,omitempty"`
	TotalUsers          int     `json:"totalUsers,omitempty"`
	TotalEvents         int     `json:"totalEvents,omitempty"`
	TotalVideos         int     `json:"totalVideos"`
	ApprovedVideos      int     `json:"approvedVideos"`
	PendingVideos       int     `json:"pendingVideos"`
	RejectedVideos      int     `json:"rejectedVideos"`
	TotalViews          int     `json:"totalViews"`
	TotalLikes          int     `json:"totalLikes"`
	QuizzesTaken        int     `json:"quizzesTaken"`
	QuizzesPassed       int     `json:"quizzesPassed"`
	AverageQuizScore    float64 `json:"averageQuizScore"`
	ActiveSubscriptions int     `json:"activeSubscriptions"`
}

// Search result types
const (
	SearchEvents = "events"
	SearchUsers  = "users"
	SearchVideos = "videos"
)

// SearchQuery is a free-text query over the requested result types
type SearchQuery struct {
	Query string   `json:"query" query:"q"`
	Types []string `json:"types" query:"types"`
}

// SearchResult holds matches grouped by type
type SearchResult struct {
	Query  string            `json:"query"`
	Events []Event           `json:"events"`
	Users  []User            `json:"users"`
	Videos []VideoSubmission `json:"videos"`
	Total  int               `json:"total"`
}
