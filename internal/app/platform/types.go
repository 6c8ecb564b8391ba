package platform

import "time"

// Pagination is the summary the platform returns beside every list.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// UserRef is the short user shape embedded in reviews, comments and messages.
type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// User is a platform account as listed in the user directory.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	Verified  bool      `json:"verified"`
	IsBanned  bool      `json:"isBanned"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserPage struct {
	Users      []User     `json:"users"`
	Pagination Pagination `json:"pagination"`
}

// UserReview and UserComment are the user's own content on the detail page.
type UserReview struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
	IsAnonymous bool      `json:"isAnonymous"`
}

type UserComment struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
	ReviewID    string    `json:"reviewId"`
	IsAnonymous bool      `json:"isAnonymous"`
}

// UserDetail is GET /api/admin/users/{id}.
type UserDetail struct {
	User
	Reviews  []UserReview  `json:"reviews"`
	Comments []UserComment `json:"comments"`
}

// UserUpdate is the PATCH body for /api/admin/users/{id}. Nil fields are
// left out so the profile page can change name and email only.
type UserUpdate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	IsAdmin  *bool  `json:"isAdmin,omitempty"`
	Verified *bool  `json:"verified,omitempty"`
}

type Review struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Tags        []string  `json:"tags"`
	Location    string    `json:"location"`
	Star        int       `json:"star"`
	UserName    string    `json:"userName,omitempty"`
	UserAvatar  string    `json:"userAvatar,omitempty"`
	IsAnonymous bool      `json:"isAnonymous"`
	CreatedAt   time.Time `json:"createdAt"`
	User        *UserRef  `json:"user,omitempty"`
}

type ReviewPage struct {
	Reviews    []Review   `json:"reviews"`
	Pagination Pagination `json:"pagination"`
}

type ReviewComment struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	IsAnonymous bool      `json:"isAnonymous"`
	CreatedAt   time.Time `json:"createdAt"`
	User        *UserRef  `json:"user,omitempty"`
}

// ReviewDetail is GET /api/admin/reviews/{id}.
type ReviewDetail struct {
	Review
	Comments []ReviewComment `json:"comments"`
}

type ReviewRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type Comment struct {
	ID          string     `json:"id"`
	Content     string     `json:"content"`
	IsAnonymous bool       `json:"isAnonymous"`
	CreatedAt   time.Time  `json:"createdAt"`
	Review      *ReviewRef `json:"review,omitempty"`
	User        *UserRef   `json:"user,omitempty"`
}

type CommentPage struct {
	Comments   []Comment  `json:"comments"`
	Pagination Pagination `json:"pagination"`
}

// ReportedReview is the review snapshot attached to a report.
type ReportedReview struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	UserName    string `json:"userName,omitempty"`
	UserAvatar  string `json:"userAvatar,omitempty"`
	IsAnonymous bool   `json:"isAnonymous"`
}

// Report is a user's flag on a review.
type Report struct {
	ID             string          `json:"id"`
	ReviewID       string          `json:"reviewId"`
	ReporterUserID string          `json:"reporterUserId"`
	Reason         string          `json:"reason"`
	OtherReason    string          `json:"otherReason,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	Review         *ReportedReview `json:"review,omitempty"`
	Reporter       *UserRef        `json:"reporter,omitempty"`
}

type ReportPage struct {
	Reports    []Report   `json:"reports"`
	Pagination Pagination `json:"pagination"`
}

// SupportMessage is a contact-form submission. User is set when the sender
// was signed in.
type SupportMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	User      *UserRef  `json:"user,omitempty"`
}

type SupportPage struct {
	SupportMessages []SupportMessage `json:"supportMessages"`
	Pagination      Pagination       `json:"pagination"`
}

// Notification audiences accepted by /api/admin/notifications/send.
const (
	AudienceAll         = "all"
	AudienceVerified    = "verified"
	AudienceAdmins      = "admins"
	AudienceSingleEmail = "singleEmail"
	AudienceByTag       = "byTag"
)

// Notification is the body of POST /api/admin/notifications/send.
type Notification struct {
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	Audience string `json:"audience"`
	Email    string `json:"email,omitempty"`
	Tag      string `json:"tag,omitempty"`
}

type MonthlyCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// DashboardMetrics is GET /api/admin/dashboard.
type DashboardMetrics struct {
	TotalUsers           int64          `json:"totalUsers"`
	TotalReviews         int64          `json:"totalReviews"`
	FlaggedReviews       int64          `json:"flaggedReviews"`
	NewSignupsLast30Days int64          `json:"newSignupsLast30Days"`
	MonthlySignups       []MonthlyCount `json:"monthlySignups"`
	DAU                  int64          `json:"dau"`
	WAU                  int64          `json:"wau"`
	MAU                  int64          `json:"mau"`
}

type EngagementSummary struct {
	TotalReviews         int64   `json:"totalReviews"`
	TotalComments        int64   `json:"totalComments"`
	TotalVotes           int64   `json:"totalVotes"`
	AvgCommentsPerReview float64 `json:"avgCommentsPerReview"`
	AvgVotesPerReview    float64 `json:"avgVotesPerReview"`
}

type EngagedReview struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	CreatedAt       time.Time `json:"createdAt"`
	CommentsCount   int64     `json:"commentsCount"`
	VotesCount      int64     `json:"votesCount"`
	EngagementScore float64   `json:"engagementScore"`
}

type EngagementTrend struct {
	Date            string `json:"date"`
	Reviews         int64  `json:"reviews"`
	Comments        int64  `json:"comments"`
	Votes           int64  `json:"votes"`
	TotalEngagement int64  `json:"totalEngagement"`
}

// EngagementData is GET /api/admin/analytics/engagement.
type EngagementData struct {
	Period            string            `json:"period"`
	Summary           EngagementSummary `json:"summary"`
	TopEngagedReviews []EngagedReview   `json:"topEngagedReviews"`
	EngagementTrends  []EngagementTrend `json:"engagementTrends"`
}

type TagSummary struct {
	TotalReviews     int64   `json:"totalReviews"`
	ReviewsWithTags  int64   `json:"reviewsWithTags"`
	UniqueTags       int64   `json:"uniqueTags"`
	AvgTagsPerReview float64 `json:"avgTagsPerReview"`
}

type TagStat struct {
	Tag             string  `json:"tag"`
	UsageCount      int64   `json:"usageCount"`
	AvgRating       float64 `json:"avgRating"`
	TotalComments   int64   `json:"totalComments"`
	TotalVotes      int64   `json:"totalVotes"`
	EngagementScore float64 `json:"engagementScore"`
}

// TagData is GET /api/admin/analytics/tags.
type TagData struct {
	Period  string     `json:"period"`
	Summary TagSummary `json:"summary"`
	TopTags []TagStat  `json:"topTags"`
}

type LocationSummary struct {
	TotalReviews        int64   `json:"totalReviews"`
	ReviewsWithLocation int64   `json:"reviewsWithLocation"`
	UniqueLocations     int64   `json:"uniqueLocations"`
	LocationUsageRate   float64 `json:"locationUsageRate"`
}

type LocationStat struct {
	Location        string  `json:"location"`
	ReviewCount     int64   `json:"reviewCount"`
	AvgRating       float64 `json:"avgRating"`
	TotalComments   int64   `json:"totalComments"`
	TotalVotes      int64   `json:"totalVotes"`
	EngagementScore float64 `json:"engagementScore"`
}

// LocationData is GET /api/admin/analytics/locations.
type LocationData struct {
	Period       string          `json:"period"`
	Summary      LocationSummary `json:"summary"`
	TopLocations []LocationStat  `json:"topLocations"`
}

type ActivityCounts struct {
	DAU        int64 `json:"dau"`
	WAU        int64 `json:"wau"`
	MAU        int64 `json:"mau"`
	TotalUsers int64 `json:"totalUsers"`
}

type ActivityTrend struct {
	Date       string `json:"date"`
	DAU        int64  `json:"dau"`
	WAU        int64  `json:"wau"`
	MAU        int64  `json:"mau"`
	NewSignups int64  `json:"newSignups"`
}

// UserActivityData is GET /api/admin/analytics/user-activity.
type UserActivityData struct {
	Period  string          `json:"period"`
	Current ActivityCounts  `json:"current"`
	Trends  []ActivityTrend `json:"trends"`
}

// SessionUser is the signed-in identity reported by /api/auth/session.
type SessionUser struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Image   string `json:"image,omitempty"`
	IsAdmin bool   `json:"isAdmin"`
}

// Session is GET /api/auth/session. User is nil when nobody is signed in.
type Session struct {
	User    *SessionUser `json:"user,omitempty"`
	Expires string       `json:"expires,omitempty"`
}
