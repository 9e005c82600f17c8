package users

import "time"

// Constants for error messages and cache settings
const (
	ErrUserNotFound        = "User not found"
	ErrAdminOnly           = "Admin access required"
	ErrSuperAdminOnly      = "Only super admins can perform this action"
	ErrSelfRoleChange      = "Super admins cannot change their own role"
	ErrSelfDelete          = "Super admins cannot delete their own account"
	ErrInvalidRole         = "Invalid admin level"
	ErrUserExists          = "Username or email already exists"
	ErrUserCreateFailed    = "Failed to create user"
	ErrFailedToGetUsers    = "Failed to fetch users"
	ErrFailedToGetProgress = "Failed to fetch progress"
	ErrRoleChangeFailed    = "Failed to update role"
	ErrUserDeleteFailed    = "Failed to delete user"

	DashboardCacheKeyPrefix = "user_dashboard:"
	DashboardCacheDuration  = 1 * time.Minute
)

// CreateUserRequest model for admin account creation
type CreateUserRequest struct {
	Username   string `json:"username" binding:"required,min=3,max=50"`
	Email      string `json:"email" binding:"required,email"`
	UniqueInfo string `json:"uniqueInfo" binding:"required"`
	AdminLevel *int   `json:"adminLevel"`
}

// ChangeRoleRequest model for role changes
type ChangeRoleRequest struct {
	AdminLevel *int `json:"adminLevel" binding:"required"`
}

// ProgressResponse wraps the deduplicated in-progress attempt listing
type ProgressResponse struct {
	Attempts interface{} `json:"attempts"`
}

// DashboardCategory is one category's aggregate progress on the dashboard
type DashboardCategory struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Progress  float64 `json:"progress"`
}

// DashboardResponse is the per-user dashboard summary
type DashboardResponse struct {
	TotalPoints    int                 `json:"totalPoints"`
	TotalCompleted int                 `json:"totalCompleted"`
	Categories     []DashboardCategory `json:"categories"`
}

// UserListItem is a user row with rank name for the admin table
type UserListItem struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	AdminLevel  int    `json:"admin_level"`
	TotalPoints int    `json:"total_points"`
	RankName    string `json:"rank_name"`
}
