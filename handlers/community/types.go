package community

// Constants for error messages
const (
	ErrInvalidInput     = "Invalid input"
	ErrPostNotFound     = "Post not found"
	ErrForbidden        = "You cannot modify another user's post"
	ErrPostCreateFailed = "Failed to create post"
	ErrPostFetchFailed  = "Failed to fetch posts"
	ErrPostUpdateFailed = "Failed to update post"
	ErrPostDeleteFailed = "Failed to delete post"
	ErrReplyFailed      = "Failed to create reply"
	ErrLikeFailed       = "Failed to update like"
)

// CreatePostRequest model for new reviews
type CreatePostRequest struct {
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

// ReplyRequest model for replies to a post
type ReplyRequest struct {
	PostID  uint   `json:"postId" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// PatchPostRequest covers both like toggling and content edits. IsLike set
// means a like/dislike toggle; otherwise Content and Rating are required.
type PatchPostRequest struct {
	PostID  uint   `json:"postId" binding:"required"`
	IsLike  *bool  `json:"isLike"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

// DeletePostRequest model for post deletion
type DeletePostRequest struct {
	PostID uint `json:"postId" binding:"required"`
}
