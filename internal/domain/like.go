package domain

// Like is a per-(comment, user) reaction. At most one row exists per pair;
// toggling inserts when absent and removes when present.
type Like struct {
	Id        string
	CommentId string
	Owner     string
}
