package model

import "nomad/shared/model"

const (
	TableName  = "comments"
	EntityName = "comment"

	FieldID            = "id"
	FieldTripRequestID = "trip_request_id"
	FieldUserID        = "user_id"
	FieldComment       = "comment"
)

type Comment struct {
	ID            string `db:"id"`
	TripRequestID string `db:"trip_request_id"`
	UserID        string `db:"user_id"`
	Comment       string `db:"comment"`
	model.Metadata
}

// CommentThread is a comment with the commenter's name and profile image.
type CommentThread struct {
	Comment
	FirstName string  `db:"first_name" table:"users"`
	LastName  string  `db:"last_name"  table:"users"`
	ImageURL  *string `db:"image_url"  table:"user_profiles"`
}

func (CommentThread) GetJoinQuery() string {
	return "JOIN users ON users.id = comments.user_id " +
		"LEFT JOIN user_profiles ON user_profiles.user_id = comments.user_id"
}
