package dto

import (
	"nomad/internal/domains/comment/model"
	"nomad/shared/constant"
	gModel "nomad/shared/model"
	"nomad/shared/timezone"
	"strings"

	"github.com/google/uuid"
)

type CreateCommentRequest struct {
	Comment string `json:"comment" validate:"required,max=1000"`
}

func (r CreateCommentRequest) ToModel(tripRequestID, userID string) model.Comment {
	return model.Comment{
		ID:            uuid.NewString(),
		TripRequestID: tripRequestID,
		UserID:        userID,
		Comment:       strings.TrimSpace(r.Comment),
		Metadata:      gModel.NewMetadata(userID, timezone.Now()),
	}
}

type CreateCommentResponse struct {
	ID      string `json:"id"`
	Comment string `json:"comment"`
}

type Commenter struct {
	ID        string  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	ImageURL  *string `json:"image_url"`
}

type CommentResponse struct {
	ID            string    `json:"id"`
	TripRequestID string    `json:"trip_request_id"`
	Comment       string    `json:"comment"`
	UpdatedAt     string    `json:"updated_at"`
	User          Commenter `json:"user"`
}

func (r *CommentResponse) FromModel(model model.CommentThread) {
	r.ID = model.ID
	r.TripRequestID = model.TripRequestID
	r.Comment = model.Comment.Comment
	r.UpdatedAt = timezone.Format(model.ModifiedAt, constant.DateFormat)
	r.User = Commenter{
		ID:        model.UserID,
		FirstName: model.FirstName,
		LastName:  model.LastName,
		ImageURL:  model.ImageURL,
	}
}

type GetCommentsResponse struct {
	Comments []CommentResponse `json:"comments"`
}

func (r *GetCommentsResponse) FromModels(models []model.CommentThread) {
	r.Comments = make([]CommentResponse, len(models))
	for i, mod := range models {
		r.Comments[i].FromModel(mod)
	}
}
