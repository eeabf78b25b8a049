package chat

import (
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/validator"
)

type CreateGroupRequest struct {
	Name    string   `json:"name"`
	Topic   string   `json:"topic"`
	Members []string `json:"members"`
}

func (r *CreateGroupRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateGroupRequest struct {
	Name    string   `json:"name"`
	Topic   string   `json:"topic"`
	Members []string `json:"members"`
}

func (r *UpdateGroupRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SendMessageRequest struct {
	Text string `json:"text"`
}

func (r *SendMessageRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Text) {
		errs = append(errs, validator.ValidationError{
			Field:   "text",
			Message: "text is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UnreadResponse struct {
	HasUnread bool `json:"has_unread"`
}
