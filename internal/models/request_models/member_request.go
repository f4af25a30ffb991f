package request_models

import "gymguru/internal/models/db_models"

// MemberProfile carries the member columns a client may set directly.
type MemberProfile struct {
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	Email          string         `json:"email"`
	DateOfBirth    db_models.Date `json:"date_of_birth"`
	Height         float64        `json:"height"`
	Weight         float64        `json:"weight"`
	SubscriptionID uint           `json:"subscription_id"`
	CardNumber     string         `json:"card_number"`
}

type RegisterMemberRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	MemberProfile
}

type UpdateMemberRequest struct {
	MemberID uint   `json:"member_id"`
	Username string `json:"username"`
	Password string `json:"password"`
	MemberProfile
}
