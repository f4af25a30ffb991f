package request_models

type InterestRequest struct {
	MemberID uint `json:"member_id"`
	SkillID  uint `json:"skill_id"`
}
