package db_models

// Interest links a member to a skill. It has no lifecycle of its own.
type Interest struct {
	MemberID uint `gorm:"column:member_id;primaryKey;autoIncrement:false" json:"member_id"`
	SkillID  uint `gorm:"column:skill_id;primaryKey;autoIncrement:false" json:"skill_id"`
}

func (Interest) TableName() string { return "interest" }
