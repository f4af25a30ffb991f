package db_models

type Skill struct {
	SkillID uint   `gorm:"column:skill_id;primaryKey" json:"skill_id"`
	Name    string `gorm:"column:name" json:"name"`
}

func (Skill) TableName() string { return "skill" }
