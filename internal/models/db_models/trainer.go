package db_models

type Trainer struct {
	TrainerID uint   `gorm:"column:trainer_id;primaryKey;autoIncrement:false" json:"trainer_id"`
	FirstName string `gorm:"column:first_name" json:"first_name"`
	LastName  string `gorm:"column:last_name" json:"last_name"`
	Email     string `gorm:"column:email" json:"email"`
}

func (Trainer) TableName() string { return "trainer" }
