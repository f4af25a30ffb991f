package db_models

type Admin struct {
	AdminID   uint   `gorm:"column:admin_id;primaryKey;autoIncrement:false" json:"admin_id"`
	FirstName string `gorm:"column:first_name" json:"first_name"`
	LastName  string `gorm:"column:last_name" json:"last_name"`
	Email     string `gorm:"column:email" json:"email"`
}

func (Admin) TableName() string { return "admin" }
