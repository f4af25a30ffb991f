package db_models

type Member struct {
	MemberID       uint    `gorm:"column:member_id;primaryKey;autoIncrement:false" json:"member_id"`
	FirstName      string  `gorm:"column:first_name" json:"first_name"`
	LastName       string  `gorm:"column:last_name" json:"last_name"`
	Email          string  `gorm:"column:email" json:"email"`
	DateOfBirth    Date    `gorm:"column:date_of_birth" json:"date_of_birth"`
	Height         float64 `gorm:"column:height" json:"height"`
	Weight         float64 `gorm:"column:weight" json:"weight"`
	NextPayDate    Date    `gorm:"column:next_pay_date" json:"next_pay_date"`
	SubscriptionID uint    `gorm:"column:subscription_id" json:"subscription_id"`
	CardNumber     string  `gorm:"column:card_number" json:"card_number"`
}

func (Member) TableName() string { return "member" }
