package entity

import "time"

// Doctor is a standalone practitioner record, independent of the users table.
type Doctor struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName      string    `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName       string    `gorm:"type:varchar(255);not null" json:"last_name"`
	Specialization string    `gorm:"type:varchar(255);not null;index" json:"specialization"`
	LicenseNumber  string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"license_number"`
	Phone          string    `gorm:"type:varchar(30);not null" json:"phone"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}
