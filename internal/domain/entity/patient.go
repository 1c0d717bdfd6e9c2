package entity

import "time"

// Patient is a standalone clinical record. It is not a User satellite; the
// front end links the two only by matching email.
type Patient struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName        string    `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName         string    `gorm:"type:varchar(255);not null" json:"last_name"`
	DateOfBirth      time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Gender           string    `gorm:"type:varchar(10);not null" json:"gender"`
	Address          string    `gorm:"type:text;not null" json:"address"`
	Phone            string    `gorm:"type:varchar(30);not null" json:"phone"`
	Email            string    `gorm:"type:varchar(255);not null;index" json:"email"`
	EmergencyContact string    `gorm:"type:varchar(255);not null" json:"emergency_contact"`
	MedicalHistory   string    `gorm:"type:text;not null" json:"medical_history"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender values accepted on patient records
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)
