package entity

import "time"

// MedicalRecord documents a single patient visit. Records are append/update
// only; there is no delete path.
type MedicalRecord struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID uint      `gorm:"not null;index" json:"patient_id"`
	DoctorID  uint      `gorm:"not null;index" json:"doctor_id"`
	VisitDate time.Time `gorm:"type:date;not null" json:"visit_date"`
	Diagnosis string    `gorm:"type:text;not null" json:"diagnosis"`
	Treatment string    `gorm:"type:text;not null" json:"treatment"`
	Notes     string    `gorm:"type:text;not null" json:"notes"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}
