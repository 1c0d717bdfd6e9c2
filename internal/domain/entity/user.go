package entity

import "time"

// UserRole is the account role stored on the users table. Authorization is
// enforced server-side from the role carried in signed token claims, never
// from a client-supplied value.
type UserRole string

const (
	RoleAdmin        UserRole = "admin"
	RoleDoctor       UserRole = "doctor"
	RoleReceptionist UserRole = "receptionist"
	RolePatient      UserRole = "patient"
)

// User represents an account that can authenticate against the API.
type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Role      UserRole  `gorm:"type:varchar(20);not null;index" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleReceptionist, RolePatient:
		return true
	}
	return false
}
