package model

import "time"

type Employee struct {
	ID uint `json:"id" gorm:"primaryKey"`
	// UserID is the identity provider subject the employee signs in with.
	UserID       *string    `json:"user_id" gorm:"size:64;uniqueIndex"`
	FullName     string     `json:"full_name"`
	Age          int        `json:"age"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	IsFeatured   bool       `json:"is_featured"`
	RoleID       *uint      `json:"role_id"`
	LocationID   *uint      `json:"location_id"`
	FiredAt      *time.Time `json:"fired_at,omitempty"`
	Timestamps

	Role     *Role               `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	Location *RestaurantLocation `json:"location,omitempty" gorm:"foreignKey:LocationID"`
}

func (Employee) TableName() string { return "employees" }
