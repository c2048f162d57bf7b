package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type RestaurantLocation struct {
	ID                 uint            `json:"id" gorm:"primaryKey"`
	Address            string          `json:"address" gorm:"not null"`
	EmployeesCount     int             `json:"employees_count"`
	Budget             decimal.Decimal `json:"budget" gorm:"type:decimal(14,2)"`
	StartConstruction  *time.Time      `json:"start_construction"`
	FinishConstruction *time.Time      `json:"finish_construction"`
	Timestamps
}

func (RestaurantLocation) TableName() string { return "restaurant_locations" }
