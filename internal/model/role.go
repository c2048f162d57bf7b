package model

import "github.com/shopspring/decimal"

type Role struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Description string          `json:"description"`
	ShiftPay    decimal.Decimal `json:"shift_pay" gorm:"type:decimal(10,2)"`
	Timestamps
}

func (Role) TableName() string { return "roles" }
