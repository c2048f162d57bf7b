package model

import "github.com/shopspring/decimal"

type Ingredient struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Quantity    decimal.Decimal `json:"quantity" gorm:"type:decimal(12,3)"`
	Timestamps
}

func (Ingredient) TableName() string { return "ingredients" }

type Category struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Description string `json:"description"`
	Timestamps
}

func (Category) TableName() string { return "categories" }

type Dish struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Rating      *float64        `json:"rating"`
	CategoryID  *uint           `json:"category_id"`
	Timestamps

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

func (Dish) TableName() string { return "dishes" }
