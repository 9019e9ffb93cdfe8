package models

import "time"

// OrderItem is a frozen snapshot of one cart line at checkout time. The
// dish fields are copied, not referenced, so later menu edits never change
// what an existing order shows or what it cost.
type OrderItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrderID     string    `gorm:"type:varchar(64);not null;index" json:"order_id"`
	DishID      string    `gorm:"type:varchar(36);not null" json:"dish_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Image       string    `gorm:"type:varchar(255)" json:"image"`
	Category    string    `gorm:"type:varchar(100)" json:"category"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
