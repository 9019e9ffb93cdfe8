package database

import (
	"time"

	"gorm.io/gorm"

	"github.com/south-indian-kitchen/backend/models"
)

// Seed loads the mock dataset: the static user registry, the ten menu
// dishes and three historical orders. Seeding is idempotent so a shared
// in-memory database can be seeded more than once.
func Seed(db *gorm.DB) error {
	if err := seedUsers(db); err != nil {
		return err
	}
	if err := seedDishes(db); err != nil {
		return err
	}
	return seedOrders(db)
}

func seedUsers(db *gorm.DB) error {
	users := []models.User{
		{ID: "user1", Name: "Admin User", Email: "admin@southindian.com", Role: models.RoleAdmin},
		{ID: "user2", Name: "Customer User", Email: "customer@example.com", Role: models.RoleCustomer},
	}
	for _, u := range users {
		if err := db.Where(models.User{ID: u.ID}).FirstOrCreate(&u).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedDishes(db *gorm.DB) error {
	dishes := []models.Dish{
		{ID: "1", Name: "Masala Dosa", Description: "Crispy rice crepe filled with spiced potato filling", Price: 120, Image: "/images/masala-dosa.jpg", Category: "Dosa", Available: true},
		{ID: "2", Name: "Plain Dosa", Description: "Thin and crispy rice crepe served with sambar and chutney", Price: 80, Image: "/images/plain-dosa.jpg", Category: "Dosa", Available: true},
		{ID: "3", Name: "Idli Sambar", Description: "Steamed rice cakes served with lentil soup and chutney", Price: 60, Image: "/images/idli-sambar.jpg", Category: "Idli", Available: true},
		{ID: "4", Name: "Medu Vada", Description: "Crispy fried lentil donuts served with sambar and chutney", Price: 70, Image: "/images/medu-vada.jpg", Category: "Vada", Available: true},
		{ID: "5", Name: "Sambar Rice", Description: "Rice mixed with lentil soup and vegetables", Price: 90, Image: "/images/sambar-rice.jpg", Category: "Rice", Available: true},
		{ID: "6", Name: "Curd Rice", Description: "Rice mixed with yogurt and tempered with spices", Price: 80, Image: "/images/curd-rice.jpg", Category: "Rice", Available: true},
		{ID: "7", Name: "Rasam", Description: "Tangy and spicy tamarind soup", Price: 50, Image: "/images/rasam.jpg", Category: "Curry", Available: true},
		{ID: "8", Name: "Payasam", Description: "Sweet milk pudding with vermicelli and nuts", Price: 70, Image: "/images/payasam.jpg", Category: "Dessert", Available: true},
		{ID: "9", Name: "Filter Coffee", Description: "Traditional South Indian coffee with frothy milk", Price: 40, Image: "/images/filter-coffee.jpg", Category: "Beverage", Available: true},
		{ID: "10", Name: "Rava Dosa", Description: "Crispy semolina crepe served with sambar and chutney", Price: 100, Image: "/images/rava-dosa.jpg", Category: "Dosa", Available: true},
	}
	for _, d := range dishes {
		if err := db.Where(models.Dish{ID: d.ID}).FirstOrCreate(&d).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedOrders(db *gorm.DB) error {
	now := time.Now()

	orders := []models.Order{
		{
			ID:            "order1",
			TotalAmount:   320,
			CustomerName:  "Raj Kumar",
			CustomerEmail: "raj@example.com",
			Status:        models.OrderStatusCompleted,
			CreatedAt:     now.Add(-24 * time.Hour),
			UpdatedAt:     now.Add(-23*time.Hour - 30*time.Minute),
			Items: []models.OrderItem{
				{DishID: "1", Name: "Masala Dosa", Description: "Crispy rice crepe filled with spiced potato filling", Price: 120, Image: "/images/masala-dosa.jpg", Category: "Dosa", Quantity: 2},
				{DishID: "9", Name: "Filter Coffee", Description: "Traditional South Indian coffee with frothy milk", Price: 40, Image: "/images/filter-coffee.jpg", Category: "Beverage", Quantity: 2},
			},
		},
		{
			ID:            "order2",
			TotalAmount:   130,
			CustomerName:  "Priya Singh",
			CustomerEmail: "priya@example.com",
			Status:        models.OrderStatusPreparing,
			CreatedAt:     now.Add(-time.Hour),
			UpdatedAt:     now.Add(-50 * time.Minute),
			Items: []models.OrderItem{
				{DishID: "3", Name: "Idli Sambar", Description: "Steamed rice cakes served with lentil soup and chutney", Price: 60, Image: "/images/idli-sambar.jpg", Category: "Idli", Quantity: 1},
				{DishID: "4", Name: "Medu Vada", Description: "Crispy fried lentil donuts served with sambar and chutney", Price: 70, Image: "/images/medu-vada.jpg", Category: "Vada", Quantity: 1},
			},
		},
		{
			ID:            "order3",
			TotalAmount:   160,
			CustomerName:  "Anand Verma",
			CustomerEmail: "anand@example.com",
			Status:        models.OrderStatusPending,
			CreatedAt:     now,
			UpdatedAt:     now,
			Items: []models.OrderItem{
				{DishID: "5", Name: "Sambar Rice", Description: "Rice mixed with lentil soup and vegetables", Price: 90, Image: "/images/sambar-rice.jpg", Category: "Rice", Quantity: 1},
				{DishID: "8", Name: "Payasam", Description: "Sweet milk pudding with vermicelli and nuts", Price: 70, Image: "/images/payasam.jpg", Category: "Dessert", Quantity: 1},
			},
		},
	}

	for _, o := range orders {
		var count int64
		if err := db.Model(&models.Order{}).Where("id = ?", o.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&o).Error; err != nil {
			return err
		}
	}
	return nil
}
