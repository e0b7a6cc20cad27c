package configs

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"justeat-backend/entity"
)

func SeedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.User{}).Where("role = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(getEnv("ADMIN_PASSWORD", "admin1234")), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:     getEnv("ADMIN_EMAIL", "admin@justeat.local"),
		Password:  string(hashed),
		FirstName: "Platform",
		LastName:  "Admin",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedDemoData populates a couple of restaurants with menus on an empty
// database so the catalog endpoints have something to serve.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("owner1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	owner := entity.User{
		Email:     "owner@justeat.local",
		Password:  string(hashed),
		FirstName: "Demo",
		LastName:  "Owner",
		Role:      "owner",
	}
	if err := db.Create(&owner).Error; err != nil {
		return err
	}

	restaurants := []entity.Restaurant{
		{
			Name: "Pizza Palace", CuisineType: "Italian", City: "Downtown",
			Description: "Wood-fired pizzas and fresh pasta", IsActive: true, OwnerID: owner.ID,
			MenuItems: []entity.MenuItem{
				{Name: "Margherita", Price: 1099, Category: "Pizza", IsAvailable: true},
				{Name: "Pepperoni", Price: 1299, Category: "Pizza", IsAvailable: true, IsSpecial: true},
				{Name: "Tiramisu", Price: 649, Category: "Dessert", IsAvailable: true},
			},
		},
		{
			Name: "Spice Garden", CuisineType: "Indian", City: "Downtown",
			Description: "Classic curries and tandoor grills", IsActive: true, OwnerID: owner.ID,
			MenuItems: []entity.MenuItem{
				{Name: "Butter Chicken", Price: 1399, Category: "Curry", IsAvailable: true, IsDealOfDay: true},
				{Name: "Garlic Naan", Price: 349, Category: "Bread", IsAvailable: true},
			},
		},
	}
	for i := range restaurants {
		if err := db.Create(&restaurants[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
