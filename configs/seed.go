package configs

import (
	"log"

	"github.com/icedmoch/doorsmashorpass/entity"
	"golang.org/x/crypto/bcrypt"
)

func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedCatalog loads a handful of dining-hall items so a fresh install has a
// browsable menu. Items without a date stay on every day's menu.
func SeedCatalog() error {
	db := DB()

	var count int64
	db.Model(&entity.FoodItem{}).Count(&count)
	if count > 0 {
		return nil
	}

	items := []entity.FoodItem{
		{Name: "Grilled Chicken Breast", Calories: 220, Protein: 40, TotalCarb: 0, TotalFat: 6, Sodium: 380, ServingSize: "6 oz", Location: "North Commons", MealType: "Lunch"},
		{Name: "Garden Salad", Calories: 90, Protein: 3, TotalCarb: 12, TotalFat: 4, Sodium: 140, DietaryFiber: 4, Sugars: 5, ServingSize: "1 bowl", Location: "North Commons", MealType: "Lunch"},
		{Name: "Scrambled Eggs", Calories: 180, Protein: 12, TotalCarb: 2, TotalFat: 13, Sodium: 320, ServingSize: "2 eggs", Location: "South Dining", MealType: "Breakfast"},
		{Name: "Oatmeal with Berries", Calories: 250, Protein: 8, TotalCarb: 45, TotalFat: 5, Sodium: 95, DietaryFiber: 6, Sugars: 12, ServingSize: "1 cup", Location: "South Dining", MealType: "Breakfast"},
		{Name: "Spaghetti Marinara", Calories: 430, Protein: 14, TotalCarb: 78, TotalFat: 7, Sodium: 620, DietaryFiber: 5, Sugars: 9, ServingSize: "1 plate", Location: "North Commons", MealType: "Dinner"},
		{Name: "Cheese Pizza Slice", Calories: 310, Protein: 13, TotalCarb: 36, TotalFat: 12, Sodium: 680, ServingSize: "1 slice", Location: "Student Union", MealType: "Dinner"},
	}
	return db.Create(&items).Error
}
