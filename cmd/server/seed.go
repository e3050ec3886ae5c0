package main

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"tableside/internal/domain"
)

func strptr(s string) *string { return &s }

var seedMenuItems = []domain.MenuItem{
	{
		Name:        "Classic Burger",
		Description: "Juicy beef patty with lettuce, tomato, and special sauce",
		Price:       decimal.RequireFromString("12.99"),
		Category:    "Mains",
		Image:       strptr("/delicious-burger-with-cheese.jpg"),
	},
	{
		Name:        "Margherita Pizza",
		Description: "Fresh mozzarella, tomato sauce, and basil",
		Price:       decimal.RequireFromString("14.99"),
		Category:    "Mains",
		Image:       strptr("/margherita-pizza.png"),
	},
	{
		Name:        "Caesar Salad",
		Description: "Crisp romaine, parmesan, croutons, and Caesar dressing",
		Price:       decimal.RequireFromString("9.99"),
		Category:    "Salads",
		Image:       strptr("/fresh-caesar-salad.png"),
	},
	{
		Name:        "Grilled Salmon",
		Description: "Atlantic salmon with seasonal vegetables and lemon butter",
		Price:       decimal.RequireFromString("18.99"),
		Category:    "Mains",
		Image:       strptr("/grilled-salmon-fillet.jpg"),
	},
	{
		Name:        "Pasta Carbonara",
		Description: "Creamy pasta with bacon, egg, and parmesan",
		Price:       decimal.RequireFromString("13.99"),
		Category:    "Mains",
		Image:       strptr("/creamy-pasta-carbonara.png"),
	},
	{
		Name:        "Chicken Wings",
		Description: "Crispy wings with your choice of sauce",
		Price:       decimal.RequireFromString("10.99"),
		Category:    "Appetizers",
		Image:       strptr("/chicken-wings.jpg"),
	},
	{
		Name:        "Chocolate Lava Cake",
		Description: "Warm chocolate cake with molten center and vanilla ice cream",
		Price:       decimal.RequireFromString("7.99"),
		Category:    "Desserts",
		Image:       strptr("/chocolate-lava-cake.png"),
	},
	{
		Name:        "Iced Latte",
		Description: "Smooth espresso with cold milk over ice",
		Price:       decimal.RequireFromString("4.99"),
		Category:    "Beverages",
		Image:       strptr("/iced-latte-coffee.jpg"),
	},
}

// seedMenu wipes order history and loads the starter menu.
func seedMenu(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&domain.Order{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&domain.MenuItem{}).Error; err != nil {
			return err
		}
		items := make([]domain.MenuItem, len(seedMenuItems))
		copy(items, seedMenuItems)
		return tx.Create(&items).Error
	})
}
