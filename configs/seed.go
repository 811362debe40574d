package configs

import (
	"log"

	"github.com/shopspring/decimal"

	"github.com/Makanak1/Restaurant-management-system/entity"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// SeedData loads a starter menu, floor plan and stock room. Skipped when the
// menu already has rows, so it is safe to leave SEED=true across restarts.
func SeedData() error {
	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	log.Println("seeding database...")

	menuItems := []entity.MenuItem{
		{Name: "Bruschetta", Category: entity.CategoryAppetizer, Price: dec("8.99"), Description: "Toasted bread with tomatoes, garlic, and basil", Available: true},
		{Name: "Mozzarella Sticks", Category: entity.CategoryAppetizer, Price: dec("7.99"), Description: "Deep-fried mozzarella with marinara sauce", Available: true},
		{Name: "Caesar Salad", Category: entity.CategoryAppetizer, Price: dec("9.99"), Description: "Romaine lettuce with Caesar dressing and croutons", Available: true},
		{Name: "Chicken Wings", Category: entity.CategoryAppetizer, Price: dec("11.99"), Description: "Buffalo or BBQ style wings", Available: true},
		{Name: "Grilled Salmon", Category: entity.CategoryMain, Price: dec("24.99"), Description: "Fresh Atlantic salmon with vegetables", Available: true},
		{Name: "Ribeye Steak", Category: entity.CategoryMain, Price: dec("32.99"), Description: "12oz ribeye with mashed potatoes", Available: true},
		{Name: "Chicken Parmesan", Category: entity.CategoryMain, Price: dec("18.99"), Description: "Breaded chicken with marinara and mozzarella", Available: true},
		{Name: "Spaghetti Carbonara", Category: entity.CategoryMain, Price: dec("16.99"), Description: "Classic pasta with bacon and cream sauce", Available: true},
		{Name: "Margherita Pizza", Category: entity.CategoryMain, Price: dec("14.99"), Description: "Fresh mozzarella, tomatoes, and basil", Available: true},
		{Name: "Beef Burger", Category: entity.CategoryMain, Price: dec("13.99"), Description: "Angus beef burger with fries", Available: true},
		{Name: "Tiramisu", Category: entity.CategoryDessert, Price: dec("7.99"), Description: "Classic Italian dessert with coffee and mascarpone", Available: true},
		{Name: "Chocolate Lava Cake", Category: entity.CategoryDessert, Price: dec("8.99"), Description: "Warm chocolate cake with vanilla ice cream", Available: true},
		{Name: "Cheesecake", Category: entity.CategoryDessert, Price: dec("6.99"), Description: "New York style cheesecake", Available: true},
		{Name: "Panna Cotta", Category: entity.CategoryDessert, Price: dec("6.99"), Description: "Italian custard with berry compote", Available: true},
		{Name: "Coca Cola", Category: entity.CategoryBeverage, Price: dec("2.99"), Description: "Regular or Diet", Available: true},
		{Name: "Fresh Lemonade", Category: entity.CategoryBeverage, Price: dec("3.99"), Description: "Freshly squeezed lemonade", Available: true},
		{Name: "Iced Tea", Category: entity.CategoryBeverage, Price: dec("2.99"), Description: "Sweet or Unsweet", Available: true},
		{Name: "Cappuccino", Category: entity.CategoryBeverage, Price: dec("4.99"), Description: "Espresso with steamed milk", Available: true},
		{Name: "Red Wine", Category: entity.CategoryBeverage, Price: dec("8.99"), Description: "House red wine", Available: true},
		{Name: "White Wine", Category: entity.CategoryBeverage, Price: dec("8.99"), Description: "House white wine", Available: true},
	}
	if err := db.Create(&menuItems).Error; err != nil {
		return err
	}

	tables := []entity.Table{
		{TableNumber: 1, Capacity: 2, IsAvailable: true},
		{TableNumber: 2, Capacity: 2, IsAvailable: true},
		{TableNumber: 3, Capacity: 4, IsAvailable: true},
		{TableNumber: 4, Capacity: 4, IsAvailable: true},
		{TableNumber: 5, Capacity: 4, IsAvailable: true},
		{TableNumber: 6, Capacity: 6, IsAvailable: true},
		{TableNumber: 7, Capacity: 6, IsAvailable: true},
		{TableNumber: 8, Capacity: 8, IsAvailable: true},
		{TableNumber: 9, Capacity: 2, IsAvailable: true},
		{TableNumber: 10, Capacity: 4, IsAvailable: true},
	}
	if err := db.Create(&tables).Error; err != nil {
		return err
	}

	inventory := []entity.Inventory{
		{ItemName: "Salmon Fillets", Quantity: 50, Unit: "pieces", ReorderLevel: 15, CostPerUnit: dec("12.00")},
		{ItemName: "Ribeye Steaks", Quantity: 30, Unit: "pieces", ReorderLevel: 10, CostPerUnit: dec("18.00")},
		{ItemName: "Chicken Breasts", Quantity: 60, Unit: "pieces", ReorderLevel: 20, CostPerUnit: dec("6.00")},
		{ItemName: "Pasta", Quantity: 100, Unit: "lbs", ReorderLevel: 25, CostPerUnit: dec("2.50")},
		{ItemName: "Tomatoes", Quantity: 80, Unit: "lbs", ReorderLevel: 20, CostPerUnit: dec("1.50")},
		{ItemName: "Mozzarella Cheese", Quantity: 40, Unit: "lbs", ReorderLevel: 15, CostPerUnit: dec("4.00")},
		{ItemName: "Lettuce", Quantity: 30, Unit: "heads", ReorderLevel: 10, CostPerUnit: dec("1.00")},
		{ItemName: "Eggs", Quantity: 120, Unit: "pieces", ReorderLevel: 30, CostPerUnit: dec("0.25")},
		{ItemName: "Flour", Quantity: 150, Unit: "lbs", ReorderLevel: 40, CostPerUnit: dec("0.50")},
		{ItemName: "Olive Oil", Quantity: 20, Unit: "bottles", ReorderLevel: 5, CostPerUnit: dec("8.00")},
	}
	if err := db.Create(&inventory).Error; err != nil {
		return err
	}

	log.Printf("seeded %d menu items, %d tables, %d inventory items",
		len(menuItems), len(tables), len(inventory))
	return nil
}
