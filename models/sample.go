package models

// Built-in sample dataset. Used to seed an empty database and served as a
// read fallback when the database is unreachable, so the dashboard stays
// usable in demo/offline mode.

func SampleMenus() []Menu {
	return []Menu{
		{ID: 1, Name: "Appetizers", Description: "Start your meal with our delicious appetizers"},
		{ID: 2, Name: "Pasta", Description: "Authentic Italian pasta dishes"},
		{ID: 3, Name: "Pizzas", Description: "Stone-oven pizzas"},
		{ID: 4, Name: "Desserts", Description: "Homemade Italian desserts"},
	}
}

func SampleDishes() []Dish {
	return []Dish{
		{ID: 1, Name: "Bruschetta", Description: "Toasted bread topped with tomatoes, garlic, and basil", Price: 8.95, MenuID: 1},
		{ID: 2, Name: "Spaghetti Carbonara", Description: "Classic Roman pasta with eggs, cheese, pancetta, and black pepper", Price: 16.95, MenuID: 2},
		{ID: 3, Name: "Pizza Margherita", Description: "Tomato, mozzarella, fresh basil", Price: 18.50, MenuID: 3},
		{ID: 4, Name: "Pizza Peperoni", Description: "Tomato, mozzarella, spicy pepperoni", Price: 18.50, MenuID: 3},
		{ID: 5, Name: "Pizza Végétarienne", Description: "Grilled seasonal vegetables", Price: 18.50, MenuID: 3},
		{ID: 6, Name: "Tiramisu", Description: "Mascarpone, espresso, cocoa", Price: 7.50, MenuID: 4},
		{ID: 7, Name: "Panna Cotta", Description: "Vanilla cream with berry coulis", Price: 6.90, MenuID: 4},
		{ID: 8, Name: "Gelato (3 boules)", Description: "Three scoops of artisanal gelato", Price: 8.50, MenuID: 4},
	}
}

func SampleDrinks() []Drink {
	return []Drink{
		{ID: 1, Name: "Chianti", Description: "Classic Tuscan red wine", Price: 9.95, Category: "Wine"},
		{ID: 2, Name: "Espresso", Description: "Strong Italian coffee", Price: 3.95, Category: "Coffee"},
		{ID: 3, Name: "Vin Rouge (75cl)", Description: "House red wine", Price: 24.90, Category: "Wine"},
		{ID: 4, Name: "Eau Minérale", Description: "Still mineral water", Price: 3.50, Category: "Soft"},
		{ID: 5, Name: "Coca-Cola (33cl)", Description: "", Price: 4.20, Category: "Soft"},
		{ID: 6, Name: "Spritz Aperol", Description: "Aperol, prosecco, soda", Price: 8.90, Category: "Cocktail"},
	}
}

func SampleUsers() []User {
	return []User{
		{Name: "Jean Dupont", Email: "jean.dupont@bellaitalia.com", Role: RoleManager, Active: true},
		{Name: "Marie Laurent", Email: "marie.laurent@bellaitalia.com", Role: RoleWaiter, Active: true},
		{Name: "Pierre Martin", Email: "pierre.martin@bellaitalia.com", Role: RoleChef, Active: true},
		{Name: "Sophie Dubois", Email: "sophie.dubois@bellaitalia.com", Role: RoleStaff, Active: false},
	}
}

func SampleOrders() []Order {
	return []Order{
		{
			UID: "6f1c2a34-0d7b-4c59-9e1a-0c1bb1e3d101", OrderNumber: "0045", Type: TypeDineIn, TableNumber: "16",
			Items: []OrderItem{
				{Name: "Margherita Pizza", Quantity: 2, Price: 12.99},
				{Name: "Extra cheese", Quantity: 1, Price: 2.50},
			},
			TotalItems: 7, TotalPrice: 166.99, Status: StatusNew, Notes: "Extra cheese sur la margherita",
		},
		{
			UID: "6f1c2a34-0d7b-4c59-9e1a-0c1bb1e3d102", OrderNumber: "0056", Type: TypeDineIn, TableNumber: "09",
			Items: []OrderItem{
				{Name: "Carbonara", Quantity: 1, Price: 14.99},
				{Name: "Tiramisu", Quantity: 1, Price: 6.99},
			},
			TotalItems: 4, TotalPrice: 52.99, Status: StatusCancelled,
		},
		{
			UID: "6f1c2a34-0d7b-4c59-9e1a-0c1bb1e3d103", OrderNumber: "0049", Type: TypeDineIn, TableNumber: "24",
			Items: []OrderItem{
				{Name: "Veggie Supreme", Quantity: 1, Price: 15.99},
			},
			TotalItems: 2, TotalPrice: 30, Status: StatusOnCook, Notes: "peanuts allergies",
		},
		{
			UID: "6f1c2a34-0d7b-4c59-9e1a-0c1bb1e3d104", OrderNumber: "0945", Type: TypeDineIn, TableNumber: "26",
			Items: []OrderItem{
				{Name: "Veggie Supreme", Quantity: 2, Price: 24.99},
				{Name: "Margherita (16 inch)", Quantity: 1, Price: 29.00},
				{Name: "BBQ Chicken", Quantity: 2, Price: 32.99},
				{Name: "California Pizza", Quantity: 2, Price: 19.99},
			},
			TotalItems: 7, TotalPrice: 102, Status: StatusCompleted,
		},
		{
			UID: "6f1c2a34-0d7b-4c59-9e1a-0c1bb1e3d105", OrderNumber: "0046", Type: TypeTakeaway,
			Items: []OrderItem{
				{Name: "Margherita Pizza", Quantity: 2, Price: 12.99},
				{Name: "Extra cheese", Quantity: 1, Price: 2.50},
			},
			TotalItems: 7, TotalPrice: 166.99, Status: StatusNew, Notes: "Extra cheese sur la margherita",
		},
	}
}
