package models

// Menu is a named section of the restaurant's card (Appetizers, Pasta, ...).
type Menu struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
}

// Dish ("plat") belongs to a menu. Prices are snapshots on the card; orders
// copy them at creation time and never read back.
type Dish struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Description string  `json:"description"`
	Price       float64 `json:"price" gorm:"not null"`
	MenuID      uint    `json:"menuId" gorm:"not null"`
}

// Drink ("boisson") is categorized free-form (Wine, Coffee, Soft, ...).
type Drink struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Description string  `json:"description"`
	Price       float64 `json:"price" gorm:"not null"`
	Category    string  `json:"category"`
}
