package entities

// FoodItem is one tracked inventory entry. Dates are kept as the calendar text
// the user entered ("2006-01-02") so the persisted layout stays human-editable.
type FoodItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Quantity   string `json:"quantity"`
	ExpiryDate string `json:"expiryDate"`
	Category   string `json:"category"`
	AddedDate  string `json:"addedDate"`
}

// DefaultFoodCategory is used when an item is added without a category.
const DefaultFoodCategory = "기타"
