package domain

import (
	"errors"
)

var (
	MessageSuccessAddFoodItem       = "food item added successfully"
	MessageSuccessUpdateFoodItem    = "food item updated successfully"
	MessageSuccessDeleteFoodItem    = "food item deleted successfully"
	MessageSuccessGetFoodItems      = "food items retrieved successfully"
	MessageSuccessGetDashboardStats = "dashboard statistics retrieved successfully"

	MessageFailedAddFoodItem       = "failed to add food item"
	MessageFailedUpdateFoodItem    = "failed to update food item"
	MessageFailedDeleteFoodItem    = "failed to delete food item"
	MessageFailedGetFoodItems      = "failed to retrieve food items"
	MessageFailedGetDashboardStats = "failed to retrieve dashboard statistics"

	ErrFoodItemNotFound = errors.New("food item not found")
)

type (
	AddFoodItemRequest struct {
		Name       string `json:"name" validate:"required"`
		Quantity   string `json:"quantity" validate:"required"`
		ExpiryDate string `json:"expiryDate" validate:"required,expirydate"`
		Category   string `json:"category"`
	}

	UpdateQuantityRequest struct {
		Quantity string `json:"quantity"`
	}

	FoodItemFilter struct {
		Query  string
		Window string
	}

	FoodItemResponse struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Quantity   string `json:"quantity"`
		ExpiryDate string `json:"expiryDate"`
		Category   string `json:"category"`
		AddedDate  string `json:"addedDate"`
		DaysLeft   int    `json:"daysLeft"`
		Severity   string `json:"severity"`
		StatusText string `json:"statusText"`
		Tone       string `json:"tone"`
		Depleted   bool   `json:"depleted"`
	}

	CategoryStat struct {
		Category   string `json:"category"`
		Count      int    `json:"count"`
		Percentage int    `json:"percentage"`
		Color      string `json:"color"`
	}

	UrgencyStat struct {
		Bucket     string `json:"bucket"`
		Count      int    `json:"count"`
		Percentage int    `json:"percentage"`
	}

	DashboardStatsResponse struct {
		TotalItems    int            `json:"total_items"`
		DepletedItems int            `json:"depleted_items"`
		ByCategory    []CategoryStat `json:"by_category"`
		ByUrgency     []UrgencyStat  `json:"by_urgency"`
	}
)
