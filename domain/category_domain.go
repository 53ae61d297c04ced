package domain

import "errors"

var (
	MessageSuccessGetCategories   = "success get categories"
	MessageSuccessAddCategory     = "category added successfully"
	MessageSuccessDeleteCategory  = "category deleted successfully"
	MessageSuccessGetPreferences  = "success get preferences"
	MessageSuccessSavePreferences = "preferences saved successfully"

	MessageFailedAddCategory     = "failed to add category"
	MessageFailedDeleteCategory  = "failed to delete category"
	MessageFailedSavePreferences = "failed to save preferences"

	ErrCategoryExists   = errors.New("category already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrLastCategory     = errors.New("at least one category must remain")
)

type (
	AddCategoryRequest struct {
		Name string `json:"name" validate:"required"`
	}

	CategoryResponse struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}

	DeleteCategoryResponse struct {
		Categories []string `json:"categories"`
		Active     string   `json:"active"`
		// OrphanedItems counts items still labelled with the removed category.
		OrphanedItems int `json:"orphaned_items"`
	}

	Preferences struct {
		DarkMode bool `json:"darkMode"`
	}

	DarkModeRequest struct {
		DarkMode *bool `json:"darkMode" validate:"required"`
	}
)
