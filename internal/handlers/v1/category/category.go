package category

import (
	"github.com/carson-networks/finance-server/internal/model"
)

// Category is the API response model for a category.
type Category struct {
	ID      string `json:"id" doc:"Category id"`
	Name    string `json:"name" doc:"Category name"`
	Kind    string `json:"kind" enum:"Ingreso,Gasto" doc:"Ingreso (income) or Gasto (expense)"`
	OwnerID string `json:"ownerId" doc:"Owning user id"`
}

// CategoryBody is the request body for creating or replacing a category.
type CategoryBody struct {
	Name string `json:"name" required:"true" doc:"Category name, at most 50 characters"`
	Kind string `json:"kind" required:"true" doc:"Ingreso (income) or Gasto (expense)"`
}

// CategoryOutput wraps a single category.
type CategoryOutput struct {
	Body Category
}

// CategoryIDInput addresses one category.
type CategoryIDInput struct {
	ID string `path:"id" doc:"Category id"`
}

func fromModel(c model.Category) Category {
	return Category{
		ID:      c.ID,
		Name:    c.Name,
		Kind:    string(c.Kind),
		OwnerID: c.OwnerID,
	}
}
