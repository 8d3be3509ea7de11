package recipes

import "bitewrap/internal/domain"

type IngredientRequest struct {
	Name   string  `json:"name" binding:"required" validate:"required,max=100"`
	Amount float64 `json:"amount" validate:"gte=0"`
	Unit   string  `json:"unit" validate:"max=30"`
}

type CreateRecipeRequest struct {
	Name        string              `json:"name" binding:"required" validate:"required,max=200"`
	Time        string              `json:"time" validate:"max=50"`
	Image       string              `json:"image" validate:"omitempty,url"`
	Ingredients []IngredientRequest `json:"ingredients" validate:"dive"`
}

type IngredientResponse struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit,omitempty"`
}

type RecipeResponse struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	Time        string               `json:"time,omitempty"`
	Image       string               `json:"image,omitempty"`
	Ingredients []IngredientResponse `json:"ingredients"`
}

func toRecipeResponse(r *domain.Recipe) RecipeResponse {
	resp := RecipeResponse{
		ID:          r.ID,
		Name:        r.Name,
		Time:        r.Time,
		Image:       r.Image,
		Ingredients: make([]IngredientResponse, 0, len(r.Ingredients)),
	}
	for _, ri := range r.Ingredients {
		item := IngredientResponse{Amount: ri.Amount, Unit: ri.Unit}
		if ri.Ingredient != nil {
			item.Name = ri.Ingredient.Name
		}
		resp.Ingredients = append(resp.Ingredients, item)
	}
	return resp
}

func toRecipeListResponse(recipes []domain.Recipe) []RecipeResponse {
	items := make([]RecipeResponse, len(recipes))
	for i := range recipes {
		items[i] = toRecipeResponse(&recipes[i])
	}
	return items
}
