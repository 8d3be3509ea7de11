package logs

import (
	"bitewrap/internal/domain"
)

type AddEntryRequest struct {
	Date        string `json:"date" binding:"required" validate:"required,datetime=2006-01-02"`
	MealType    string `json:"meal_type" binding:"required"`
	Name        string `json:"name" binding:"required" validate:"required,max=200"`
	Location    string `json:"location" binding:"required" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Image       string `json:"image" validate:"omitempty,url"`
}

type DeleteEntryRequest struct {
	Date     string `json:"date" binding:"required" validate:"required,datetime=2006-01-02"`
	MealType string `json:"meal_type" binding:"required"`
}

type EntryResponse struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	MealType    string `json:"meal_type"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	HomeCooked  bool   `json:"home_cooked"`
}

func toEntryResponse(e *domain.LogEntry) EntryResponse {
	resp := EntryResponse{
		ID:       e.ID,
		Date:     e.Date,
		MealType: string(e.MealType),
	}
	if e.Meal != nil {
		resp.Name = e.Meal.Name
		resp.Location = e.Meal.Location
		resp.Description = e.Meal.Description
		resp.Image = e.Meal.Image
		resp.HomeCooked = e.Meal.IsHomeCooked()
	}
	return resp
}

func toEntryListResponse(entries []domain.LogEntry) []EntryResponse {
	items := make([]EntryResponse, len(entries))
	for i := range entries {
		items[i] = toEntryResponse(&entries[i])
	}
	return items
}
