package recipes

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"bitewrap/internal/domain"
	"bitewrap/internal/repository"
)

type Service struct {
	recipes *repository.RecipeRepository
}

func NewService(recipes *repository.RecipeRepository) *Service {
	return &Service{recipes: recipes}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateRecipeRequest) (*domain.Recipe, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrValidation
	}

	recipe := &domain.Recipe{
		UserID: userID,
		Name:   name,
		Time:   strings.TrimSpace(req.Time),
		Image:  req.Image,
	}

	ingredients := make([]repository.IngredientInput, 0, len(req.Ingredients))
	for _, in := range req.Ingredients {
		ingredients = append(ingredients, repository.IngredientInput{
			Name:   in.Name,
			Amount: in.Amount,
			Unit:   in.Unit,
		})
	}

	if err := s.recipes.Create(ctx, recipe, ingredients); err != nil {
		return nil, err
	}
	return s.recipes.GetByID(ctx, userID, recipe.ID)
}

func (s *Service) List(ctx context.Context, userID int64) ([]domain.Recipe, error) {
	return s.recipes.ListByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, id int64) (*domain.Recipe, error) {
	recipe, err := s.recipes.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return recipe, nil
}

// Delete removes the recipe explicitly. Deleting an absent recipe
// reports ErrNotFound so the client can drop stale state.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	deleted, err := s.recipes.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}
