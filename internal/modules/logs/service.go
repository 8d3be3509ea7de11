package logs

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"bitewrap/internal/domain"
	"bitewrap/internal/repository"
)

// RecipeFinder resolves a logged home meal to a recipe by name.
type RecipeFinder interface {
	FindByName(ctx context.Context, userID int64, name string) (*domain.Recipe, error)
}

// Notifier pushes log changes to the user's connected devices.
type Notifier interface {
	NotifyLogCreated(userID int64, date string, mealType domain.MealType)
	NotifyLogDeleted(userID int64, date string, mealType domain.MealType)
}

type Service struct {
	logs    *repository.LogRepository
	recipes RecipeFinder
	notifs  Notifier
}

func NewService(logs *repository.LogRepository, recipes RecipeFinder, notifs Notifier) *Service {
	return &Service{logs: logs, recipes: recipes, notifs: notifs}
}

// AddEntry logs a meal into the (date, meal type) slot. The slot
// uniqueness is enforced by the database; a violation comes back as
// ErrSlotTaken. Analytics counters are bumped in the same transaction:
// a restaurant visit counts the venue, a home-cooked meal matching one
// of the user's recipes counts the recipe and its ingredients.
func (s *Service) AddEntry(ctx context.Context, userID int64, req AddEntryRequest) (*domain.LogEntry, error) {
	mealType := domain.MealType(strings.ToLower(strings.TrimSpace(req.MealType)))
	if !mealType.Valid() {
		return nil, ErrValidation
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, ErrValidation
	}

	meal := &domain.Meal{
		UserID:      userID,
		Name:        strings.TrimSpace(req.Name),
		Location:    strings.TrimSpace(req.Location),
		Description: req.Description,
		Image:       req.Image,
	}
	if meal.Name == "" || meal.Location == "" {
		return nil, ErrValidation
	}

	entry := &domain.LogEntry{
		UserID:   userID,
		Date:     req.Date,
		MealType: mealType,
	}

	bumps, err := s.counterBumps(ctx, userID, meal)
	if err != nil {
		return nil, err
	}

	if err := s.logs.AddEntry(ctx, meal, entry, bumps); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.NotifyLogCreated(userID, entry.Date, entry.MealType)
	}
	return entry, nil
}

// ListByDate returns the day's entries ordered breakfast, lunch,
// dinner regardless of insertion order. An empty day is an empty list.
func (s *Service) ListByDate(ctx context.Context, userID int64, date string) ([]domain.LogEntry, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrValidation
	}

	entries, err := s.logs.ListByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].MealType.SlotRank() < entries[j].MealType.SlotRank()
	})
	return entries, nil
}

// DeleteEntry is idempotent: deleting an empty slot is a no-op.
func (s *Service) DeleteEntry(ctx context.Context, userID int64, date string, mealType domain.MealType) error {
	if !mealType.Valid() {
		return ErrValidation
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ErrValidation
	}

	deleted, err := s.logs.DeleteBySlot(ctx, userID, date, mealType)
	if err != nil {
		return err
	}
	if deleted > 0 && s.notifs != nil {
		s.notifs.NotifyLogDeleted(userID, date, mealType)
	}
	return nil
}

func (s *Service) ListRecentRestaurantVisits(ctx context.Context, userID int64, limit int) ([]domain.LogEntry, error) {
	return s.logs.ListRestaurantVisits(ctx, userID, limit)
}

func (s *Service) counterBumps(ctx context.Context, userID int64, meal *domain.Meal) ([]repository.CounterBump, error) {
	if !meal.IsHomeCooked() {
		return []repository.CounterBump{{
			ItemType: domain.ItemRestaurant,
			ItemName: meal.Location,
			Image:    meal.Image,
		}}, nil
	}

	recipe, err := s.recipes.FindByName(ctx, userID, meal.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Home meal without a matching recipe is not counted.
			return nil, nil
		}
		return nil, err
	}

	bumps := []repository.CounterBump{{
		ItemType: domain.ItemRecipe,
		ItemName: recipe.Name,
		Image:    recipe.Image,
	}}
	for _, ri := range recipe.Ingredients {
		if ri.Ingredient == nil {
			continue
		}
		bumps = append(bumps, repository.CounterBump{
			ItemType: domain.ItemIngredient,
			ItemName: ri.Ingredient.Name,
		})
	}
	return bumps, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// The cgo-free sqlite driver used in local dev reports constraint
	// violations only through the message text.
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
