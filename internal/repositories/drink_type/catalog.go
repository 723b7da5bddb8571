package drink_type

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/cirrosis/internal/models"
	"github.com/shopspring/decimal"
)

type catalogEntry struct {
	code     string
	label    string
	category models.DrinkCategory
	volume   string
	price    string
}

var defaultCatalog = []catalogEntry{
	{"CORTAITA", "Cortaita", models.DrinkCategoryBeer, "0.25", "1.65"},
	{"CANA", "Caña", models.DrinkCategoryBeer, "0.25", "1.50"},
	{"JARRITA", "Jarrita", models.DrinkCategoryBeer, "0.25", "2.00"},
	{"BOTELLIN", "Botellín", models.DrinkCategoryBeer, "0.20", "1.25"},
	{"TERCIO", "Tercio", models.DrinkCategoryBeer, "0.33", "2.25"},
	{"LATA33", "Lata 33", models.DrinkCategoryBeer, "0.33", "0.60"},
	{"JARRA", "Jarra", models.DrinkCategoryBeer, "0.40", "3.00"},
	{"TANQUE", "Tanque", models.DrinkCategoryBeer, "0.50", "3.50"},
	{"LATA50", "Lata 50", models.DrinkCategoryBeer, "0.50", "1.00"},
	{"LITRO", "Litro", models.DrinkCategoryBeer, "1.00", "2.00"},
	{"CUBATA", "Cubata", models.DrinkCategoryOther, "", "6.50"},
	{"PIEDRA", "Piedra", models.DrinkCategoryOther, "", "6.00"},
	{"CHUPITO", "Chupito", models.DrinkCategoryOther, "", "2.00"},
}

// IDForCode returns the catalog ID used for a seeded drink code
func IDForCode(code string) string {
	return strings.ToLower(code)
}

// DefaultCatalog returns the drinks the group started with
func DefaultCatalog() []*models.DrinkType {
	drinks := make([]*models.DrinkType, 0, len(defaultCatalog))
	for _, entry := range defaultCatalog {
		drink := &models.DrinkType{
			ID:        IDForCode(entry.code),
			Code:      entry.code,
			Label:     entry.label,
			Category:  entry.category,
			UnitPrice: decimal.RequireFromString(entry.price),
			Active:    true,
		}
		if entry.volume != "" {
			drink.UnitVolumeLiters = decimal.NewNullDecimal(decimal.RequireFromString(entry.volume))
		}
		drinks = append(drinks, drink)
	}
	return drinks
}

// SeedCatalog saves every default drink whose code is not in the repository
// yet and returns how many were added. Existing entries are left untouched.
func SeedCatalog(ctx context.Context, repo Repository) (int, error) {
	added := 0
	for _, drink := range DefaultCatalog() {
		_, err := repo.GetDrinkType(ctx, &GetDrinkTypeInput{DrinkTypeID: drink.ID})
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrDrinkTypeNotFound) {
			return added, fmt.Errorf("failed to check drink type %s: %w", drink.Code, err)
		}

		if err := repo.SaveDrinkType(ctx, &SaveDrinkTypeInput{DrinkType: drink}); err != nil {
			return added, fmt.Errorf("failed to seed drink type %s: %w", drink.Code, err)
		}
		added++
	}
	return added, nil
}
