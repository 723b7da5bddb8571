package consumption

import (
	"time"

	"github.com/KirkDiggler/cirrosis/internal/common/dates"
	"github.com/KirkDiggler/cirrosis/internal/models"
	"github.com/shopspring/decimal"
)

var (
	testCana = &models.DrinkType{
		ID:               "cana",
		Code:             "CANA",
		Label:            "Caña",
		Category:         models.DrinkCategoryBeer,
		UnitVolumeLiters: decimal.NewNullDecimal(decimal.RequireFromString("0.25")),
		UnitPrice:        decimal.RequireFromString("1.50"),
		Active:           true,
	}
	testChupito = &models.DrinkType{
		ID:        "chupito",
		Code:      "CHUPITO",
		Label:     "Chupito",
		Category:  models.DrinkCategoryOther,
		UnitPrice: decimal.RequireFromString("2.00"),
		Active:    true,
	}
)

// newTestEvent builds an event the way the consumption service does
func newTestEvent(id, personID string, drink *models.DrinkType, quantity int, consumedAt, createdAt time.Time) *models.ConsumptionEvent {
	event := &models.ConsumptionEvent{
		ID:          id,
		PersonID:    personID,
		DrinkTypeID: drink.ID,
		Quantity:    quantity,
		ConsumedAt:  dates.Day(consumedAt),
		CreatedAt:   createdAt,
		BeerYear:    models.BeerYearFor(consumedAt),
		PriceTotal:  drink.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
	if drink.HasLiters() {
		event.VolumeLitersTotal = decimal.NewNullDecimal(drink.UnitVolumeLiters.Decimal.Mul(decimal.NewFromInt(int64(quantity))))
	}
	return event
}
