package consumption

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/cirrosis/internal/common/clock"
	"github.com/KirkDiggler/cirrosis/internal/common/dates"
	"github.com/KirkDiggler/cirrosis/internal/common/uuid"
	"github.com/KirkDiggler/cirrosis/internal/models"
	consumptionRepo "github.com/KirkDiggler/cirrosis/internal/repositories/consumption"
	drinkTypeRepo "github.com/KirkDiggler/cirrosis/internal/repositories/drink_type"
	personRepo "github.com/KirkDiggler/cirrosis/internal/repositories/person"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	personRepo      personRepo.Repository
	drinkTypeRepo   drinkTypeRepo.Repository
	consumptionRepo consumptionRepo.Repository
	clock           clock.Clock
	uuidGenerator   uuid.UUID
	log             *zap.Logger
}

// New creates a new consumption service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.PersonRepo == nil {
		return nil, ErrNilPersonRepo
	}
	if cfg.DrinkTypeRepo == nil {
		return nil, ErrNilDrinkTypeRepo
	}
	if cfg.ConsumptionRepo == nil {
		return nil, ErrNilConsumptionRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &service{
		personRepo:      cfg.PersonRepo,
		drinkTypeRepo:   cfg.DrinkTypeRepo,
		consumptionRepo: cfg.ConsumptionRepo,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
		log:             log.Named("consumption"),
	}, nil
}

func (s *service) eligiblePerson(ctx context.Context, personID string) (*models.Person, error) {
	if personID == "" {
		return nil, ErrMissingPersonID
	}

	person, err := s.personRepo.GetPerson(ctx, &personRepo.GetPersonInput{
		PersonID: personID,
	})
	if err != nil {
		if errors.Is(err, personRepo.ErrPersonNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	if !person.IsEligible() {
		return nil, ErrPersonNotEligible
	}

	return person, nil
}

// JoinRoster adds the caller to the roster. A NEW entry under the caller's ID
// is activated; suspended or deleted entries stay out.
func (s *service) JoinRoster(ctx context.Context, input *JoinRosterInput) (*JoinRosterOutput, error) {
	if input == nil || input.PersonID == "" {
		return nil, ErrMissingPersonID
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrMissingName
	}

	person, err := s.personRepo.GetPerson(ctx, &personRepo.GetPersonInput{
		PersonID: input.PersonID,
	})
	switch {
	case errors.Is(err, personRepo.ErrPersonNotFound):
		person = &models.Person{
			ID:        input.PersonID,
			CreatedAt: s.clock.Now(),
		}
	case err != nil:
		return nil, fmt.Errorf("failed to get person: %w", err)
	case person.IsEligible():
		return &JoinRosterOutput{Person: person}, nil
	case person.Deleted || person.Status == models.PersonStatusInactive:
		return nil, ErrPersonNotEligible
	}

	owner, err := s.personRepo.GetPersonByName(ctx, &personRepo.GetPersonByNameInput{
		Name: name,
	})
	if err != nil && !errors.Is(err, personRepo.ErrPersonNotFound) {
		return nil, fmt.Errorf("failed to get person by name: %w", err)
	}
	if owner != nil && owner.ID != person.ID {
		return nil, ErrNameTaken
	}

	person.Name = name
	person.Status = models.PersonStatusActive

	err = s.personRepo.SavePerson(ctx, &personRepo.SavePersonInput{
		Person: person,
	})
	if err != nil {
		if errors.Is(err, personRepo.ErrNameTaken) {
			return nil, ErrNameTaken
		}
		return nil, fmt.Errorf("failed to save person: %w", err)
	}

	s.log.Info("person joined the roster",
		zap.String("person_id", person.ID),
		zap.String("name", person.Name))

	return &JoinRosterOutput{
		Person: person,
		Joined: true,
	}, nil
}

// RecordConsumption logs drinks for a person. Volume and price totals are
// fixed from the catalog at this point and never recomputed.
func (s *service) RecordConsumption(ctx context.Context, input *RecordConsumptionInput) (*RecordConsumptionOutput, error) {
	if input == nil {
		return nil, ErrMissingPersonID
	}
	if input.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	now := s.clock.Now()
	today := clock.Today(s.clock)
	consumedAt := today
	if !input.ConsumedAt.IsZero() {
		consumedAt = dates.Day(input.ConsumedAt)
	}
	if consumedAt.After(today) {
		return nil, ErrFutureDate
	}

	person, err := s.eligiblePerson(ctx, input.PersonID)
	if err != nil {
		return nil, err
	}

	drink, err := s.drinkTypeRepo.GetDrinkType(ctx, &drinkTypeRepo.GetDrinkTypeInput{
		DrinkTypeID: input.DrinkTypeID,
	})
	if err != nil {
		if errors.Is(err, drinkTypeRepo.ErrDrinkTypeNotFound) {
			return nil, ErrDrinkTypeNotFound
		}
		return nil, fmt.Errorf("failed to get drink type: %w", err)
	}
	if !drink.Active {
		return nil, ErrDrinkTypeInactive
	}

	quantity := decimal.NewFromInt(int64(input.Quantity))
	event := &models.ConsumptionEvent{
		ID:          s.uuidGenerator.NewUUID(),
		PersonID:    person.ID,
		DrinkTypeID: drink.ID,
		Quantity:    input.Quantity,
		ConsumedAt:  consumedAt,
		CreatedAt:   now,
		BeerYear:    models.BeerYearFor(consumedAt),
		PriceTotal:  drink.UnitPrice.Mul(quantity),
	}
	if drink.HasLiters() {
		event.VolumeLitersTotal = decimal.NewNullDecimal(drink.UnitVolumeLiters.Decimal.Mul(quantity))
	}

	err = s.consumptionRepo.AddEvent(ctx, &consumptionRepo.AddEventInput{
		Event:     event,
		DrinkType: drink,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record consumption: %w", err)
	}

	s.log.Info("consumption recorded",
		zap.String("event_id", event.ID),
		zap.String("person", person.Name),
		zap.String("drink", drink.Code),
		zap.Int("quantity", event.Quantity),
		zap.String("consumed_at", dates.Key(event.ConsumedAt)))

	return &RecordConsumptionOutput{
		Event:     event,
		DrinkType: drink,
	}, nil
}

// VoidConsumption cancels one of the person's own events
func (s *service) VoidConsumption(ctx context.Context, input *VoidConsumptionInput) (*VoidConsumptionOutput, error) {
	if input == nil || input.PersonID == "" {
		return nil, ErrMissingPersonID
	}
	if input.EventID == "" {
		return nil, ErrMissingEventID
	}

	output, err := s.consumptionRepo.VoidEvent(ctx, &consumptionRepo.VoidEventInput{
		EventID:  input.EventID,
		PersonID: input.PersonID,
		VoidedAt: s.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to void consumption: %w", err)
	}

	s.log.Info("consumption void requested",
		zap.String("event_id", input.EventID),
		zap.String("person_id", input.PersonID),
		zap.Bool("voided", output.Voided))

	return &VoidConsumptionOutput{
		Voided: output.Voided,
	}, nil
}

// ListRecentConsumptions returns a person's latest events
func (s *service) ListRecentConsumptions(ctx context.Context, input *ListRecentConsumptionsInput) (*ListRecentConsumptionsOutput, error) {
	if input == nil || input.PersonID == "" {
		return nil, ErrMissingPersonID
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	output, err := s.consumptionRepo.ListRecentEvents(ctx, &consumptionRepo.ListRecentEventsInput{
		PersonID: input.PersonID,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list recent consumptions: %w", err)
	}

	return &ListRecentConsumptionsOutput{
		Records: output.Records,
	}, nil
}

// GetPersonYearTotals returns a person's totals over a beer year
func (s *service) GetPersonYearTotals(ctx context.Context, input *GetPersonYearTotalsInput) (*GetPersonYearTotalsOutput, error) {
	if input == nil || input.PersonID == "" {
		return nil, ErrMissingPersonID
	}

	beerYear := input.BeerYear
	if beerYear == 0 {
		beerYear = models.BeerYearFor(clock.Today(s.clock))
	}
	start, end := models.BeerYearRange(beerYear)

	records, err := s.consumptionRepo.ListRecords(ctx, &consumptionRepo.ListRecordsInput{
		Start:     start,
		End:       end,
		PersonIDs: []string{input.PersonID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list consumption records: %w", err)
	}

	totals := &GetPersonYearTotalsOutput{
		BeerYear: beerYear,
		Liters:   decimal.Zero,
		Price:    decimal.Zero,
	}
	for _, r := range records.Records {
		totals.Units += r.Quantity
		totals.Liters = totals.Liters.Add(r.Liters())
		totals.Price = totals.Price.Add(r.PriceTotal)
		totals.Events++
	}
	totals.IsFirstOfYear = totals.Events == 1

	return totals, nil
}
