package consumption

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/cirrosis/internal/common/dates"
	"github.com/KirkDiggler/cirrosis/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// eventRow maps the drink_events table
type eventRow struct {
	ID                string              `gorm:"column:id;primaryKey;size:64"`
	PersonID          string              `gorm:"column:person_id;not null;index:idx_events_person_recent,priority:1"`
	DrinkTypeID       string              `gorm:"column:drink_type_id;not null"`
	Quantity          int                 `gorm:"column:quantity;not null"`
	ConsumedAt        time.Time           `gorm:"column:consumed_at;type:date;not null;index"`
	CreatedAt         time.Time           `gorm:"column:created_at;not null;index:idx_events_person_recent,priority:3"`
	YearStart         int                 `gorm:"column:year_start;index:idx_events_year,priority:1"`
	VolumeLitersTotal decimal.NullDecimal `gorm:"column:volume_liters_total;type:numeric(10,3)"`
	PriceEurTotal     decimal.Decimal     `gorm:"column:price_eur_total;type:numeric(10,2);not null"`
	IsVoid            bool                `gorm:"column:is_void;not null;default:false;index:idx_events_person_recent,priority:2;index:idx_events_year,priority:2"`
	VoidedAt          *time.Time          `gorm:"column:voided_at"`
}

func (eventRow) TableName() string {
	return "drink_events"
}

func (row *eventRow) toModel() *models.ConsumptionEvent {
	return &models.ConsumptionEvent{
		ID:                row.ID,
		PersonID:          row.PersonID,
		DrinkTypeID:       row.DrinkTypeID,
		Quantity:          row.Quantity,
		ConsumedAt:        dates.Day(row.ConsumedAt),
		CreatedAt:         row.CreatedAt,
		BeerYear:          row.YearStart,
		VolumeLitersTotal: row.VolumeLitersTotal,
		PriceTotal:        row.PriceEurTotal,
		IsVoid:            row.IsVoid,
		VoidedAt:          row.VoidedAt,
	}
}

// recordRow is one row of the events × drink_types join
type recordRow struct {
	EventID           string              `gorm:"column:event_id"`
	PersonID          string              `gorm:"column:person_id"`
	ConsumedAt        time.Time           `gorm:"column:consumed_at"`
	CreatedAt         time.Time           `gorm:"column:created_at"`
	Quantity          int                 `gorm:"column:quantity"`
	VolumeLitersTotal decimal.NullDecimal `gorm:"column:volume_liters_total"`
	PriceEurTotal     decimal.Decimal     `gorm:"column:price_eur_total"`
	DrinkTypeID       string              `gorm:"column:drink_type_id"`
	DrinkCategory     string              `gorm:"column:drink_category"`
	DrinkLabel        string              `gorm:"column:drink_label"`
	UnitVolumeLiters  decimal.NullDecimal `gorm:"column:unit_volume_liters"`
}

func (row *recordRow) toModel() *models.ConsumptionRecord {
	return &models.ConsumptionRecord{
		EventID:           row.EventID,
		PersonID:          row.PersonID,
		ConsumedAt:        dates.Day(row.ConsumedAt),
		CreatedAt:         row.CreatedAt,
		Quantity:          row.Quantity,
		VolumeLitersTotal: row.VolumeLitersTotal,
		PriceTotal:        row.PriceEurTotal,
		DrinkTypeID:       row.DrinkTypeID,
		DrinkCategory:     models.DrinkCategory(row.DrinkCategory),
		DrinkLabel:        row.DrinkLabel,
		UnitVolumeLiters:  row.UnitVolumeLiters,
	}
}

const recordColumns = `e.id AS event_id, e.person_id, e.consumed_at, e.created_at, e.quantity,
	e.volume_liters_total, e.price_eur_total, e.drink_type_id,
	dt.category AS drink_category, dt.label AS drink_label, dt.volume_liters AS unit_volume_liters`

// GormConfig holds configuration for the SQL consumption repository
type GormConfig struct {
	// DB is an open gorm handle; the drink_types table must live in the same database
	DB *gorm.DB

	// AutoMigrate creates the drink_events table when missing
	AutoMigrate bool
}

// gormRepository implements the Repository interface on top of gorm
type gormRepository struct {
	db *gorm.DB
}

// NewGorm creates a new SQL-backed consumption repository
func NewGorm(cfg *GormConfig) (*gormRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("gorm db cannot be nil")
	}

	if cfg.AutoMigrate {
		if err := cfg.DB.AutoMigrate(&eventRow{}); err != nil {
			return nil, fmt.Errorf("failed to migrate drink events: %w", err)
		}
	}

	return &gormRepository{
		db: cfg.DB,
	}, nil
}

// AddEvent inserts a consumption event
func (r *gormRepository) AddEvent(ctx context.Context, input *AddEventInput) error {
	if err := validateAddEvent(input); err != nil {
		return err
	}

	event := input.Event
	event.ConsumedAt = dates.Day(event.ConsumedAt)
	if event.BeerYear == 0 {
		event.BeerYear = models.BeerYearFor(event.ConsumedAt)
	}

	var existing int64
	if err := r.db.WithContext(ctx).Model(&eventRow{}).Where("id = ?", event.ID).Count(&existing).Error; err != nil {
		return fmt.Errorf("failed to check consumption event: %w", err)
	}
	if existing > 0 {
		return ErrEventExists
	}

	row := &eventRow{
		ID:                event.ID,
		PersonID:          event.PersonID,
		DrinkTypeID:       event.DrinkTypeID,
		Quantity:          event.Quantity,
		ConsumedAt:        event.ConsumedAt,
		CreatedAt:         event.CreatedAt,
		YearStart:         event.BeerYear,
		VolumeLitersTotal: event.VolumeLitersTotal,
		PriceEurTotal:     event.PriceTotal,
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to add consumption event: %w", err)
	}

	return nil
}

// GetEvent retrieves an event by ID
func (r *gormRepository) GetEvent(ctx context.Context, input *GetEventInput) (*models.ConsumptionEvent, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	var row eventRow
	err := r.db.WithContext(ctx).Where("id = ?", input.EventID).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get consumption event: %w", err)
	}

	return row.toModel(), nil
}

// VoidEvent flips is_void in a single conditional UPDATE
func (r *gormRepository) VoidEvent(ctx context.Context, input *VoidEventInput) (*VoidEventOutput, error) {
	if input == nil || input.EventID == "" || input.PersonID == "" {
		return nil, errors.New("input, event ID and person ID cannot be empty")
	}

	result := r.db.WithContext(ctx).Model(&eventRow{}).
		Where("id = ? AND person_id = ? AND is_void = ?", input.EventID, input.PersonID, false).
		Updates(map[string]any{
			"is_void":   true,
			"voided_at": input.VoidedAt,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to void consumption event: %w", result.Error)
	}

	return &VoidEventOutput{Voided: result.RowsAffected > 0}, nil
}

// ListRecords retrieves non-void events of a date range joined with drink_types
func (r *gormRepository) ListRecords(ctx context.Context, input *ListRecordsInput) (*ListRecordsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validateRange(input.Start, input.End); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Table("drink_events AS e").
		Select(recordColumns).
		Joins("JOIN drink_types dt ON dt.id = e.drink_type_id").
		Where("e.is_void = ?", false).
		Where("e.consumed_at >= ? AND e.consumed_at <= ?", dates.Day(input.Start), dates.Day(input.End))
	if len(input.PersonIDs) > 0 {
		query = query.Where("e.person_id IN ?", input.PersonIDs)
	}

	var rows []recordRow
	if err := query.Order("e.consumed_at ASC, e.created_at ASC, e.id ASC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list consumption records: %w", err)
	}

	records := make([]*models.ConsumptionRecord, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].toModel())
	}
	sortRecords(records)

	return &ListRecordsOutput{
		Records: records,
	}, nil
}

// ListRecentEvents retrieves the latest non-void events of a person
func (r *gormRepository) ListRecentEvents(ctx context.Context, input *ListRecentEventsInput) (*ListRecentEventsOutput, error) {
	if input == nil || input.PersonID == "" {
		return nil, errors.New("input and person ID cannot be empty")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	var rows []recordRow
	err := r.db.WithContext(ctx).
		Table("drink_events AS e").
		Select(recordColumns).
		Joins("JOIN drink_types dt ON dt.id = e.drink_type_id").
		Where("e.person_id = ? AND e.is_void = ?", input.PersonID, false).
		Order("e.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent consumption events: %w", err)
	}

	records := make([]*models.ConsumptionRecord, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].toModel())
	}

	return &ListRecentEventsOutput{
		Records: records,
	}, nil
}

// ListBeerYears retrieves the distinct beer years with non-void events
func (r *gormRepository) ListBeerYears(ctx context.Context, input *ListBeerYearsInput) (*ListBeerYearsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var years []int
	err := r.db.WithContext(ctx).Model(&eventRow{}).
		Where("is_void = ? AND year_start IS NOT NULL", false).
		Distinct("year_start").
		Order("year_start DESC").
		Pluck("year_start", &years).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list beer years: %w", err)
	}

	return &ListBeerYearsOutput{
		Years: years,
	}, nil
}
