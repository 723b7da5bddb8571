package drink_type

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/cirrosis/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// drinkTypeRow maps the drink_types table
type drinkTypeRow struct {
	ID           string              `gorm:"column:id;primaryKey;size:64"`
	Code         string              `gorm:"column:code;not null;uniqueIndex"`
	Label        string              `gorm:"column:label;not null"`
	Category     string              `gorm:"column:category;not null"`
	VolumeLiters decimal.NullDecimal `gorm:"column:volume_liters;type:numeric(6,3)"`
	UnitPriceEur decimal.Decimal     `gorm:"column:unit_price_eur;type:numeric(10,2);not null"`
	IsActive     bool                `gorm:"column:is_active;not null;default:true"`
}

func (drinkTypeRow) TableName() string {
	return "drink_types"
}

func (row *drinkTypeRow) toModel() *models.DrinkType {
	return &models.DrinkType{
		ID:               row.ID,
		Code:             row.Code,
		Label:            row.Label,
		Category:         models.DrinkCategory(row.Category),
		UnitVolumeLiters: row.VolumeLiters,
		UnitPrice:        row.UnitPriceEur,
		Active:           row.IsActive,
	}
}

// GormConfig holds configuration for the SQL drink type repository
type GormConfig struct {
	// DB is an open gorm handle
	DB *gorm.DB

	// AutoMigrate creates the drink_types table when missing
	AutoMigrate bool
}

// gormRepository implements the Repository interface on top of gorm
type gormRepository struct {
	db *gorm.DB
}

// NewGorm creates a new SQL-backed drink type repository
func NewGorm(cfg *GormConfig) (*gormRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("gorm db cannot be nil")
	}

	if cfg.AutoMigrate {
		if err := cfg.DB.AutoMigrate(&drinkTypeRow{}); err != nil {
			return nil, fmt.Errorf("failed to migrate drink types: %w", err)
		}
	}

	return &gormRepository{
		db: cfg.DB,
	}, nil
}

// SaveDrinkType inserts or updates a drink type
func (r *gormRepository) SaveDrinkType(ctx context.Context, input *SaveDrinkTypeInput) error {
	if input == nil {
		return errors.New("input and drink type cannot be nil")
	}
	if err := validateDrinkType(input.DrinkType); err != nil {
		return err
	}

	drink := input.DrinkType
	row := &drinkTypeRow{
		ID:           drink.ID,
		Code:         drink.Code,
		Label:        drink.Label,
		Category:     string(drink.Category),
		VolumeLiters: drink.UnitVolumeLiters,
		UnitPriceEur: drink.UnitPrice,
		IsActive:     drink.Active,
	}
	if row.Code == "" {
		row.Code = drink.ID
	}

	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return fmt.Errorf("failed to save drink type: %w", err)
	}

	return nil
}

// GetDrinkType retrieves a drink type by ID
func (r *gormRepository) GetDrinkType(ctx context.Context, input *GetDrinkTypeInput) (*models.DrinkType, error) {
	if input == nil || input.DrinkTypeID == "" {
		return nil, errors.New("input and drink type ID cannot be empty")
	}

	var row drinkTypeRow
	err := r.db.WithContext(ctx).Where("id = ?", input.DrinkTypeID).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDrinkTypeNotFound
		}
		return nil, fmt.Errorf("failed to get drink type: %w", err)
	}

	return row.toModel(), nil
}

// ListDrinkTypes retrieves catalog entries ordered by label
func (r *gormRepository) ListDrinkTypes(ctx context.Context, input *ListDrinkTypesInput) (*ListDrinkTypesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	query := r.db.WithContext(ctx).Model(&drinkTypeRow{})
	if input.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if input.Category != "" {
		query = query.Where("category = ?", string(input.Category))
	}

	var rows []drinkTypeRow
	if err := query.Order("label ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list drink types: %w", err)
	}

	drinks := make([]*models.DrinkType, 0, len(rows))
	for i := range rows {
		drinks = append(drinks, rows[i].toModel())
	}

	return &ListDrinkTypesOutput{
		DrinkTypes: drinks,
	}, nil
}
