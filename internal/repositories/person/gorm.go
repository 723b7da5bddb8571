package person

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/cirrosis/internal/models"
	"gorm.io/gorm"
)

// personRow maps the persons table
type personRow struct {
	ID        string    `gorm:"column:id;primaryKey;size:64"`
	Name      string    `gorm:"column:name;not null;uniqueIndex"`
	Status    string    `gorm:"column:status;not null"`
	Deleted   bool      `gorm:"column:deleted;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (personRow) TableName() string {
	return "persons"
}

func (row *personRow) toModel() *models.Person {
	return &models.Person{
		ID:        row.ID,
		Name:      row.Name,
		Status:    models.PersonStatus(row.Status),
		Deleted:   row.Deleted,
		CreatedAt: row.CreatedAt,
	}
}

// GormConfig holds configuration for the SQL person repository
type GormConfig struct {
	// DB is an open gorm handle
	DB *gorm.DB

	// AutoMigrate creates the persons table when missing
	AutoMigrate bool
}

// gormRepository implements the Repository interface on top of gorm
type gormRepository struct {
	db *gorm.DB
}

// NewGorm creates a new SQL-backed person repository
func NewGorm(cfg *GormConfig) (*gormRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("gorm db cannot be nil")
	}

	if cfg.AutoMigrate {
		if err := cfg.DB.AutoMigrate(&personRow{}); err != nil {
			return nil, fmt.Errorf("failed to migrate persons: %w", err)
		}
	}

	return &gormRepository{
		db: cfg.DB,
	}, nil
}

// SavePerson inserts or updates a person
func (r *gormRepository) SavePerson(ctx context.Context, input *SavePersonInput) error {
	if input == nil {
		return errors.New("input and person cannot be nil")
	}
	if err := validatePerson(input.Person); err != nil {
		return err
	}

	var taken int64
	err := r.db.WithContext(ctx).Model(&personRow{}).
		Where("LOWER(name) = ? AND id <> ?", strings.ToLower(strings.TrimSpace(input.Person.Name)), input.Person.ID).
		Count(&taken).Error
	if err != nil {
		return fmt.Errorf("failed to check person name: %w", err)
	}
	if taken > 0 {
		return ErrNameTaken
	}

	row := &personRow{
		ID:        input.Person.ID,
		Name:      input.Person.Name,
		Status:    string(input.Person.Status),
		Deleted:   input.Person.Deleted,
		CreatedAt: input.Person.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return fmt.Errorf("failed to save person: %w", err)
	}

	return nil
}

// GetPerson retrieves a person by ID
func (r *gormRepository) GetPerson(ctx context.Context, input *GetPersonInput) (*models.Person, error) {
	if input == nil || input.PersonID == "" {
		return nil, errors.New("input and person ID cannot be empty")
	}

	var row personRow
	err := r.db.WithContext(ctx).Where("id = ?", input.PersonID).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	return row.toModel(), nil
}

// GetPersonByName retrieves a person by name, ignoring case
func (r *gormRepository) GetPersonByName(ctx context.Context, input *GetPersonByNameInput) (*models.Person, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, errors.New("input and person name cannot be empty")
	}

	var row personRow
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(input.Name))).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to get person by name: %w", err)
	}

	return row.toModel(), nil
}

// ListPersons retrieves the roster ordered by name
func (r *gormRepository) ListPersons(ctx context.Context, input *ListPersonsInput) (*ListPersonsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	query := r.db.WithContext(ctx).Model(&personRow{})
	if input.EligibleOnly {
		query = query.Where("status = ? AND deleted = ?", string(models.PersonStatusActive), false)
	}

	var rows []personRow
	if err := query.Order("name ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}

	persons := make([]*models.Person, 0, len(rows))
	for i := range rows {
		persons = append(persons, rows[i].toModel())
	}

	return &ListPersonsOutput{
		Persons: persons,
	}, nil
}
