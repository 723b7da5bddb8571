package drink_type

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/cirrosis/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	drinkTypeKeyPrefix = "drink_type:"
	drinkTypesKey      = "drink_types"
)

// Config holds configuration for the Redis drink type repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed drink type repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveDrinkType persists a drink type to Redis
func (r *redisRepository) SaveDrinkType(ctx context.Context, input *SaveDrinkTypeInput) error {
	if input == nil {
		return errors.New("input and drink type cannot be nil")
	}
	if err := validateDrinkType(input.DrinkType); err != nil {
		return err
	}

	drinkJSON, err := json.Marshal(input.DrinkType)
	if err != nil {
		return fmt.Errorf("failed to marshal drink type: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, drinkTypeKeyPrefix+input.DrinkType.ID, drinkJSON, 0)
	pipe.SAdd(ctx, drinkTypesKey, input.DrinkType.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save drink type: %w", err)
	}

	return nil
}

// GetDrinkType retrieves a drink type by ID from Redis
func (r *redisRepository) GetDrinkType(ctx context.Context, input *GetDrinkTypeInput) (*models.DrinkType, error) {
	if input == nil || input.DrinkTypeID == "" {
		return nil, errors.New("input and drink type ID cannot be empty")
	}

	drinkJSON, err := r.client.Get(ctx, drinkTypeKeyPrefix+input.DrinkTypeID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrDrinkTypeNotFound
		}
		return nil, fmt.Errorf("failed to get drink type: %w", err)
	}

	var drink models.DrinkType
	if err := json.Unmarshal([]byte(drinkJSON), &drink); err != nil {
		return nil, fmt.Errorf("failed to unmarshal drink type: %w", err)
	}

	return &drink, nil
}

// ListDrinkTypes retrieves catalog entries from Redis ordered by label
func (r *redisRepository) ListDrinkTypes(ctx context.Context, input *ListDrinkTypesInput) (*ListDrinkTypesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	drinkIDs, err := r.client.SMembers(ctx, drinkTypesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get drink type IDs: %w", err)
	}

	if len(drinkIDs) == 0 {
		return &ListDrinkTypesOutput{
			DrinkTypes: []*models.DrinkType{},
		}, nil
	}

	pipe := r.client.Pipeline()
	drinkCommands := make(map[string]*redis.StringCmd, len(drinkIDs))
	for _, drinkID := range drinkIDs {
		drinkCommands[drinkID] = pipe.Get(ctx, drinkTypeKeyPrefix+drinkID)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get drink types: %w", err)
	}

	drinks := make([]*models.DrinkType, 0, len(drinkIDs))
	for drinkID, cmd := range drinkCommands {
		drinkJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get drink type %s: %w", drinkID, err)
		}

		var drink models.DrinkType
		if err := json.Unmarshal([]byte(drinkJSON), &drink); err != nil {
			return nil, fmt.Errorf("failed to unmarshal drink type %s: %w", drinkID, err)
		}

		if !matches(&drink, input) {
			continue
		}
		drinks = append(drinks, &drink)
	}

	sort.Slice(drinks, func(i, j int) bool {
		if drinks[i].Label != drinks[j].Label {
			return drinks[i].Label < drinks[j].Label
		}
		return drinks[i].ID < drinks[j].ID
	})

	return &ListDrinkTypesOutput{
		DrinkTypes: drinks,
	}, nil
}
