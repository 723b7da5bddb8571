package person

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/cirrosis/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	personKeyPrefix     = "person:"
	personNameKeyPrefix = "person_name:"
	personsKey          = "persons"
)

// Config holds configuration for the Redis person repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed person repository
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

func nameKey(name string) string {
	return personNameKeyPrefix + strings.ToLower(strings.TrimSpace(name))
}

// SavePerson persists a person to Redis
func (r *redisRepository) SavePerson(ctx context.Context, input *SavePersonInput) error {
	if input == nil {
		return errors.New("input and person cannot be nil")
	}
	if err := validatePerson(input.Person); err != nil {
		return err
	}

	person := input.Person

	// Names are unique across the roster
	ownerID, err := r.client.Get(ctx, nameKey(person.Name)).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("failed to check person name: %w", err)
	}
	if err == nil && ownerID != person.ID {
		return ErrNameTaken
	}

	previous, err := r.GetPerson(ctx, &GetPersonInput{PersonID: person.ID})
	if err != nil && !errors.Is(err, ErrPersonNotFound) {
		return err
	}

	personJSON, err := json.Marshal(person)
	if err != nil {
		return fmt.Errorf("failed to marshal person: %w", err)
	}

	pipe := r.client.TxPipeline()
	if previous != nil && nameKey(previous.Name) != nameKey(person.Name) {
		pipe.Del(ctx, nameKey(previous.Name))
	}
	pipe.Set(ctx, personKeyPrefix+person.ID, personJSON, 0)
	pipe.Set(ctx, nameKey(person.Name), person.ID, 0)
	pipe.SAdd(ctx, personsKey, person.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save person: %w", err)
	}

	return nil
}

// GetPerson retrieves a person by ID from Redis
func (r *redisRepository) GetPerson(ctx context.Context, input *GetPersonInput) (*models.Person, error) {
	if input == nil || input.PersonID == "" {
		return nil, errors.New("input and person ID cannot be empty")
	}

	personJSON, err := r.client.Get(ctx, personKeyPrefix+input.PersonID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	var person models.Person
	if err := json.Unmarshal([]byte(personJSON), &person); err != nil {
		return nil, fmt.Errorf("failed to unmarshal person: %w", err)
	}

	return &person, nil
}

// GetPersonByName retrieves a person by name from Redis
func (r *redisRepository) GetPersonByName(ctx context.Context, input *GetPersonByNameInput) (*models.Person, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, errors.New("input and person name cannot be empty")
	}

	personID, err := r.client.Get(ctx, nameKey(input.Name)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to get person by name: %w", err)
	}

	return r.GetPerson(ctx, &GetPersonInput{PersonID: personID})
}

// ListPersons retrieves the roster from Redis ordered by name
func (r *redisRepository) ListPersons(ctx context.Context, input *ListPersonsInput) (*ListPersonsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	personIDs, err := r.client.SMembers(ctx, personsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get person IDs: %w", err)
	}

	if len(personIDs) == 0 {
		return &ListPersonsOutput{
			Persons: []*models.Person{},
		}, nil
	}

	// Fetch all persons in one round trip
	pipe := r.client.Pipeline()
	personCommands := make(map[string]*redis.StringCmd, len(personIDs))
	for _, personID := range personIDs {
		personCommands[personID] = pipe.Get(ctx, personKeyPrefix+personID)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get persons: %w", err)
	}

	persons := make([]*models.Person, 0, len(personIDs))
	for personID, cmd := range personCommands {
		personJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Person was removed between reading the set and fetching the record
				continue
			}
			return nil, fmt.Errorf("failed to get person %s: %w", personID, err)
		}

		var person models.Person
		if err := json.Unmarshal([]byte(personJSON), &person); err != nil {
			return nil, fmt.Errorf("failed to unmarshal person %s: %w", personID, err)
		}

		if input.EligibleOnly && !person.IsEligible() {
			continue
		}
		persons = append(persons, &person)
	}

	sortByName(persons)

	return &ListPersonsOutput{
		Persons: persons,
	}, nil
}

func sortByName(persons []*models.Person) {
	sort.Slice(persons, func(i, j int) bool {
		if persons[i].Name != persons[j].Name {
			return persons[i].Name < persons[j].Name
		}
		return persons[i].ID < persons[j].ID
	})
}
