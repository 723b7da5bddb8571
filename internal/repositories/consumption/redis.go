package consumption

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/KirkDiggler/cirrosis/internal/common/dates"
	"github.com/KirkDiggler/cirrosis/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	// Key prefixes for Redis
	eventKeyPrefix        = "consumption:"
	personEventsKeyPrefix = "person_consumptions:"
	eventsByDayKey        = "consumptions_by_day"
	beerYearCountsKey     = "beer_year_counts"

	defaultRecentLimit = 3
)

// eventDocument is what is stored under an event key. The drink fields are
// copied from the catalog when the event is written, the same moment the
// volume and price totals are fixed.
type eventDocument struct {
	Event            *models.ConsumptionEvent `json:"event"`
	DrinkLabel       string                   `json:"drink_label"`
	DrinkCategory    models.DrinkCategory     `json:"drink_category"`
	UnitVolumeLiters decimal.NullDecimal      `json:"unit_volume_liters"`
}

func (d *eventDocument) toRecord() *models.ConsumptionRecord {
	return &models.ConsumptionRecord{
		EventID:           d.Event.ID,
		PersonID:          d.Event.PersonID,
		ConsumedAt:        d.Event.ConsumedAt,
		CreatedAt:         d.Event.CreatedAt,
		Quantity:          d.Event.Quantity,
		VolumeLitersTotal: d.Event.VolumeLitersTotal,
		PriceTotal:        d.Event.PriceTotal,
		DrinkTypeID:       d.Event.DrinkTypeID,
		DrinkCategory:     d.DrinkCategory,
		DrinkLabel:        d.DrinkLabel,
		UnitVolumeLiters:  d.UnitVolumeLiters,
	}
}

// Config holds configuration for the Redis consumption repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed consumption repository
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

// AddEvent stores an event and indexes it by day, person and beer year
func (r *redisRepository) AddEvent(ctx context.Context, input *AddEventInput) error {
	if err := validateAddEvent(input); err != nil {
		return err
	}

	event := input.Event
	event.ConsumedAt = dates.Day(event.ConsumedAt)
	if event.BeerYear == 0 {
		event.BeerYear = models.BeerYearFor(event.ConsumedAt)
	}

	eventKey := eventKeyPrefix + event.ID

	doc := &eventDocument{
		Event:            event,
		DrinkLabel:       input.DrinkType.Label,
		DrinkCategory:    input.DrinkType.Category,
		UnitVolumeLiters: input.DrinkType.UnitVolumeLiters,
	}
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal consumption event: %w", err)
	}

	// WATCH the document key so a concurrent add of the same ID aborts this one
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, eventKey).Result()
		if err != nil {
			return err
		}
		if exists > 0 {
			return ErrEventExists
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, eventKey, docJSON, 0)
			pipe.ZAdd(ctx, eventsByDayKey, redis.Z{
				Score:  float64(dates.Number(event.ConsumedAt)),
				Member: event.ID,
			})
			pipe.ZAdd(ctx, personEventsKeyPrefix+event.PersonID, redis.Z{
				Score:  float64(event.CreatedAt.UnixMilli()),
				Member: event.ID,
			})
			pipe.HIncrBy(ctx, beerYearCountsKey, strconv.Itoa(event.BeerYear), 1)
			return nil
		})
		return err
	}, eventKey)
	if errors.Is(err, ErrEventExists) || errors.Is(err, redis.TxFailedErr) {
		return ErrEventExists
	}
	if err != nil {
		return fmt.Errorf("failed to add consumption event: %w", err)
	}

	return nil
}

func (r *redisRepository) getDocument(ctx context.Context, eventID string) (*eventDocument, error) {
	docJSON, err := r.client.Get(ctx, eventKeyPrefix+eventID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get consumption event: %w", err)
	}

	var doc eventDocument
	if err := json.Unmarshal([]byte(docJSON), &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal consumption event: %w", err)
	}

	return &doc, nil
}

// GetEvent retrieves an event by ID from Redis
func (r *redisRepository) GetEvent(ctx context.Context, input *GetEventInput) (*models.ConsumptionEvent, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	doc, err := r.getDocument(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	return doc.Event, nil
}

// VoidEvent flips is_void on an event owned by the person and drops it from
// every read index. The flip is guarded by WATCH so two concurrent voids
// cannot both report success.
func (r *redisRepository) VoidEvent(ctx context.Context, input *VoidEventInput) (*VoidEventOutput, error) {
	if input == nil || input.EventID == "" || input.PersonID == "" {
		return nil, errors.New("input, event ID and person ID cannot be empty")
	}

	eventKey := eventKeyPrefix + input.EventID
	voided := false

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		docJSON, err := tx.Get(ctx, eventKey).Result()
		if err == redis.Nil {
			return nil
		}
		if err != nil {
			return err
		}

		var doc eventDocument
		if err := json.Unmarshal([]byte(docJSON), &doc); err != nil {
			return fmt.Errorf("failed to unmarshal consumption event: %w", err)
		}
		if doc.Event.IsVoid || doc.Event.PersonID != input.PersonID {
			return nil
		}

		voidedAt := input.VoidedAt
		doc.Event.IsVoid = true
		doc.Event.VoidedAt = &voidedAt

		updatedJSON, err := json.Marshal(&doc)
		if err != nil {
			return fmt.Errorf("failed to marshal consumption event: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, eventKey, updatedJSON, 0)
			pipe.ZRem(ctx, eventsByDayKey, input.EventID)
			pipe.ZRem(ctx, personEventsKeyPrefix+doc.Event.PersonID, input.EventID)
			pipe.HIncrBy(ctx, beerYearCountsKey, strconv.Itoa(doc.Event.BeerYear), -1)
			return nil
		})
		if err != nil {
			return err
		}

		voided = true
		return nil
	}, eventKey)
	if err != nil {
		return nil, fmt.Errorf("failed to void consumption event: %w", err)
	}

	return &VoidEventOutput{Voided: voided}, nil
}

// fetchDocuments loads event documents in one pipeline, skipping IDs whose
// key vanished in between
func (r *redisRepository) fetchDocuments(ctx context.Context, eventIDs []string) ([]*eventDocument, error) {
	if len(eventIDs) == 0 {
		return nil, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, len(eventIDs))
	for i, eventID := range eventIDs {
		commands[i] = pipe.Get(ctx, eventKeyPrefix+eventID)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get consumption events: %w", err)
	}

	docs := make([]*eventDocument, 0, len(eventIDs))
	for i, cmd := range commands {
		docJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get consumption event %s: %w", eventIDs[i], err)
		}

		var doc eventDocument
		if err := json.Unmarshal([]byte(docJSON), &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal consumption event %s: %w", eventIDs[i], err)
		}
		if doc.Event == nil {
			return nil, fmt.Errorf("consumption event %s has no body", eventIDs[i])
		}
		docs = append(docs, &doc)
	}

	return docs, nil
}

// ListRecords retrieves non-void events of a date range from Redis
func (r *redisRepository) ListRecords(ctx context.Context, input *ListRecordsInput) (*ListRecordsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validateRange(input.Start, input.End); err != nil {
		return nil, err
	}

	eventIDs, err := r.client.ZRangeByScore(ctx, eventsByDayKey, &redis.ZRangeBy{
		Min: strconv.FormatInt(dates.Number(input.Start), 10),
		Max: strconv.FormatInt(dates.Number(input.End), 10),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get consumption IDs for range: %w", err)
	}

	docs, err := r.fetchDocuments(ctx, eventIDs)
	if err != nil {
		return nil, err
	}

	filter := personFilter(input.PersonIDs)
	records := make([]*models.ConsumptionRecord, 0, len(docs))
	for _, doc := range docs {
		if doc.Event.IsVoid {
			continue
		}
		if filter != nil {
			if _, ok := filter[doc.Event.PersonID]; !ok {
				continue
			}
		}
		records = append(records, doc.toRecord())
	}

	sortRecords(records)

	return &ListRecordsOutput{
		Records: records,
	}, nil
}

// ListRecentEvents retrieves the latest non-void events of a person from Redis
func (r *redisRepository) ListRecentEvents(ctx context.Context, input *ListRecentEventsInput) (*ListRecentEventsOutput, error) {
	if input == nil || input.PersonID == "" {
		return nil, errors.New("input and person ID cannot be empty")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	eventIDs, err := r.client.ZRevRange(ctx, personEventsKeyPrefix+input.PersonID, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get recent consumption IDs: %w", err)
	}

	docs, err := r.fetchDocuments(ctx, eventIDs)
	if err != nil {
		return nil, err
	}

	records := make([]*models.ConsumptionRecord, 0, len(docs))
	for _, doc := range docs {
		if doc.Event.IsVoid {
			continue
		}
		records = append(records, doc.toRecord())
	}

	return &ListRecentEventsOutput{
		Records: records,
	}, nil
}

// ListBeerYears reads the per-year counters kept by AddEvent and VoidEvent
func (r *redisRepository) ListBeerYears(ctx context.Context, input *ListBeerYearsInput) (*ListBeerYearsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	counts, err := r.client.HGetAll(ctx, beerYearCountsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get beer year counters: %w", err)
	}

	years := make([]int, 0, len(counts))
	for field, value := range counts {
		year, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid beer year %q: %w", field, err)
		}
		count, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid count for beer year %d: %w", year, err)
		}
		if count > 0 {
			years = append(years, year)
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	return &ListBeerYearsOutput{
		Years: years,
	}, nil
}
