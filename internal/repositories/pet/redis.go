package pet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/waseertanvir/walkies-sub000/internal/models"
)

const (
	// Key prefixes for Redis
	petKeyPrefix       = "pet:"
	ownerPetsKeyPrefix = "owner_pets:"
)

// ErrPetNotFound is returned when a pet is not found
var ErrPetNotFound = errors.New("pet not found")

// Config holds configuration for the Redis pet repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed pet repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SavePet persists a pet to Redis
func (r *redisRepository) SavePet(ctx context.Context, input *SavePetInput) error {
	if input == nil || input.Pet == nil {
		return errors.New("input and pet cannot be nil")
	}

	petJSON, err := json.Marshal(input.Pet)
	if err != nil {
		return fmt.Errorf("failed to marshal pet: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, petKeyPrefix+input.Pet.ID, petJSON, 0)
	pipe.SAdd(ctx, ownerPetsKeyPrefix+input.Pet.OwnerID, input.Pet.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save pet: %w", err)
	}

	return nil
}

// GetPet retrieves a pet by ID from Redis
func (r *redisRepository) GetPet(ctx context.Context, input *GetPetInput) (*models.Pet, error) {
	if input == nil || input.PetID == "" {
		return nil, errors.New("input and pet ID cannot be empty")
	}

	petJSON, err := r.client.Get(ctx, petKeyPrefix+input.PetID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPetNotFound
		}
		return nil, fmt.Errorf("failed to get pet: %w", err)
	}

	var pet models.Pet
	if err := json.Unmarshal([]byte(petJSON), &pet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pet: %w", err)
	}

	return &pet, nil
}

// GetPetsByOwner retrieves all pets registered by an owner
func (r *redisRepository) GetPetsByOwner(ctx context.Context, input *GetPetsByOwnerInput) ([]*models.Pet, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	ids, err := r.client.SMembers(ctx, ownerPetsKeyPrefix+input.OwnerID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get owner pets: %w", err)
	}

	pets := make([]*models.Pet, 0, len(ids))
	for _, id := range ids {
		pet, err := r.GetPet(ctx, &GetPetInput{PetID: id})
		if err != nil {
			if errors.Is(err, ErrPetNotFound) {
				continue
			}
			return nil, err
		}
		pets = append(pets, pet)
	}

	return pets, nil
}
