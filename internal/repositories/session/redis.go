package session

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
	sessionKeyPrefix  = "walk_session:"
	allSessionsKey    = "walk_sessions:all"
	ownerIndexPrefix  = "owner_sessions:"
	walkerIndexPrefix = "walker_sessions:"
	statusIndexPrefix = "status_sessions:"
)

var (
	// ErrSessionNotFound is returned when a session is not found
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExists is returned when creating a session whose ID is taken
	ErrSessionExists = errors.New("session already exists")

	// ErrVersionConflict is returned when a guarded update loses a race
	ErrVersionConflict = errors.New("session version conflict")

	// ErrStoreUnavailable wraps transport failures talking to Redis;
	// callers may retry these with backoff
	ErrStoreUnavailable = errors.New("session store unavailable")
)

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
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

// CreateSession persists a brand-new session and its index entries
func (r *redisRepository) CreateSession(ctx context.Context, input *CreateSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	sess := input.Session
	sessionJSON, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	sessionKey := sessionKeyPrefix + sess.ID
	ok, err := r.client.SetNX(ctx, sessionKey, sessionJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if !ok {
		return ErrSessionExists
	}

	pipe := r.client.Pipeline()
	pipe.SAdd(ctx, allSessionsKey, sess.ID)
	pipe.SAdd(ctx, ownerIndexPrefix+sess.OwnerID, sess.ID)
	pipe.SAdd(ctx, statusIndexPrefix+string(sess.Status), sess.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return nil
}

// GetSession retrieves a session by ID
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sessionJSON, err := r.client.Get(ctx, sessionKeyPrefix+input.SessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &sess, nil
}

// UpdateSession writes a session guarded by its expected version. The read,
// version check and write run under WATCH so two writers racing on the same
// session cannot both succeed; the loser gets ErrVersionConflict.
func (r *redisRepository) UpdateSession(ctx context.Context, input *UpdateSessionInput) (*models.Session, error) {
	if input == nil || input.Session == nil {
		return nil, errors.New("input and session cannot be nil")
	}

	sess := input.Session
	sessionKey := sessionKeyPrefix + sess.ID

	var updated models.Session

	txn := func(tx *redis.Tx) error {
		currentJSON, err := tx.Get(ctx, sessionKey).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrSessionNotFound
			}
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}

		var current models.Session
		if err := json.Unmarshal([]byte(currentJSON), &current); err != nil {
			return fmt.Errorf("failed to unmarshal session: %w", err)
		}

		if current.Version != input.ExpectedVersion {
			return ErrVersionConflict
		}

		updated = *sess
		updated.Version = input.ExpectedVersion + 1

		updatedJSON, err := json.Marshal(&updated)
		if err != nil {
			return fmt.Errorf("failed to marshal session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, sessionKey, updatedJSON, 0)
			if current.Status != updated.Status {
				pipe.SRem(ctx, statusIndexPrefix+string(current.Status), updated.ID)
				pipe.SAdd(ctx, statusIndexPrefix+string(updated.Status), updated.ID)
			}
			if current.WalkerID != updated.WalkerID {
				if current.WalkerID != "" {
					pipe.SRem(ctx, walkerIndexPrefix+current.WalkerID, updated.ID)
				}
				if updated.WalkerID != "" {
					pipe.SAdd(ctx, walkerIndexPrefix+updated.WalkerID, updated.ID)
				}
			}
			return nil
		})
		return err
	}

	err := r.client.Watch(ctx, txn, sessionKey)
	if err != nil {
		// Another writer touched the key between our read and EXEC
		if errors.Is(err, redis.TxFailedErr) {
			return nil, ErrVersionConflict
		}
		return nil, err
	}

	return &updated, nil
}

// ListSessions retrieves sessions matching the filter. The narrowest index
// set available is scanned; remaining filters apply in memory.
func (r *redisRepository) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	indexKey := allSessionsKey
	switch {
	case input.OwnerID != "":
		indexKey = ownerIndexPrefix + input.OwnerID
	case input.WalkerID != "":
		indexKey = walkerIndexPrefix + input.WalkerID
	case input.Status != "":
		indexKey = statusIndexPrefix + string(input.Status)
	}

	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	sessions := make([]*models.Session, 0, len(ids))
	for _, id := range ids {
		sess, err := r.GetSession(ctx, &GetSessionInput{SessionID: id})
		if err != nil {
			if errors.Is(err, ErrSessionNotFound) {
				continue
			}
			return nil, err
		}

		if sess.Deleted && !input.IncludeDeleted {
			continue
		}
		if input.Status != "" && sess.Status != input.Status {
			continue
		}
		if input.OwnerID != "" && sess.OwnerID != input.OwnerID {
			continue
		}
		if input.WalkerID != "" && sess.WalkerID != input.WalkerID {
			continue
		}

		sessions = append(sessions, sess)
	}

	return &ListSessionsOutput{Sessions: sessions}, nil
}
