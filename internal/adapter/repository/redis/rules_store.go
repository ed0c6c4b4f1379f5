package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/FernandoHernandezBonjour/MeinhaProject-sub000/internal/domain"
)

const rulesKey = "settings:score_rules"

// RulesStore implements usecase.RulesRepository on the Redis settings
// store. The rule set is one JSON document under a fixed key.
type RulesStore struct {
	client *redis.Client
}

// NewRulesStore creates a new RulesStore.
func NewRulesStore(client *redis.Client) *RulesStore {
	return &RulesStore{client: client}
}

// Load reads the stored rule set. An absent key maps to
// domain.ErrRulesNotFound so the caller can fall back to defaults.
func (s *RulesStore) Load(ctx context.Context) (*domain.ScoreRules, error) {
	data, err := s.client.Get(ctx, rulesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrRulesNotFound
	}
	if err != nil {
		return nil, err
	}

	var rules domain.ScoreRules
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, err
	}

	return &rules, nil
}

// Save persists the rule set with no TTL. Settings survive restarts.
func (s *RulesStore) Save(ctx context.Context, rules domain.ScoreRules) error {
	data, err := json.Marshal(rules)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, rulesKey, data, 0).Err()
}
