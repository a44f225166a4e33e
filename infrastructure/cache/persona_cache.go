package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"persona-emails/contract"
	"persona-emails/domain"

	"github.com/redis/go-redis/v9"
)

// PersonaCache is a read-through cache in front of a persona directory.
// Redis failures degrade to a direct lookup, misses are never cached.
type PersonaCache struct {
	next  contract.IPersonaDirectory
	redis *redis.Client
	ttl   time.Duration
	log   *slog.Logger
}

func NewPersonaCache(log *slog.Logger, next contract.IPersonaDirectory, client *redis.Client, ttl time.Duration) *PersonaCache {
	return &PersonaCache{next: next, redis: client, ttl: ttl, log: log}
}

func idKey(id string) string { return "persona:id:" + id }

func emailKey(address string) string { return "persona:email:" + address }

func (c *PersonaCache) LookupByID(ctx context.Context, personaID string) (domain.Persona, error) {
	return c.lookup(ctx, idKey(personaID), func() (domain.Persona, error) {
		return c.next.LookupByID(ctx, personaID)
	})
}

func (c *PersonaCache) LookupByEmail(ctx context.Context, address string) (domain.Persona, error) {
	return c.lookup(ctx, emailKey(address), func() (domain.Persona, error) {
		return c.next.LookupByEmail(ctx, address)
	})
}

func (c *PersonaCache) lookup(ctx context.Context, key string, load func() (domain.Persona, error)) (domain.Persona, error) {
	b, err := c.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var p domain.Persona
		if err := json.Unmarshal(b, &p); err == nil {
			return p, nil
		}
		c.log.Warn("Dropping corrupted cache entry", "key", key)
	case err != redis.Nil:
		c.log.Warn("Persona cache unavailable", "key", key, "error", err)
	}

	persona, err := load()
	if err != nil {
		return domain.Persona{}, err
	}
	c.store(ctx, persona)
	return persona, nil
}

// store indexes the persona under both keys so either lookup hits next time.
func (c *PersonaCache) store(ctx context.Context, p domain.Persona) {
	b, err := json.Marshal(p)
	if err != nil {
		return
	}
	_, err = c.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, idKey(p.ID), b, c.ttl)
		pipe.Set(ctx, emailKey(p.Email), b, c.ttl)
		return nil
	})
	if err != nil {
		c.log.Warn("Failed to cache persona", "persona_id", p.ID, "error", err)
	}
}
