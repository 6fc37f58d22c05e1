package redis

import (
	"context"
	"encoding/json"
	"time"

	"fieldops/internal/core/domain/model/kernel"
	"fieldops/internal/core/domain/model/technician"
	"fieldops/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// ContactCache is a cache-aside decorator over a TechnicianDirectory.
// Contact cards barely change and every reminder sweep reads them, so a short
// TTL takes most of the lookup load off the database. Only successful lookups
// are cached; misses and errors always go back to the underlying directory.
type ContactCache struct {
	client    *redis.Client
	directory ports.TechnicianDirectory
	ttl       time.Duration
}

// NewContactCache wraps the directory with a Redis cache using the given TTL.
func NewContactCache(
	client *redis.Client,
	directory ports.TechnicianDirectory,
	ttl time.Duration,
) *ContactCache {
	return &ContactCache{
		client:    client,
		directory: directory,
		ttl:       ttl,
	}
}

type contactEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// GetContact returns the cached contact card when present, falling back to the
// underlying directory and caching the result. Redis being down degrades to
// uncached lookups rather than failing the caller.
func (c *ContactCache) GetContact(ctx context.Context, id kernel.UUID) (technician.Contact, error) {
	key := contactKey(id)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var entry contactEntry
		if unmarshalErr := json.Unmarshal(data, &entry); unmarshalErr == nil {
			if contact, restoreErr := restoreContact(entry); restoreErr == nil {
				return contact, nil
			}
		}
		// A corrupt entry falls through to the directory and gets rewritten.
	}

	contact, err := c.directory.GetContact(ctx, id)
	if err != nil {
		return technician.Contact{}, err
	}

	payload, err := json.Marshal(contactEntry{
		ID:    contact.ID().String(),
		Name:  contact.Name(),
		Phone: contact.Phone(),
	})
	if err == nil {
		// Cache write is fire-and-forget.
		c.client.Set(ctx, key, payload, c.ttl)
	}

	return contact, nil
}

func restoreContact(entry contactEntry) (technician.Contact, error) {
	id, err := kernel.UUIDFromString(entry.ID)
	if err != nil {
		return technician.Contact{}, err
	}

	return technician.NewContact(id, entry.Name, entry.Phone)
}

func contactKey(id kernel.UUID) string {
	return "cache:technician:contact:" + id.String()
}
