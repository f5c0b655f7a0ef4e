package store

import (
	"encoding/json"
	"fmt"

	"orgboard/pkg/orgboard"
)

// persistLocked mirrors bulletin, settings, and inquiry state to the local
// cache. It is the unconditional save effect: gated on initialization and
// re-run on every change to those three pieces of state.
//
// Cache failures are logged as warnings; state continues in memory only for
// that cycle.
func (c *Container) persistLocked() {
	if !c.initialized {
		return
	}

	c.writeCacheKey(orgboard.CacheKeyBulletin, c.bbs)
	c.writeCacheKey(orgboard.CacheKeySettings, c.settings)
	c.writeCacheKey(orgboard.CacheKeyInquiries, c.inquiries)
}

func (c *Container) writeCacheKey(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("serialize cache value failed", "key", key, "error", err)
		return
	}
	if err := c.cache.Set(key, string(data)); err != nil {
		c.logger.Warn("write cache key failed", "key", key, "error", err)
	}
}

func (c *Container) setCacheString(key string, value string) error {
	if err := c.cache.Set(key, value); err != nil {
		return fmt.Errorf("write cache key %s: %w", key, err)
	}

	return nil
}
