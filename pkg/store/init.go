package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"orgboard/pkg/orgboard"
)

// cachedSettings mirrors the serialized Settings shape with optional fields,
// so only top-level keys present in storage override defaults.
type cachedSettings struct {
	ShowSidebar      *bool                   `json:"show_sidebar"`
	RollingImages    []orgboard.RollingImage `json:"rolling_images"`
	FounderImageURL  *string                 `json:"founder_image_url"`
	ChairmanImageURL *string                 `json:"chairman_image_url"`
	LogoImageURL     *string                 `json:"logo_image_url"`
	AdminPassword    *string                 `json:"admin_password"`
}

// Init loads local cache state into memory, overlays remote values, and
// enables the save effect after a short settle delay.
//
// Per-key cache parse failures and remote fetch failures are logged and
// tolerated; Init fails only on lifecycle misuse or context cancellation.
func (c *Container) Init(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("container init: nil container")
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("container init: %w", err)
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return fmt.Errorf("container init: %w", orgboard.ErrContainerClosed)
	}
	if c.initialized {
		c.mu.Unlock()
		return fmt.Errorf("container init: %w", orgboard.ErrAlreadyInitialized)
	}
	c.loadCacheLocked(ctx)
	c.mu.Unlock()

	c.overlayRemoteSettings(ctx)
	c.loadMemberCompanies(ctx)

	// Settle before enabling persistence so the save effect cannot race the
	// initial in-memory writes.
	if c.settleDelay > 0 {
		timer := time.NewTimer(c.settleDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("container init: %w", ctx.Err())
		case <-timer.C:
		}
	}

	c.mu.Lock()
	c.initialized = true
	c.mu.Unlock()

	c.logger.InfoContext(ctx, "container initialized",
		"settings_row_known", c.SettingsRowID() != "",
		"member_companies", len(c.MemberCompanies()),
	)

	return nil
}

// loadCacheLocked reads the three snapshot keys plus the admin flag.
// Individual failures are logged and skipped.
func (c *Container) loadCacheLocked(ctx context.Context) {
	if raw, found := c.readCacheKey(ctx, orgboard.CacheKeyBulletin); found {
		var entries []orgboard.BBSEntry
		if err := json.Unmarshal([]byte(raw), &entries); err != nil {
			c.logger.WarnContext(ctx, "parse cached bulletin failed", "key", orgboard.CacheKeyBulletin, "error", err)
		} else {
			c.bbs = entries
		}
	}

	if raw, found := c.readCacheKey(ctx, orgboard.CacheKeySettings); found {
		var cached cachedSettings
		if err := json.Unmarshal([]byte(raw), &cached); err != nil {
			c.logger.WarnContext(ctx, "parse cached settings failed", "key", orgboard.CacheKeySettings, "error", err)
		} else {
			c.settings = mergeCachedSettings(c.settings, cached)
		}
	}

	if raw, found := c.readCacheKey(ctx, orgboard.CacheKeyInquiries); found {
		var inquiries []orgboard.Inquiry
		if err := json.Unmarshal([]byte(raw), &inquiries); err != nil {
			c.logger.WarnContext(ctx, "parse cached inquiries failed", "key", orgboard.CacheKeyInquiries, "error", err)
		} else {
			c.inquiries = inquiries
		}
	}

	if raw, found := c.readCacheKey(ctx, orgboard.CacheKeyIsAdmin); found {
		admin, err := strconv.ParseBool(raw)
		if err != nil {
			c.logger.WarnContext(ctx, "parse cached admin flag failed", "key", orgboard.CacheKeyIsAdmin, "error", err)
		} else {
			c.isAdmin = admin
		}
	}
}

func (c *Container) readCacheKey(ctx context.Context, key string) (string, bool) {
	raw, found, err := c.cache.Get(key)
	if err != nil {
		c.logger.WarnContext(ctx, "read cache key failed", "key", key, "error", err)
		return "", false
	}

	return raw, found
}

// mergeCachedSettings shallow-merges stored settings onto base: only
// top-level keys present in storage override defaults.
func mergeCachedSettings(base orgboard.Settings, cached cachedSettings) orgboard.Settings {
	merged := cloneSettings(base)
	if cached.ShowSidebar != nil {
		merged.ShowSidebar = *cached.ShowSidebar
	}
	if cached.RollingImages != nil {
		merged.RollingImages = append([]orgboard.RollingImage(nil), cached.RollingImages...)
	}
	if cached.FounderImageURL != nil {
		merged.FounderImageURL = *cached.FounderImageURL
	}
	if cached.ChairmanImageURL != nil {
		merged.ChairmanImageURL = *cached.ChairmanImageURL
	}
	if cached.LogoImageURL != nil {
		merged.LogoImageURL = *cached.LogoImageURL
	}
	if cached.AdminPassword != nil {
		merged.AdminPassword = *cached.AdminPassword
	}

	return merged
}

// overlayRemoteSettings fetches the oldest settings row and overlays the
// three image URL columns, each falling back to the already-merged local
// value when the remote field is null. The row id is captured for later
// profile-image mirroring.
func (c *Container) overlayRemoteSettings(ctx context.Context) {
	row, found, err := c.remote.FirstSettingsRow(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "fetch remote settings failed", "error", err)
		return
	}
	if !found {
		c.logger.InfoContext(ctx, "no remote settings row; keeping local settings")
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.settingsRowID = row.ID
	if row.LogoImageURL != nil {
		c.settings.LogoImageURL = *row.LogoImageURL
	}
	if row.FounderImageURL != nil {
		c.settings.FounderImageURL = *row.FounderImageURL
	}
	if row.ChairmanImageURL != nil {
		c.settings.ChairmanImageURL = *row.ChairmanImageURL
	}
}

// loadMemberCompanies replaces the in-memory collection wholesale from the
// remote store.
func (c *Container) loadMemberCompanies(ctx context.Context) {
	companies, err := c.remote.ListMemberCompanies(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "fetch member companies failed", "error", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.companies = companies
	c.sortCompaniesLocked()
}
