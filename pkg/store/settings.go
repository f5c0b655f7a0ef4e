package store

import (
	"context"
	"fmt"
	"strconv"

	"orgboard/pkg/orgboard"
)

// AddRollingImage appends one banner to the end of the rolling image
// sequence; insertion order is display order.
func (c *Container) AddRollingImage(imageURL string, linkURL string) (orgboard.RollingImage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guardOpenLocked("add rolling image"); err != nil {
		return orgboard.RollingImage{}, err
	}

	image := orgboard.RollingImage{
		ID:       c.newID(),
		ImageURL: imageURL,
		LinkURL:  linkURL,
	}
	c.settings.RollingImages = append(c.settings.RollingImages, image)
	c.persistLocked()
	c.notifyLocked(ChangeKindSettings)

	return image, nil
}

// UpdateRollingImage replaces the image URL and, when linkURL is non-nil,
// the link of the matching banner. An absent id is a no-op.
func (c *Container) UpdateRollingImage(id string, imageURL string, linkURL *string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guardOpenLocked("update rolling image"); err != nil {
		return false, err
	}

	for index := range c.settings.RollingImages {
		if c.settings.RollingImages[index].ID != id {
			continue
		}
		c.settings.RollingImages[index].ImageURL = imageURL
		if linkURL != nil {
			c.settings.RollingImages[index].LinkURL = *linkURL
		}
		c.persistLocked()
		c.notifyLocked(ChangeKindSettings)

		return true, nil
	}

	return false, nil
}

// DeleteRollingImage removes the matching banner. An absent id is a no-op.
func (c *Container) DeleteRollingImage(id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guardOpenLocked("delete rolling image"); err != nil {
		return false, err
	}

	for index := range c.settings.RollingImages {
		if c.settings.RollingImages[index].ID != id {
			continue
		}
		c.settings.RollingImages = append(
			c.settings.RollingImages[:index],
			c.settings.RollingImages[index+1:]...,
		)
		c.persistLocked()
		c.notifyLocked(ChangeKindSettings)

		return true, nil
	}

	return false, nil
}

// UpdateProfileImage sets one profile image URL in memory immediately, then
// mirrors it to the remote settings row when a row id is known.
//
// This is the optimistic write policy: on remote failure the local value is
// NOT rolled back and the error is returned for the caller to surface. The
// resulting local/remote divergence is a known property of this operation.
func (c *Container) UpdateProfileImage(ctx context.Context, kind orgboard.ProfileImageKind, imageURL string) error {
	if err := kind.Validate(); err != nil {
		return fmt.Errorf("update profile image: %w", err)
	}

	c.mu.Lock()
	if err := c.guardOpenLocked("update profile image"); err != nil {
		c.mu.Unlock()
		return err
	}

	switch kind {
	case orgboard.ProfileImageFounder:
		c.settings.FounderImageURL = imageURL
	case orgboard.ProfileImageChairman:
		c.settings.ChairmanImageURL = imageURL
	case orgboard.ProfileImageLogo:
		c.settings.LogoImageURL = imageURL
	}
	c.persistLocked()
	c.notifyLocked(ChangeKindSettings)
	rowID := c.settingsRowID
	c.mu.Unlock()

	if rowID == "" {
		return nil
	}

	if err := c.remote.UpdateSettingsImage(ctx, rowID, kind, imageURL); err != nil {
		c.logger.WarnContext(ctx, "mirror profile image to remote failed",
			"kind", string(kind),
			"row_id", rowID,
			"error", err,
		)
		return fmt.Errorf("update profile image %s: %w", kind, err)
	}

	return nil
}

// UpdateAdminPassword overwrites the stored admin password.
//
// The password is held in plaintext by design of the consuming site; no
// hashing is applied.
func (c *Container) UpdateAdminPassword(password string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guardOpenLocked("update admin password"); err != nil {
		return err
	}

	c.settings.AdminPassword = password
	c.persistLocked()
	c.notifyLocked(ChangeKindSettings)

	return nil
}

// SetIsAdmin sets the admin flag and persists it immediately, outside the
// general save effect and regardless of initialization state.
func (c *Container) SetIsAdmin(admin bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guardOpenLocked("set admin flag"); err != nil {
		return err
	}

	c.isAdmin = admin
	c.notifyLocked(ChangeKindAdmin)
	if err := c.setCacheString(orgboard.CacheKeyIsAdmin, strconv.FormatBool(admin)); err != nil {
		c.logger.Warn("persist admin flag failed", "error", err)
	}

	return nil
}
