package store

import (
	"orgboard/pkg/orgboard"
)

// AddBBSEntry assigns a fresh id and creation timestamp to entry and
// prepends it to the bulletin collection, keeping newest-first order.
func (c *Container) AddBBSEntry(entry orgboard.BBSEntry) (orgboard.BBSEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guardOpenLocked("add bbs entry"); err != nil {
		return orgboard.BBSEntry{}, err
	}

	entry.ID = c.newID()
	entry.CreatedAt = c.now()
	c.bbs = append([]orgboard.BBSEntry{entry}, c.bbs...)
	c.persistLocked()
	c.notifyLocked(ChangeKindBulletin)

	return entry, nil
}

// UpdateBBSEntry merges patch fields into the matching entry.
//
// An absent id is a no-op; found reports whether an entry was updated.
func (c *Container) UpdateBBSEntry(id string, patch orgboard.BBSEntryPatch) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guardOpenLocked("update bbs entry"); err != nil {
		return false, err
	}

	for index := range c.bbs {
		if c.bbs[index].ID != id {
			continue
		}
		if patch.Category != nil {
			c.bbs[index].Category = *patch.Category
		}
		if patch.Title != nil {
			c.bbs[index].Title = *patch.Title
		}
		if patch.Content != nil {
			c.bbs[index].Content = *patch.Content
		}
		if patch.Author != nil {
			c.bbs[index].Author = *patch.Author
		}
		c.persistLocked()
		c.notifyLocked(ChangeKindBulletin)

		return true, nil
	}

	return false, nil
}

// DeleteBBSEntry removes the matching entry. An absent id is a no-op.
func (c *Container) DeleteBBSEntry(id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.guardOpenLocked("delete bbs entry"); err != nil {
		return false, err
	}

	for index := range c.bbs {
		if c.bbs[index].ID != id {
			continue
		}
		c.bbs = append(c.bbs[:index], c.bbs[index+1:]...)
		c.persistLocked()
		c.notifyLocked(ChangeKindBulletin)

		return true, nil
	}

	return false, nil
}
