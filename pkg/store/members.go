package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"orgboard/pkg/orgboard"
)

// AddMemberCompany inserts company into the remote store and, on success,
// merges the remote response into the in-memory collection.
//
// This is the remote-authoritative write policy: on failure the in-memory
// collection is left unchanged, and the stored entry carries the remote
// response's fields, not the input's.
func (c *Container) AddMemberCompany(ctx context.Context, company orgboard.MemberCompany) (orgboard.MemberCompany, error) {
	if err := company.Validate(); err != nil {
		return orgboard.MemberCompany{}, fmt.Errorf("add member company: %w", err)
	}
	if err := c.guardOpen("add member company"); err != nil {
		return orgboard.MemberCompany{}, err
	}

	stored, err := c.remote.InsertMemberCompany(ctx, company)
	if err != nil {
		return orgboard.MemberCompany{}, fmt.Errorf("add member company: %w", err)
	}

	c.mu.Lock()
	c.companies = append(c.companies, stored)
	c.sortCompaniesLocked()
	c.notifyLocked(ChangeKindMemberCompanies)
	c.mu.Unlock()

	return stored, nil
}

// UpdateMemberCompany updates company in the remote store by id and, on
// success, replaces the matching in-memory entry with the remote response.
func (c *Container) UpdateMemberCompany(ctx context.Context, company orgboard.MemberCompany) (orgboard.MemberCompany, error) {
	if company.ID == "" {
		return orgboard.MemberCompany{}, fmt.Errorf("update member company: missing id")
	}
	if err := company.Validate(); err != nil {
		return orgboard.MemberCompany{}, fmt.Errorf("update member company: %w", err)
	}
	if err := c.guardOpen("update member company"); err != nil {
		return orgboard.MemberCompany{}, err
	}

	stored, err := c.remote.UpdateMemberCompany(ctx, company)
	if err != nil {
		return orgboard.MemberCompany{}, fmt.Errorf("update member company: %w", err)
	}

	c.mu.Lock()
	replaced := false
	for index := range c.companies {
		if c.companies[index].ID == stored.ID {
			c.companies[index] = stored
			replaced = true
			break
		}
	}
	if !replaced {
		c.companies = append(c.companies, stored)
	}
	c.sortCompaniesLocked()
	c.notifyLocked(ChangeKindMemberCompanies)
	c.mu.Unlock()

	return stored, nil
}

// DeleteMemberCompany deletes the company remotely and, on success, removes
// it from the in-memory collection.
func (c *Container) DeleteMemberCompany(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("delete member company: missing id")
	}
	if err := c.guardOpen("delete member company"); err != nil {
		return err
	}

	if err := c.remote.DeleteMemberCompany(ctx, id); err != nil {
		return fmt.Errorf("delete member company: %w", err)
	}

	c.mu.Lock()
	for index := range c.companies {
		if c.companies[index].ID == id {
			c.companies = append(c.companies[:index], c.companies[index+1:]...)
			break
		}
	}
	c.notifyLocked(ChangeKindMemberCompanies)
	c.mu.Unlock()

	return nil
}

func (c *Container) guardOpen(operation string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.guardOpenLocked(operation)
}

func (c *Container) sortCompaniesLocked() {
	slices.SortStableFunc(c.companies, func(a, b orgboard.MemberCompany) int {
		return cmp.Compare(a.OrderIndex, b.OrderIndex)
	})
}
