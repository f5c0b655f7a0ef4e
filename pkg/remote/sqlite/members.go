package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"orgboard/pkg/orgboard"
)

// ListMemberCompanies returns all member companies ordered by order index
// ascending.
func (s *Store) ListMemberCompanies(ctx context.Context) ([]orgboard.MemberCompany, error) {
	if err := s.guard("list member companies"); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list member companies: %w", err)
	}

	const query = `
SELECT id, order_index, name, ceo, business, address, phone, website_url, created_at, updated_at
FROM member_companies
ORDER BY order_index ASC`

	rows, err := s.sqlDB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list member companies: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	companies := make([]orgboard.MemberCompany, 0)
	for rows.Next() {
		company, err := scanMemberCompany(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list member companies: %w", err)
		}
		companies = append(companies, company)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list member companies: %w", err)
	}

	return companies, nil
}

// InsertMemberCompany inserts one member company and returns the stored row.
//
// The store assigns the id and both timestamps; input values for those
// fields are ignored.
func (s *Store) InsertMemberCompany(ctx context.Context, company orgboard.MemberCompany) (orgboard.MemberCompany, error) {
	if err := s.guard("insert member company"); err != nil {
		return orgboard.MemberCompany{}, err
	}
	if err := ctx.Err(); err != nil {
		return orgboard.MemberCompany{}, fmt.Errorf("insert member company: %w", err)
	}
	if err := company.Validate(); err != nil {
		return orgboard.MemberCompany{}, fmt.Errorf("insert member company: %w", err)
	}

	company.ID = s.newID()
	now := s.now()
	company.CreatedAt = now
	company.UpdatedAt = now

	const query = `
INSERT INTO member_companies (id, order_index, name, ceo, business, address, phone, website_url, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.sqlDB.ExecContext(ctx, query,
		company.ID,
		company.OrderIndex,
		company.Name,
		company.CEO,
		company.Business,
		company.Address,
		company.Phone,
		company.WebsiteURL,
		company.CreatedAt.Format(timeFormat),
		company.UpdatedAt.Format(timeFormat),
	)
	if err != nil {
		return orgboard.MemberCompany{}, fmt.Errorf("insert member company: %w", err)
	}

	return s.getMemberCompany(ctx, company.ID)
}

// UpdateMemberCompany updates one member company by id and returns the
// stored row.
func (s *Store) UpdateMemberCompany(ctx context.Context, company orgboard.MemberCompany) (orgboard.MemberCompany, error) {
	if err := s.guard("update member company"); err != nil {
		return orgboard.MemberCompany{}, err
	}
	if err := ctx.Err(); err != nil {
		return orgboard.MemberCompany{}, fmt.Errorf("update member company: %w", err)
	}
	if company.ID == "" {
		return orgboard.MemberCompany{}, fmt.Errorf("update member company: missing id")
	}
	if err := company.Validate(); err != nil {
		return orgboard.MemberCompany{}, fmt.Errorf("update member company: %w", err)
	}

	const query = `
UPDATE member_companies
SET order_index = ?, name = ?, ceo = ?, business = ?, address = ?, phone = ?, website_url = ?, updated_at = ?
WHERE id = ?`

	result, err := s.sqlDB.ExecContext(ctx, query,
		company.OrderIndex,
		company.Name,
		company.CEO,
		company.Business,
		company.Address,
		company.Phone,
		company.WebsiteURL,
		s.now().Format(timeFormat),
		company.ID,
	)
	if err != nil {
		return orgboard.MemberCompany{}, fmt.Errorf("update member company: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return orgboard.MemberCompany{}, fmt.Errorf("update member company rows affected: %w", err)
	}
	if affected == 0 {
		return orgboard.MemberCompany{}, fmt.Errorf("update member company %s: %w", company.ID, orgboard.ErrMemberCompanyNotFound)
	}

	return s.getMemberCompany(ctx, company.ID)
}

// DeleteMemberCompany deletes one member company by id. Deleting an absent
// id is not an error.
func (s *Store) DeleteMemberCompany(ctx context.Context, id string) error {
	if err := s.guard("delete member company"); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("delete member company: %w", err)
	}
	if id == "" {
		return fmt.Errorf("delete member company: missing id")
	}

	if _, err := s.sqlDB.ExecContext(ctx, "DELETE FROM member_companies WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete member company: %w", err)
	}

	return nil
}

func (s *Store) getMemberCompany(ctx context.Context, id string) (orgboard.MemberCompany, error) {
	const query = `
SELECT id, order_index, name, ceo, business, address, phone, website_url, created_at, updated_at
FROM member_companies
WHERE id = ?`

	row := s.sqlDB.QueryRowContext(ctx, query, id)
	company, err := scanMemberCompany(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return orgboard.MemberCompany{}, fmt.Errorf("get member company %s: %w", id, orgboard.ErrMemberCompanyNotFound)
	}
	if err != nil {
		return orgboard.MemberCompany{}, fmt.Errorf("get member company %s: %w", id, err)
	}

	return company, nil
}

func scanMemberCompany(scan func(targets ...any) error) (orgboard.MemberCompany, error) {
	var (
		company   orgboard.MemberCompany
		createdAt string
		updatedAt string
	)
	if err := scan(
		&company.ID,
		&company.OrderIndex,
		&company.Name,
		&company.CEO,
		&company.Business,
		&company.Address,
		&company.Phone,
		&company.WebsiteURL,
		&createdAt,
		&updatedAt,
	); err != nil {
		return orgboard.MemberCompany{}, err
	}

	parsedCreatedAt, err := time.Parse(timeFormat, createdAt)
	if err != nil {
		return orgboard.MemberCompany{}, fmt.Errorf("parse created_at: %w", err)
	}
	parsedUpdatedAt, err := time.Parse(timeFormat, updatedAt)
	if err != nil {
		return orgboard.MemberCompany{}, fmt.Errorf("parse updated_at: %w", err)
	}
	company.CreatedAt = parsedCreatedAt
	company.UpdatedAt = parsedUpdatedAt

	return company, nil
}
