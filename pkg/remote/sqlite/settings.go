package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"orgboard/pkg/orgboard"
)

// FirstSettingsRow returns the oldest settings row by creation time.
func (s *Store) FirstSettingsRow(ctx context.Context) (orgboard.SettingsRow, bool, error) {
	if err := s.guard("first settings row"); err != nil {
		return orgboard.SettingsRow{}, false, err
	}
	if err := ctx.Err(); err != nil {
		return orgboard.SettingsRow{}, false, fmt.Errorf("first settings row: %w", err)
	}

	const query = `
SELECT id, created_at, logo_image_url, founder_image_url, chairman_image_url
FROM site_settings
ORDER BY created_at ASC
LIMIT 1`

	var (
		row       orgboard.SettingsRow
		createdAt string
		logo      sql.NullString
		founder   sql.NullString
		chairman  sql.NullString
	)
	err := s.sqlDB.QueryRowContext(ctx, query).Scan(&row.ID, &createdAt, &logo, &founder, &chairman)
	if errors.Is(err, sql.ErrNoRows) {
		return orgboard.SettingsRow{}, false, nil
	}
	if err != nil {
		return orgboard.SettingsRow{}, false, fmt.Errorf("first settings row: %w", err)
	}

	parsedCreatedAt, err := time.Parse(timeFormat, createdAt)
	if err != nil {
		return orgboard.SettingsRow{}, false, fmt.Errorf("first settings row parse created_at: %w", err)
	}
	row.CreatedAt = parsedCreatedAt
	row.LogoImageURL = nullableString(logo)
	row.FounderImageURL = nullableString(founder)
	row.ChairmanImageURL = nullableString(chairman)

	return row, true, nil
}

// InsertSettingsRow provisions one settings row and returns its id.
//
// Nil image URLs are stored as SQL nulls. An empty id or zero creation time
// is assigned by the store.
func (s *Store) InsertSettingsRow(ctx context.Context, row orgboard.SettingsRow) (orgboard.SettingsRow, error) {
	if err := s.guard("insert settings row"); err != nil {
		return orgboard.SettingsRow{}, err
	}
	if err := ctx.Err(); err != nil {
		return orgboard.SettingsRow{}, fmt.Errorf("insert settings row: %w", err)
	}

	if row.ID == "" {
		row.ID = s.newID()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = s.now()
	}

	const query = `
INSERT INTO site_settings (id, created_at, logo_image_url, founder_image_url, chairman_image_url)
VALUES (?, ?, ?, ?, ?)`

	_, err := s.sqlDB.ExecContext(ctx, query,
		row.ID,
		row.CreatedAt.UTC().Format(timeFormat),
		sqlNullable(row.LogoImageURL),
		sqlNullable(row.FounderImageURL),
		sqlNullable(row.ChairmanImageURL),
	)
	if err != nil {
		return orgboard.SettingsRow{}, fmt.Errorf("insert settings row: %w", err)
	}

	return row, nil
}

// UpdateSettingsImage updates one profile image column on one settings row.
func (s *Store) UpdateSettingsImage(ctx context.Context, rowID string, kind orgboard.ProfileImageKind, imageURL string) error {
	if err := s.guard("update settings image"); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("update settings image: %w", err)
	}
	if rowID == "" {
		return fmt.Errorf("update settings image: missing row id")
	}

	column, err := imageColumnFor(kind)
	if err != nil {
		return fmt.Errorf("update settings image: %w", err)
	}

	result, err := s.sqlDB.ExecContext(ctx,
		"UPDATE site_settings SET "+column+" = ? WHERE id = ?",
		imageURL, rowID,
	)
	if err != nil {
		return fmt.Errorf("update settings image: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update settings image rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update settings image %s: %w", rowID, orgboard.ErrSettingsRowNotFound)
	}

	return nil
}

// imageColumnFor maps a profile image kind to its fixed column name. The
// column is never derived from caller input.
func imageColumnFor(kind orgboard.ProfileImageKind) (string, error) {
	switch kind {
	case orgboard.ProfileImageLogo:
		return "logo_image_url", nil
	case orgboard.ProfileImageFounder:
		return "founder_image_url", nil
	case orgboard.ProfileImageChairman:
		return "chairman_image_url", nil
	default:
		return "", fmt.Errorf("unsupported profile image kind %q", kind)
	}
}

func nullableString(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	cloned := value.String

	return &cloned
}

func sqlNullable(value *string) any {
	if value == nil {
		return nil
	}

	return *value
}
