package orgboard

import (
	"context"
	"time"
)

// SettingsRow is one row of the remote settings table.
//
// Image URL fields are nil when the remote column is null; the container
// falls back to the locally merged value for nil fields at load time.
type SettingsRow struct {
	ID               string
	CreatedAt        time.Time
	LogoImageURL     *string
	FounderImageURL  *string
	ChairmanImageURL *string
}

// RemoteStore performs row-level reads and writes against the shared backend
// tables. No transactions, no batching, no retries.
type RemoteStore interface {
	// FirstSettingsRow returns the oldest settings row by creation time.
	//
	// found is false when the table is empty.
	FirstSettingsRow(ctx context.Context) (row SettingsRow, found bool, err error)
	// UpdateSettingsImage updates one profile image column on one settings row.
	UpdateSettingsImage(ctx context.Context, rowID string, kind ProfileImageKind, imageURL string) error
	// ListMemberCompanies returns all member companies ordered by order index
	// ascending.
	ListMemberCompanies(ctx context.Context) ([]MemberCompany, error)
	// InsertMemberCompany inserts one member company and returns the stored
	// row, including remote-assigned id and timestamps.
	InsertMemberCompany(ctx context.Context, company MemberCompany) (MemberCompany, error)
	// UpdateMemberCompany updates one member company by id and returns the
	// stored row.
	UpdateMemberCompany(ctx context.Context, company MemberCompany) (MemberCompany, error)
	// DeleteMemberCompany deletes one member company by id. Deleting an
	// absent id is not an error.
	DeleteMemberCompany(ctx context.Context, id string) error
}
