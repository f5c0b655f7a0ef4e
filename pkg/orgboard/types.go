package orgboard

import (
	"fmt"
	"strings"
	"time"
)

// InquiryStatus identifies the lifecycle state of one visitor inquiry.
type InquiryStatus string

const (
	// InquiryStatusPending identifies an inquiry awaiting an answer.
	InquiryStatusPending InquiryStatus = "pending"
	// InquiryStatusAnswered identifies an inquiry with a stored answer.
	InquiryStatusAnswered InquiryStatus = "answered"
)

// Validate checks whether this status value is supported.
func (s InquiryStatus) Validate() error {
	switch s {
	case InquiryStatusPending, InquiryStatusAnswered:
		return nil
	default:
		return fmt.Errorf("validate inquiry status: unsupported status %q", s)
	}
}

// BBSEntry is one bulletin-board post.
type BBSEntry struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// BBSEntryPatch carries optional field overrides for one bulletin entry.
//
// Nil fields keep the existing value.
type BBSEntryPatch struct {
	Category *string
	Title    *string
	Content  *string
	Author   *string
}

// Inquiry is one visitor question submitted through the public site.
type Inquiry struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	Status    InquiryStatus `json:"status"`
	Answer    string        `json:"answer,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// RollingImage is one promotional banner inside Settings.
//
// Insertion order within Settings.RollingImages is display order.
type RollingImage struct {
	ID       string `json:"id"`
	ImageURL string `json:"image_url"`
	LinkURL  string `json:"link_url,omitempty"`
}

// Settings is the singleton site configuration.
type Settings struct {
	ShowSidebar      bool           `json:"show_sidebar"`
	RollingImages    []RollingImage `json:"rolling_images"`
	FounderImageURL  string         `json:"founder_image_url"`
	ChairmanImageURL string         `json:"chairman_image_url"`
	LogoImageURL     string         `json:"logo_image_url"`
	AdminPassword    string         `json:"admin_password"`
}

// ProfileImageKind selects one of the three remotely mirrored profile images.
type ProfileImageKind string

const (
	// ProfileImageFounder selects the founder portrait.
	ProfileImageFounder ProfileImageKind = "founder"
	// ProfileImageChairman selects the chairman portrait.
	ProfileImageChairman ProfileImageKind = "chairman"
	// ProfileImageLogo selects the site logo.
	ProfileImageLogo ProfileImageKind = "logo"
)

// Validate checks whether this kind value is supported.
func (k ProfileImageKind) Validate() error {
	switch k {
	case ProfileImageFounder, ProfileImageChairman, ProfileImageLogo:
		return nil
	default:
		return fmt.Errorf("validate profile image kind: unsupported kind %q", k)
	}
}

// MemberCompany is one member-company listing.
//
// The remote store is the sole source of truth; in-memory copies are rebuilt
// from remote responses and kept sorted by OrderIndex ascending.
type MemberCompany struct {
	ID         string    `json:"id"`
	OrderIndex int       `json:"order_index"`
	Name       string    `json:"name"`
	CEO        string    `json:"ceo"`
	Business   string    `json:"business"`
	Address    string    `json:"address"`
	Phone      string    `json:"phone"`
	WebsiteURL string    `json:"website_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Validate checks the minimum contract for one member company write.
func (c MemberCompany) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("validate member company: missing name")
	}
	if c.OrderIndex < 0 {
		return fmt.Errorf("validate member company: order index must be >= 0")
	}

	return nil
}

// WritePolicy names how mutations of one entity reach the remote store.
type WritePolicy string

const (
	// WritePolicyLocalOnly keeps the entity in memory and the local cache only.
	WritePolicyLocalOnly WritePolicy = "local-only"
	// WritePolicyOptimistic changes in-memory state before remote confirmation.
	WritePolicyOptimistic WritePolicy = "optimistic"
	// WritePolicyRemoteAuthoritative changes in-memory state only from a
	// successful remote response.
	WritePolicyRemoteAuthoritative WritePolicy = "remote-authoritative"
)
