// Package store implements the reactive state container for the
// organizational website.
//
// The container holds all in-memory application state (bulletin entries,
// inquiries, site settings, member companies, admin flag) and coordinates it
// with a LocalCache and a RemoteStore. It cannot be constructed without both
// collaborators; the text generator is optional and its absence surfaces as
// orgboard.ErrGeneratorNotConfigured when AskAI is called.
package store

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"orgboard/pkg/orgboard"

	"github.com/google/uuid"
)

const defaultSettleDelay = 200 * time.Millisecond

// Option mutates container configuration at construction time.
type Option func(*Container)

// WithLogger injects a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(container *Container) {
		if logger != nil {
			container.logger = logger
		}
	}
}

// WithTextGenerator injects an optional text generation client.
func WithTextGenerator(generator orgboard.TextGenerator) Option {
	return func(container *Container) {
		container.generator = generator
	}
}

// WithDefaultSettings overrides the built-in default settings used before
// cached and remote values are merged in.
func WithDefaultSettings(settings orgboard.Settings) Option {
	return func(container *Container) {
		container.settings = cloneSettings(settings)
	}
}

// WithSettleDelay overrides the fixed delay between the remote fetches and
// enabling the save effect. Zero disables the delay.
func WithSettleDelay(delay time.Duration) Option {
	return func(container *Container) {
		if delay >= 0 {
			container.settleDelay = delay
		}
	}
}

// WithClock injects a time source.
func WithClock(clock func() time.Time) Option {
	return func(container *Container) {
		if clock != nil {
			container.clock = clock
		}
	}
}

// WithIDGenerator injects an identifier source for created entities.
func WithIDGenerator(newID func() string) Option {
	return func(container *Container) {
		if newID != nil {
			container.newID = newID
		}
	}
}

// Container is the dependency-injected application state object.
//
// All exported methods are safe for concurrent use. Mutations update
// in-memory state first and mirror bulletin, settings, and inquiry state to
// the local cache once initialization has completed; member-company and
// profile-image mutations additionally involve the remote store according to
// their write policy.
type Container struct {
	logger      *slog.Logger
	cache       orgboard.LocalCache
	remote      orgboard.RemoteStore
	generator   orgboard.TextGenerator
	clock       func() time.Time
	newID       func() string
	settleDelay time.Duration

	mu            sync.Mutex
	initialized   bool
	closed        bool
	busyCalls     int
	isAdmin       bool
	settingsRowID string
	bbs           []orgboard.BBSEntry
	inquiries     []orgboard.Inquiry
	settings      orgboard.Settings
	companies     []orgboard.MemberCompany

	subscribers      map[int]chan Change
	nextSubscriberID int
}

// DefaultSettings returns the built-in settings used before any cached or
// remote values are merged in.
func DefaultSettings() orgboard.Settings {
	return orgboard.Settings{
		ShowSidebar:   true,
		RollingImages: []orgboard.RollingImage{},
	}
}

// New constructs one state container from its collaborators.
func New(cache orgboard.LocalCache, remote orgboard.RemoteStore, options ...Option) (*Container, error) {
	if cache == nil {
		return nil, fmt.Errorf("new container: nil local cache")
	}
	if remote == nil {
		return nil, fmt.Errorf("new container: nil remote store")
	}

	container := &Container{
		logger:      slog.Default(),
		cache:       cache,
		remote:      remote,
		clock:       time.Now,
		newID:       uuid.NewString,
		settleDelay: defaultSettleDelay,
		settings:    DefaultSettings(),
		subscribers: make(map[int]chan Change),
	}
	for _, option := range options {
		option(container)
	}

	return container, nil
}

// Close disposes the container and closes all change subscriptions.
//
// Close is idempotent. Mutations after Close fail with
// orgboard.ErrContainerClosed.
func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	for id, subscriber := range c.subscribers {
		close(subscriber)
		delete(c.subscribers, id)
	}

	return nil
}

// Initialized reports whether Init has completed and persistence is enabled.
func (c *Container) Initialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.initialized
}

// IsAdmin reports the current admin flag.
func (c *Container) IsAdmin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.isAdmin
}

// Busy reports whether at least one text generation call is in flight.
func (c *Container) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.busyCalls > 0
}

// BBSEntries returns a copy of the bulletin collection, newest first.
func (c *Container) BBSEntries() []orgboard.BBSEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	return cloneBBSEntries(c.bbs)
}

// Inquiries returns a copy of the inquiry collection.
func (c *Container) Inquiries() []orgboard.Inquiry {
	c.mu.Lock()
	defer c.mu.Unlock()

	return cloneInquiries(c.inquiries)
}

// Settings returns a copy of the current site settings.
func (c *Container) Settings() orgboard.Settings {
	c.mu.Lock()
	defer c.mu.Unlock()

	return cloneSettings(c.settings)
}

// MemberCompanies returns a copy of the member-company collection, sorted by
// order index ascending.
func (c *Container) MemberCompanies() []orgboard.MemberCompany {
	c.mu.Lock()
	defer c.mu.Unlock()

	return cloneMemberCompanies(c.companies)
}

// SettingsRowID returns the remote settings row identifier captured at load
// time, or "" when no row was found.
func (c *Container) SettingsRowID() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.settingsRowID
}

// guardOpenLocked rejects operations on a disposed container.
func (c *Container) guardOpenLocked(operation string) error {
	if c.closed {
		return fmt.Errorf("%s: %w", operation, orgboard.ErrContainerClosed)
	}

	return nil
}

func (c *Container) now() time.Time {
	return c.clock().UTC()
}
