package store

import (
	"context"
	"sync"
	"testing"

	"orgboard/pkg/orgboard"
)

type fakeCache struct {
	mu     sync.Mutex
	values map[string]string
	getErr error
	setErr error
	sets   []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]string)}
}

func (f *fakeCache) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return "", false, f.getErr
	}
	value, found := f.values[key]

	return value, found, nil
}

func (f *fakeCache) Set(key string, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sets = append(f.sets, key)
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value

	return nil
}

func (f *fakeCache) stored(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	value, found := f.values[key]

	return value, found
}

func (f *fakeCache) setCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.sets)
}

type updateImageCall struct {
	rowID    string
	kind     orgboard.ProfileImageKind
	imageURL string
}

type fakeRemote struct {
	mu sync.Mutex

	settingsRow   orgboard.SettingsRow
	settingsFound bool
	settingsErr   error

	updateImageErr   error
	updateImageCalls []updateImageCall

	companies []orgboard.MemberCompany
	listErr   error

	insertResponse *orgboard.MemberCompany
	insertErr      error
	updateResponse *orgboard.MemberCompany
	updateErr      error
	deleteErr      error
	deleted        []string

	nextID int
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{}
}

func (f *fakeRemote) FirstSettingsRow(_ context.Context) (orgboard.SettingsRow, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.settingsErr != nil {
		return orgboard.SettingsRow{}, false, f.settingsErr
	}

	return f.settingsRow, f.settingsFound, nil
}

func (f *fakeRemote) UpdateSettingsImage(_ context.Context, rowID string, kind orgboard.ProfileImageKind, imageURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.updateImageCalls = append(f.updateImageCalls, updateImageCall{
		rowID:    rowID,
		kind:     kind,
		imageURL: imageURL,
	})

	return f.updateImageErr
}

func (f *fakeRemote) ListMemberCompanies(_ context.Context) ([]orgboard.MemberCompany, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}

	return append([]orgboard.MemberCompany(nil), f.companies...), nil
}

func (f *fakeRemote) InsertMemberCompany(_ context.Context, company orgboard.MemberCompany) (orgboard.MemberCompany, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.insertErr != nil {
		return orgboard.MemberCompany{}, f.insertErr
	}
	if f.insertResponse != nil {
		return *f.insertResponse, nil
	}
	f.nextID++
	company.ID = "company-" + string(rune('0'+f.nextID))

	return company, nil
}

func (f *fakeRemote) UpdateMemberCompany(_ context.Context, company orgboard.MemberCompany) (orgboard.MemberCompany, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updateErr != nil {
		return orgboard.MemberCompany{}, f.updateErr
	}
	if f.updateResponse != nil {
		return *f.updateResponse, nil
	}

	return company, nil
}

func (f *fakeRemote) DeleteMemberCompany(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)

	return nil
}

func (f *fakeRemote) imageCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.updateImageCalls)
}

type fakeGenerator struct {
	mu       sync.Mutex
	generate func(ctx context.Context, req orgboard.GenerateRequest) (string, error)
	requests []orgboard.GenerateRequest
}

func (f *fakeGenerator) Generate(ctx context.Context, req orgboard.GenerateRequest) (string, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	generate := f.generate
	f.mu.Unlock()

	if generate == nil {
		return "", nil
	}

	return generate(ctx, req)
}

func (f *fakeGenerator) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.requests)
}

// newTestContainer builds an initialized container with no settle delay.
func newTestContainer(t *testing.T, cache *fakeCache, remote *fakeRemote, options ...Option) *Container {
	t.Helper()

	options = append([]Option{WithSettleDelay(0)}, options...)
	container, err := New(cache, remote, options...)
	if err != nil {
		t.Fatalf("new container failed: %v", err)
	}
	if err := container.Init(context.Background()); err != nil {
		t.Fatalf("init container failed: %v", err)
	}

	return container
}

func stringPointer(value string) *string {
	return &value
}
