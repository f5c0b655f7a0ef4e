package store

import (
	"context"
	"errors"
	"testing"

	"orgboard/pkg/orgboard"
)

func TestRollingImagesKeepInsertionOrder(t *testing.T) {
	container := newTestContainer(t, newFakeCache(), newFakeRemote(),
		WithIDGenerator(sequentialIDs("img")),
	)
	defer container.Close()

	first, err := container.AddRollingImage("https://img/1", "https://link/1")
	if err != nil {
		t.Fatalf("add first image failed: %v", err)
	}
	second, err := container.AddRollingImage("https://img/2", "")
	if err != nil {
		t.Fatalf("add second image failed: %v", err)
	}

	images := container.Settings().RollingImages
	if len(images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(images))
	}
	if images[0].ID != first.ID || images[1].ID != second.ID {
		t.Errorf("images not in insertion order: %+v", images)
	}
}

func TestUpdateRollingImage(t *testing.T) {
	tests := []struct {
		name     string
		linkURL  *string
		wantLink string
	}{
		{
			name:     "nil link keeps existing value",
			linkURL:  nil,
			wantLink: "https://link/original",
		},
		{
			name:     "non-nil link replaces value",
			linkURL:  stringPointer("https://link/new"),
			wantLink: "https://link/new",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container := newTestContainer(t, newFakeCache(), newFakeRemote())
			defer container.Close()

			created, err := container.AddRollingImage("https://img/original", "https://link/original")
			if err != nil {
				t.Fatalf("add image failed: %v", err)
			}

			found, err := container.UpdateRollingImage(created.ID, "https://img/new", tt.linkURL)
			if err != nil {
				t.Fatalf("update failed: %v", err)
			}
			if !found {
				t.Fatal("update must report found for an existing id")
			}

			image := container.Settings().RollingImages[0]
			if image.ImageURL != "https://img/new" {
				t.Errorf("image url = %q, want %q", image.ImageURL, "https://img/new")
			}
			if image.LinkURL != tt.wantLink {
				t.Errorf("link url = %q, want %q", image.LinkURL, tt.wantLink)
			}
		})
	}
}

func TestDeleteRollingImage(t *testing.T) {
	container := newTestContainer(t, newFakeCache(), newFakeRemote())
	defer container.Close()

	created, err := container.AddRollingImage("https://img/1", "")
	if err != nil {
		t.Fatalf("add image failed: %v", err)
	}

	found, err := container.DeleteRollingImage(created.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !found {
		t.Error("delete must report found for an existing id")
	}
	if len(container.Settings().RollingImages) != 0 {
		t.Error("image not removed")
	}
}

func TestUpdateProfileImageWithoutRowSkipsRemote(t *testing.T) {
	remote := newFakeRemote()
	container := newTestContainer(t, newFakeCache(), remote)
	defer container.Close()

	if err := container.UpdateProfileImage(context.Background(), orgboard.ProfileImageLogo, "https://img/logo"); err != nil {
		t.Fatalf("update profile image failed: %v", err)
	}
	if got := container.Settings().LogoImageURL; got != "https://img/logo" {
		t.Errorf("logo = %q, want %q", got, "https://img/logo")
	}
	if got := remote.imageCallCount(); got != 0 {
		t.Errorf("expected no remote calls without a settings row, got %d", got)
	}
}

func TestUpdateProfileImageMirrorsToRemote(t *testing.T) {
	remote := newFakeRemote()
	remote.settingsRow = orgboard.SettingsRow{ID: "row-1"}
	remote.settingsFound = true

	container := newTestContainer(t, newFakeCache(), remote)
	defer container.Close()

	if err := container.UpdateProfileImage(context.Background(), orgboard.ProfileImageFounder, "https://img/founder"); err != nil {
		t.Fatalf("update profile image failed: %v", err)
	}

	if got := remote.imageCallCount(); got != 1 {
		t.Fatalf("expected 1 remote call, got %d", got)
	}
	call := remote.updateImageCalls[0]
	if call.rowID != "row-1" || call.kind != orgboard.ProfileImageFounder || call.imageURL != "https://img/founder" {
		t.Errorf("unexpected remote call: %+v", call)
	}
}

func TestUpdateProfileImageKeepsLocalValueOnRemoteFailure(t *testing.T) {
	remote := newFakeRemote()
	remote.settingsRow = orgboard.SettingsRow{ID: "row-1"}
	remote.settingsFound = true
	remote.updateImageErr = errors.New("write failed")

	container := newTestContainer(t, newFakeCache(), remote)
	defer container.Close()

	err := container.UpdateProfileImage(context.Background(), orgboard.ProfileImageChairman, "https://img/chairman")
	if err == nil {
		t.Fatal("expected remote failure to surface")
	}

	// The optimistic write stays applied locally even though the mirror failed.
	if got := container.Settings().ChairmanImageURL; got != "https://img/chairman" {
		t.Errorf("chairman = %q, want the optimistic value retained", got)
	}
}

func TestUpdateProfileImageRejectsUnknownKind(t *testing.T) {
	container := newTestContainer(t, newFakeCache(), newFakeRemote())
	defer container.Close()

	if err := container.UpdateProfileImage(context.Background(), orgboard.ProfileImageKind("banner"), "https://img"); err == nil {
		t.Fatal("expected validation error for unknown kind")
	}
}

func TestSetIsAdminPersistsImmediately(t *testing.T) {
	cache := newFakeCache()
	container, err := New(cache, newFakeRemote(), WithSettleDelay(0))
	if err != nil {
		t.Fatalf("new container failed: %v", err)
	}
	defer container.Close()

	// Deliberately before Init: the admin flag bypasses the save effect gate.
	if err := container.SetIsAdmin(true); err != nil {
		t.Fatalf("set admin flag failed: %v", err)
	}

	stored, found := cache.stored(orgboard.CacheKeyIsAdmin)
	if !found {
		t.Fatal("admin flag not written to cache")
	}
	if stored != "true" {
		t.Errorf("stored flag = %q, want %q", stored, "true")
	}
	if !container.IsAdmin() {
		t.Error("admin flag not set in memory")
	}
}

func TestUpdateAdminPassword(t *testing.T) {
	container := newTestContainer(t, newFakeCache(), newFakeRemote())
	defer container.Close()

	if err := container.UpdateAdminPassword("new-password"); err != nil {
		t.Fatalf("update admin password failed: %v", err)
	}
	if got := container.Settings().AdminPassword; got != "new-password" {
		t.Errorf("admin password = %q, want %q", got, "new-password")
	}
}
