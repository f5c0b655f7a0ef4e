package store

import (
	"errors"
	"testing"

	"orgboard/pkg/orgboard"
)

func TestSubscribeReceivesChanges(t *testing.T) {
	container := newTestContainer(t, newFakeCache(), newFakeRemote())
	defer container.Close()

	changes, cancel, err := container.Subscribe()
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	defer cancel()

	if _, err := container.AddBBSEntry(orgboard.BBSEntry{Title: "t"}); err != nil {
		t.Fatalf("add bbs entry failed: %v", err)
	}
	if _, err := container.AddInquiry("q"); err != nil {
		t.Fatalf("add inquiry failed: %v", err)
	}
	if err := container.SetIsAdmin(true); err != nil {
		t.Fatalf("set admin flag failed: %v", err)
	}

	want := []ChangeKind{ChangeKindBulletin, ChangeKindInquiries, ChangeKindAdmin}
	for _, kind := range want {
		change, ok := <-changes
		if !ok {
			t.Fatal("change channel closed early")
		}
		if change.Kind != kind {
			t.Errorf("change kind = %q, want %q", change.Kind, kind)
		}
	}
}

func TestSubscribeCancelClosesChannel(t *testing.T) {
	container := newTestContainer(t, newFakeCache(), newFakeRemote())
	defer container.Close()

	changes, cancel, err := container.Subscribe()
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	cancel()
	cancel() // repeated cancel is safe

	if _, ok := <-changes; ok {
		t.Fatal("channel must be closed after cancel")
	}

	// Mutations after cancel must not panic on the removed subscriber.
	if _, err := container.AddBBSEntry(orgboard.BBSEntry{Title: "t"}); err != nil {
		t.Fatalf("add bbs entry failed: %v", err)
	}
}

func TestCloseClosesSubscribers(t *testing.T) {
	container := newTestContainer(t, newFakeCache(), newFakeRemote())

	changes, cancel, err := container.Subscribe()
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	defer cancel()

	if err := container.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if _, ok := <-changes; ok {
		t.Fatal("channel must be closed after container close")
	}

	if _, _, err := container.Subscribe(); !errors.Is(err, orgboard.ErrContainerClosed) {
		t.Fatalf("expected ErrContainerClosed, got %v", err)
	}
}

func TestSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	container := newTestContainer(t, newFakeCache(), newFakeRemote())
	defer container.Close()

	changes, cancel, err := container.Subscribe()
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	defer cancel()

	// Overfill the buffer; mutations must complete without a reader.
	for index := 0; index < subscriberBuffer+4; index++ {
		if _, err := container.AddInquiry("q"); err != nil {
			t.Fatalf("add inquiry %d failed: %v", index, err)
		}
	}

	if got := len(changes); got != subscriberBuffer {
		t.Errorf("buffered changes = %d, want %d", got, subscriberBuffer)
	}
}
