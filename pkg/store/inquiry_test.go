package store

import (
	"testing"

	"orgboard/pkg/orgboard"
)

func TestAddInquiryStartsPending(t *testing.T) {
	container := newTestContainer(t, newFakeCache(), newFakeRemote())
	defer container.Close()

	inquiry, err := container.AddInquiry("when was the organization founded?")
	if err != nil {
		t.Fatalf("add inquiry failed: %v", err)
	}
	if inquiry.Status != orgboard.InquiryStatusPending {
		t.Errorf("status = %q, want %q", inquiry.Status, orgboard.InquiryStatusPending)
	}
	if inquiry.ID == "" {
		t.Error("inquiry id not assigned")
	}

	second, err := container.AddInquiry("second question")
	if err != nil {
		t.Fatalf("add second inquiry failed: %v", err)
	}

	inquiries := container.Inquiries()
	if len(inquiries) != 2 || inquiries[0].ID != second.ID {
		t.Errorf("inquiries not newest-first: %+v", inquiries)
	}
}

func TestAnswerInquiryIsIdempotent(t *testing.T) {
	container := newTestContainer(t, newFakeCache(), newFakeRemote())
	defer container.Close()

	created, err := container.AddInquiry("question")
	if err != nil {
		t.Fatalf("add inquiry failed: %v", err)
	}

	for call := 0; call < 2; call++ {
		found, err := container.AnswerInquiry(created.ID, "the answer")
		if err != nil {
			t.Fatalf("answer call %d failed: %v", call, err)
		}
		if !found {
			t.Fatalf("answer call %d reported not found", call)
		}
	}

	inquiry := container.Inquiries()[0]
	if inquiry.Status != orgboard.InquiryStatusAnswered {
		t.Errorf("status = %q, want %q", inquiry.Status, orgboard.InquiryStatusAnswered)
	}
	if inquiry.Answer != "the answer" {
		t.Errorf("answer = %q, want %q", inquiry.Answer, "the answer")
	}

	found, err := container.AnswerInquiry("missing", "ignored")
	if err != nil {
		t.Fatalf("answer missing failed: %v", err)
	}
	if found {
		t.Error("answering an absent id must report not found")
	}
}

func TestDeleteInquiry(t *testing.T) {
	container := newTestContainer(t, newFakeCache(), newFakeRemote())
	defer container.Close()

	created, err := container.AddInquiry("question")
	if err != nil {
		t.Fatalf("add inquiry failed: %v", err)
	}

	found, err := container.DeleteInquiry(created.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !found {
		t.Error("delete must report found for an existing id")
	}
	if len(container.Inquiries()) != 0 {
		t.Error("inquiry not removed")
	}
}
