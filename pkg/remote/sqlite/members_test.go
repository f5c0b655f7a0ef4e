package sqlite

import (
	"context"
	"errors"
	"testing"

	"orgboard/pkg/orgboard"
)

func TestInsertMemberCompanyAssignsServerFields(t *testing.T) {
	store := newTestStore(t)

	stored, err := store.InsertMemberCompany(context.Background(), orgboard.MemberCompany{
		ID:         "client-id-is-ignored",
		Name:       "Acme",
		CEO:        "Jo Kim",
		OrderIndex: 1,
	})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if stored.ID == "" || stored.ID == "client-id-is-ignored" {
		t.Errorf("store must assign its own id, got %q", stored.ID)
	}
	if stored.CreatedAt.IsZero() || stored.UpdatedAt.IsZero() {
		t.Error("store must assign both timestamps")
	}
	if stored.Name != "Acme" || stored.CEO != "Jo Kim" {
		t.Errorf("content fields not stored: %+v", stored)
	}
}

func TestInsertMemberCompanyValidation(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.InsertMemberCompany(context.Background(), orgboard.MemberCompany{OrderIndex: 0}); err == nil {
		t.Fatal("expected validation error for missing name")
	}
}

func TestListMemberCompaniesOrdersByIndex(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, company := range []orgboard.MemberCompany{
		{Name: "Charlie", OrderIndex: 9},
		{Name: "Alpha", OrderIndex: 1},
		{Name: "Bravo", OrderIndex: 4},
	} {
		if _, err := store.InsertMemberCompany(ctx, company); err != nil {
			t.Fatalf("insert %s failed: %v", company.Name, err)
		}
	}

	companies, err := store.ListMemberCompanies(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(companies) != 3 {
		t.Fatalf("expected 3 companies, got %d", len(companies))
	}
	for index, wantName := range []string{"Alpha", "Bravo", "Charlie"} {
		if companies[index].Name != wantName {
			t.Errorf("companies[%d].Name = %q, want %q", index, companies[index].Name, wantName)
		}
	}
}

func TestListMemberCompaniesEmptyTable(t *testing.T) {
	store := newTestStore(t)

	companies, err := store.ListMemberCompanies(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(companies) != 0 {
		t.Errorf("expected empty list, got %d entries", len(companies))
	}
}

func TestUpdateMemberCompany(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.InsertMemberCompany(ctx, orgboard.MemberCompany{Name: "Original", OrderIndex: 1})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	created.Name = "Renamed"
	created.OrderIndex = 7
	updated, err := store.UpdateMemberCompany(ctx, created)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Renamed" || updated.OrderIndex != 7 {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.CreatedAt.IsZero() {
		t.Error("created_at lost on update")
	}
}

func TestUpdateMemberCompanyMissingRow(t *testing.T) {
	store := newTestStore(t)

	_, err := store.UpdateMemberCompany(context.Background(), orgboard.MemberCompany{
		ID:   "missing",
		Name: "n",
	})
	if !errors.Is(err, orgboard.ErrMemberCompanyNotFound) {
		t.Fatalf("expected ErrMemberCompanyNotFound, got %v", err)
	}
}

func TestDeleteMemberCompany(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.InsertMemberCompany(ctx, orgboard.MemberCompany{Name: "Doomed", OrderIndex: 1})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if err := store.DeleteMemberCompany(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	companies, err := store.ListMemberCompanies(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(companies) != 0 {
		t.Errorf("company not removed, got %d entries", len(companies))
	}

	// Deleting an absent id is not an error.
	if err := store.DeleteMemberCompany(ctx, created.ID); err != nil {
		t.Fatalf("repeated delete failed: %v", err)
	}
}
