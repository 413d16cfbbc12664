package users

import (
	"context"
	"errors"
	"testing"
)

func TestUpsertFromAuthValidates(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	if err := svc.UpsertFromAuth(context.Background(), User{ID: "", Email: "a@b.c"}); err == nil {
		t.Fatal("expected error for missing id")
	}
	if err := svc.UpsertFromAuth(context.Background(), User{ID: "u1", Email: " "}); err == nil {
		t.Fatal("expected error for missing email")
	}
	if err := svc.UpsertFromAuth(context.Background(), User{ID: "u1", Email: "a@b.c", GivenName: "Ana"}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, err := svc.GetByID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.GivenName != "Ana" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestEnsureExists(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	if err := svc.EnsureExists(context.Background(), "guest:abc", "", "Ana Ruiz"); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	got, err := svc.GetByID(context.Background(), "guest:abc")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.GivenName != "Ana" || got.FamilyName != "Ruiz" {
		t.Fatalf("unexpected names: %+v", got)
	}

	// A second call must not overwrite what is already there.
	if err := repo.Upsert(context.Background(), User{ID: "guest:abc", Email: "kept@example.com"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := svc.EnsureExists(context.Background(), "guest:abc", "other@example.com", "Other"); err != nil {
		t.Fatalf("ensure again: %v", err)
	}
	got, _ = svc.GetByID(context.Background(), "guest:abc")
	if got.Email != "kept@example.com" {
		t.Fatalf("existing row should be untouched: %+v", got)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
