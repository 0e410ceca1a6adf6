package store

import (
	"errors"
	"testing"

	"elysium/models"
)

func TestCatalog_SeedAndGet(t *testing.T) {
	c := NewMemoryCatalogStore(SeedServices())
	if len(c.List()) != 5 {
		t.Fatalf("seed catalog size = %d, want 5", len(c.List()))
	}
	svc, ok := c.Get("2")
	if !ok {
		t.Fatal("service 2 missing")
	}
	if svc.Title != "Midnight Smokey Glam" || svc.Price != "৳8,000" {
		t.Fatalf("service 2 = %+v", svc)
	}
}

func TestCatalog_AddUpdateRemove(t *testing.T) {
	c := NewMemoryCatalogStore(nil)

	svc := models.Service{ID: "10", Title: "Classic Manicure", Price: "৳1,200", Duration: "45m"}
	if err := c.Add(svc); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := c.Add(svc); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if err := c.Add(models.Service{Title: "No ID"}); err == nil {
		t.Fatal("blank id must be rejected")
	}

	svc.Price = "৳1,500"
	if err := c.Update(svc); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := c.Get("10")
	if got.Price != "৳1,500" {
		t.Fatalf("price = %q after update", got.Price)
	}
	if err := c.Update(models.Service{ID: "missing"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := c.Remove("10"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok := c.Get("10"); ok {
		t.Fatal("service still present after remove")
	}
	if err := c.Remove("10"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalog_ListReturnsCopy(t *testing.T) {
	c := NewMemoryCatalogStore(SeedServices())
	list := c.List()
	list[0].Title = "tampered"
	fresh, _ := c.Get(list[0].ID)
	if fresh.Title == "tampered" {
		t.Fatal("List must return a copy of the catalog")
	}
}

func TestCredentials_VerifyExactEquality(t *testing.T) {
	s := NewMemoryCredentialStore(models.AdminCredentials{Username: "admin", Passcode: "elysium2024"})
	if !s.Verify("admin", "elysium2024") {
		t.Fatal("exact credentials must verify")
	}
	if s.Verify("Admin", "elysium2024") || s.Verify("admin", "ELYSIUM2024") {
		t.Fatal("credential comparison must be case-sensitive exact equality")
	}

	s.Update(models.AdminCredentials{Username: "owner", Passcode: "new"})
	if s.Verify("admin", "elysium2024") {
		t.Fatal("old credentials must stop verifying after update")
	}
	if !s.Verify("owner", "new") {
		t.Fatal("updated credentials must verify")
	}
}
