package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/MyeongsupWorkSpace/sepnp/internal/model/entity"
	"github.com/MyeongsupWorkSpace/sepnp/internal/testutil"
)

// TestResolveSupplierCreatesAndMerges covers both arms of the upsert:
// first call inserts, second call with the same name merges only the
// non-empty fields.
func TestResolveSupplierCreatesAndMerges(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	first, err := repo.ResolveSupplier(ctx, SupplierInput{
		Name:    "  서울페이퍼 ",
		Contact: "이대리",
		Email:   "seoul@example.com",
	})
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}

	second, err := repo.ResolveSupplier(ctx, SupplierInput{
		Name:  "서울페이퍼",
		Phone: "02-700-8000",
	})
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if first != second {
		t.Fatalf("expected same supplier id, got %s and %s", first, second)
	}

	var supplier entity.Supplier
	db.First(&supplier, "id = ?", first)
	if supplier.Name != "서울페이퍼" {
		t.Errorf("expected trimmed name stored, got %q", supplier.Name)
	}
	if supplier.Phone != "02-700-8000" {
		t.Errorf("expected phone merged in, got %q", supplier.Phone)
	}
	if supplier.Contact != "이대리" || supplier.Email != "seoul@example.com" {
		t.Errorf("expected omitted fields kept, got contact=%q email=%q", supplier.Contact, supplier.Email)
	}

	var count int64
	db.Model(&entity.Supplier{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 supplier row, got %d", count)
	}
}

// TestResolveMaterialEmptyFieldsNoOverwrite resolves with all optional
// fields empty; the stored row must keep its values.
func TestResolveMaterialEmptyFieldsNoOverwrite(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	testutil.SeedTestMaterial(t, db, "mat-001", "오시 가공", "ea")

	id, err := repo.ResolveMaterial(ctx, MaterialInput{Name: "오시 가공"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if id != "mat-001" {
		t.Fatalf("expected existing material reused, got %s", id)
	}

	var material entity.Material
	db.First(&material, "id = ?", id)
	if material.Unit != "ea" {
		t.Errorf("expected unit kept, got %q", material.Unit)
	}
}

// TestCreateSupplierDuplicateName maps the unique violation onto
// ErrConflict.
func TestCreateSupplierDuplicateName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	if err := repo.CreateSupplier(ctx, &entity.Supplier{Name: "중복업체"}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	err := repo.CreateSupplier(ctx, &entity.Supplier{Name: "중복업체"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

// TestSearchSuppliersPartialMatch checks the case-insensitive partial
// match used by the supplier picker.
func TestSearchSuppliersPartialMatch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	testutil.SeedTestSupplier(t, db, "sup-a", "한국특수지")
	testutil.SeedTestSupplier(t, db, "sup-b", "대한제본")

	results, err := repo.SearchSuppliers(ctx, "특수")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].Name != "한국특수지" {
		t.Fatalf("expected single match 한국특수지, got %v", results)
	}
}
