package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MyeongsupWorkSpace/sepnp/internal/model/entity"
	"github.com/MyeongsupWorkSpace/sepnp/internal/repository"
	"github.com/MyeongsupWorkSpace/sepnp/internal/testutil"
	"gorm.io/gorm"
)

func setupProductService(t *testing.T) (*gorm.DB, *ProductService) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repos := repository.NewRepositories(db)
	svc := NewProductService(db, repos.Catalog, repos.Product, repos.AuditLog, nil)
	return db, svc
}

func testActor() Actor {
	return Actor{ID: "emp-test-001", Name: "테스트사원", IP: "127.0.0.1"}
}

// TestRegisterFullFlow registers a product with a new supplier, paper
// and two materials, and verifies every row the transaction should
// have written.
func TestRegisterFullFlow(t *testing.T) {
	db, svc := setupProductService(t)
	ctx := context.Background()

	req := &RegisterProductRequest{
		Code:        "PRD-001",
		Name:        "고급 명함",
		Description: "양면 무광 코팅",
		Price:       15000,
		Supplier: &repository.SupplierInput{
			Name:    "한솔제지",
			Contact: "김담당",
			Phone:   "02-1234-5678",
		},
		Paper: &repository.PaperInput{
			Name:   "아트지 250g",
			Size:   "636x939",
			Weight: "250g",
		},
		Materials: []RegisterMaterialInput{
			{Name: "무광 코팅필름", Type: "coating", Unit: "m", Quantity: 2.5},
			{Name: "은박", Type: "foil", Unit: "roll", Quantity: 1},
		},
	}

	productID, err := svc.Register(ctx, testActor(), req)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if productID == "" {
		t.Fatal("expected non-empty product id")
	}

	var product entity.Product
	if err := db.Preload("Supplier").Preload("Paper").Preload("Materials.Material").
		First(&product, "id = ?", productID).Error; err != nil {
		t.Fatalf("product row not found: %v", err)
	}
	if product.Name != "고급 명함" {
		t.Errorf("expected product name 고급 명함, got %s", product.Name)
	}
	if product.Price != 15000 {
		t.Errorf("expected price 15000, got %v", product.Price)
	}
	if product.Supplier == nil || product.Supplier.Name != "한솔제지" {
		t.Error("expected supplier 한솔제지 linked to product")
	}
	if product.Paper == nil || product.Paper.Name != "아트지 250g" {
		t.Error("expected paper 아트지 250g linked to product")
	}
	if len(product.Materials) != 2 {
		t.Fatalf("expected 2 material links, got %d", len(product.Materials))
	}

	var auditCount int64
	db.Model(&entity.AuditLog{}).
		Where("entity = ? AND entity_id = ? AND action = ?", "product", productID, entity.AuditActionCreateProduct).
		Count(&auditCount)
	if auditCount != 1 {
		t.Errorf("expected 1 audit row, got %d", auditCount)
	}
}

// TestRegisterReusesSupplierByName verifies the upsert: registering
// against an existing supplier name must reuse the row and merge only
// the non-empty supplied fields.
func TestRegisterReusesSupplierByName(t *testing.T) {
	db, svc := setupProductService(t)
	ctx := context.Background()

	existing := &entity.Supplier{
		ID:      "sup-existing-001",
		Name:    "동양인쇄",
		Contact: "박과장",
		Email:   "dongyang@example.com",
	}
	if err := db.Create(existing).Error; err != nil {
		t.Fatalf("seed supplier: %v", err)
	}

	req := &RegisterProductRequest{
		Name: "전단지 A4",
		Supplier: &repository.SupplierInput{
			Name:  "동양인쇄",
			Phone: "031-999-0000",
		},
	}
	productID, err := svc.Register(ctx, testActor(), req)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	var supplierCount int64
	db.Model(&entity.Supplier{}).Count(&supplierCount)
	if supplierCount != 1 {
		t.Fatalf("expected 1 supplier row, got %d", supplierCount)
	}

	var merged entity.Supplier
	db.First(&merged, "id = ?", existing.ID)
	if merged.Phone != "031-999-0000" {
		t.Errorf("expected phone updated, got %q", merged.Phone)
	}
	if merged.Contact != "박과장" {
		t.Errorf("expected omitted contact kept, got %q", merged.Contact)
	}
	if merged.Email != "dongyang@example.com" {
		t.Errorf("expected omitted email kept, got %q", merged.Email)
	}

	var product entity.Product
	db.First(&product, "id = ?", productID)
	if product.SupplierID == nil || *product.SupplierID != existing.ID {
		t.Error("expected product linked to the existing supplier")
	}
}

// TestRegisterMaterialSharedAcrossProducts verifies that two products
// naming the same material share one material row with two link rows.
func TestRegisterMaterialSharedAcrossProducts(t *testing.T) {
	db, svc := setupProductService(t)
	ctx := context.Background()

	for _, name := range []string{"스티커 A", "스티커 B"} {
		req := &RegisterProductRequest{
			Name: name,
			Materials: []RegisterMaterialInput{
				{Name: "유광 라미네이트", Unit: "m", Quantity: 3},
			},
		}
		if _, err := svc.Register(ctx, testActor(), req); err != nil {
			t.Fatalf("Register %s failed: %v", name, err)
		}
	}

	var materialCount, linkCount int64
	db.Model(&entity.Material{}).Where("name = ?", "유광 라미네이트").Count(&materialCount)
	db.Model(&entity.ProductMaterial{}).Count(&linkCount)
	if materialCount != 1 {
		t.Errorf("expected 1 material row, got %d", materialCount)
	}
	if linkCount != 2 {
		t.Errorf("expected 2 link rows, got %d", linkCount)
	}
}

// TestRegisterDuplicateMaterialOverwritesLink sends the same material
// twice in one request; the second entry must overwrite the link row,
// not duplicate it.
func TestRegisterDuplicateMaterialOverwritesLink(t *testing.T) {
	db, svc := setupProductService(t)
	ctx := context.Background()

	req := &RegisterProductRequest{
		Name: "카탈로그",
		Materials: []RegisterMaterialInput{
			{Name: "제본 스프링", Unit: "ea", Quantity: 10},
			{Name: "제본 스프링", Unit: "ea", Quantity: 25},
		},
	}
	productID, err := svc.Register(ctx, testActor(), req)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	var links []entity.ProductMaterial
	db.Where("product_id = ?", productID).Find(&links)
	if len(links) != 1 {
		t.Fatalf("expected 1 link row, got %d", len(links))
	}
	if links[0].Quantity != 25 {
		t.Errorf("expected last quantity 25 to win, got %v", links[0].Quantity)
	}
}

// TestRegisterSkipsBlankMaterialNames treats nameless entries as "no
// reference", not an error.
func TestRegisterSkipsBlankMaterialNames(t *testing.T) {
	db, svc := setupProductService(t)
	ctx := context.Background()

	req := &RegisterProductRequest{
		Name: "봉투",
		Materials: []RegisterMaterialInput{
			{Name: "  ", Quantity: 5},
			{Name: "양면테이프", Unit: "roll", Quantity: 2},
		},
	}
	productID, err := svc.Register(ctx, testActor(), req)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	var linkCount int64
	db.Model(&entity.ProductMaterial{}).Where("product_id = ?", productID).Count(&linkCount)
	if linkCount != 1 {
		t.Errorf("expected blank entry skipped, got %d links", linkCount)
	}
}

// TestRegisterNameRequired rejects blank product names before touching
// the database.
func TestRegisterNameRequired(t *testing.T) {
	db, svc := setupProductService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, testActor(), &RegisterProductRequest{Name: "   "})
	if !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}

	var count int64
	db.Model(&entity.Product{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no product rows, got %d", count)
	}
}

// TestRegisterClampsNegativeValues stores 0 for negative price and
// quantity instead of failing.
func TestRegisterClampsNegativeValues(t *testing.T) {
	db, svc := setupProductService(t)
	ctx := context.Background()

	req := &RegisterProductRequest{
		Name:  "쿠폰북",
		Price: -500,
		Materials: []RegisterMaterialInput{
			{Name: "링 와이어", Quantity: -3},
		},
	}
	productID, err := svc.Register(ctx, testActor(), req)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	var product entity.Product
	db.First(&product, "id = ?", productID)
	if product.Price != 0 {
		t.Errorf("expected price clamped to 0, got %v", product.Price)
	}

	var link entity.ProductMaterial
	db.First(&link, "product_id = ?", productID)
	if link.Quantity != 0 {
		t.Errorf("expected quantity clamped to 0, got %v", link.Quantity)
	}
}

// TestRegisterOmittedValuesDefaultToZero leaves price and material
// quantity out of the request entirely; both must be stored as 0.
func TestRegisterOmittedValuesDefaultToZero(t *testing.T) {
	db, svc := setupProductService(t)
	ctx := context.Background()

	req := &RegisterProductRequest{
		Name: "시안 출력물",
		Materials: []RegisterMaterialInput{
			{Name: "출력용 토너", Unit: "ea"},
		},
	}
	productID, err := svc.Register(ctx, testActor(), req)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	var product entity.Product
	db.First(&product, "id = ?", productID)
	if product.Price != 0 {
		t.Errorf("expected omitted price stored as 0, got %v", product.Price)
	}

	var link entity.ProductMaterial
	db.First(&link, "product_id = ?", productID)
	if link.Quantity != 0 {
		t.Errorf("expected omitted quantity stored as 0, got %v", link.Quantity)
	}
}

// TestRegisterRollsBackOnAuditFailure drops the audit table so the
// final insert inside the transaction fails; nothing written earlier
// may survive.
func TestRegisterRollsBackOnAuditFailure(t *testing.T) {
	db, svc := setupProductService(t)
	ctx := context.Background()

	if err := db.Migrator().DropTable(&entity.AuditLog{}); err != nil {
		t.Fatalf("drop audit table: %v", err)
	}

	req := &RegisterProductRequest{
		Name:     "롤업 배너",
		Supplier: &repository.SupplierInput{Name: "배너월드"},
		Materials: []RegisterMaterialInput{
			{Name: "배너 거치대", Quantity: 1},
		},
	}
	if _, err := svc.Register(ctx, testActor(), req); err == nil {
		t.Fatal("expected Register to fail when the audit write fails")
	}

	var productCount, supplierCount, materialCount, linkCount int64
	db.Model(&entity.Product{}).Count(&productCount)
	db.Model(&entity.Supplier{}).Count(&supplierCount)
	db.Model(&entity.Material{}).Count(&materialCount)
	db.Model(&entity.ProductMaterial{}).Count(&linkCount)
	if productCount != 0 || supplierCount != 0 || materialCount != 0 || linkCount != 0 {
		t.Errorf("expected full rollback, got products=%d suppliers=%d materials=%d links=%d",
			productCount, supplierCount, materialCount, linkCount)
	}
}

// TestRegisterWithoutReferences registers a bare product with no
// supplier, paper or materials.
func TestRegisterWithoutReferences(t *testing.T) {
	db, svc := setupProductService(t)
	ctx := context.Background()

	productID, err := svc.Register(ctx, testActor(), &RegisterProductRequest{Name: "견적 전용"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	var product entity.Product
	db.First(&product, "id = ?", productID)
	if product.SupplierID != nil || product.PaperID != nil {
		t.Error("expected null supplier/paper references")
	}
}
