package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ghuser/productcatalog/pkg/auth"
	"github.com/ghuser/productcatalog/services/catalog/application/dto"
	catalogdomain "github.com/ghuser/productcatalog/services/catalog/domain"
	"github.com/ghuser/productcatalog/services/catalog/domain/models"
	"github.com/ghuser/productcatalog/services/catalog/infrastructure/persistence/memory"
)

func ptr[T any](v T) *T { return &v }

type fixture struct {
	store *memory.Store
	svcs  *Services
	ctx   context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.New()
	svcs := NewWithRepositories(store.Products(), store.Items())
	fixed := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	svcs.Product.now = func() time.Time { return fixed }
	return &fixture{
		store: store,
		svcs:  svcs,
		ctx:   auth.WithPrincipal(context.Background(), auth.Principal{Name: "bituser"}),
	}
}

func (f *fixture) product(t *testing.T, name string) dto.ProductDTO {
	t.Helper()
	p, err := f.svcs.Product.Create(f.ctx, dto.CreateProductDTO{ProductName: name})
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	return p
}

func (f *fixture) item(t *testing.T, productID int64, name string, qty int) dto.ItemDTO {
	t.Helper()
	i, err := f.svcs.Item.Create(f.ctx, dto.CreateItemDTO{ProductID: productID, ItemName: name, Quantity: qty})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}
	return i
}

func TestItemCreate_CarriesProductName(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Garden Hose")

	got := f.item(t, p.ID, "Nozzle", 4)

	if got.ProductName != "Garden Hose" {
		t.Fatalf("ProductName: got %q, want %q", got.ProductName, "Garden Hose")
	}
	if got.ID == 0 || got.ProductID != p.ID || got.ItemName != "Nozzle" || got.Quantity != 4 {
		t.Fatalf("unexpected item: %+v", got)
	}
}

func TestItemCreate_UnknownProduct(t *testing.T) {
	f := newFixture(t)

	_, err := f.svcs.Item.Create(f.ctx, dto.CreateItemDTO{ProductID: 404, ItemName: "Orphan"})
	if !errors.Is(err, catalogdomain.ErrUnknownProduct) {
		t.Fatalf("expected ErrUnknownProduct, got %v", err)
	}
	items, _ := f.svcs.Item.GetAll(f.ctx)
	if len(items) != 0 {
		t.Fatalf("no item may be stored, got %d", len(items))
	}
}

func TestItemUpdate_QuantityOnlyIsSparse(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Garden Hose")
	created := f.item(t, p.ID, "Nozzle", 4)

	ok, err := f.svcs.Item.Update(f.ctx, created.ID, dto.UpdateItemDTO{Quantity: ptr(11)})
	if err != nil || !ok {
		t.Fatalf("update: ok=%v err=%v", ok, err)
	}

	got, found, err := f.svcs.Item.GetByID(f.ctx, created.ID)
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if got.Quantity != 11 {
		t.Fatalf("Quantity: got %d, want 11", got.Quantity)
	}
	if got.ItemName != created.ItemName || got.ProductID != created.ProductID {
		t.Fatalf("absent fields changed: before %+v after %+v", created, got)
	}
}

func TestItemUpdate_MoveToProduct(t *testing.T) {
	f := newFixture(t)
	hose := f.product(t, "Garden Hose")
	rake := f.product(t, "Rake")
	created := f.item(t, hose.ID, "Handle", 1)

	ok, err := f.svcs.Item.Update(f.ctx, created.ID, dto.UpdateItemDTO{ProductID: ptr(rake.ID)})
	if err != nil || !ok {
		t.Fatalf("update: ok=%v err=%v", ok, err)
	}
	got, _, _ := f.svcs.Item.GetByID(f.ctx, created.ID)
	if got.ProductID != rake.ID || got.ProductName != "Rake" {
		t.Fatalf("expected item under Rake, got %+v", got)
	}

	_, err = f.svcs.Item.Update(f.ctx, created.ID, dto.UpdateItemDTO{ProductID: ptr(int64(999))})
	if !errors.Is(err, catalogdomain.ErrUnknownProduct) {
		t.Fatalf("expected ErrUnknownProduct, got %v", err)
	}
}

func TestItemUpdate_InvalidMergedState(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Garden Hose")
	created := f.item(t, p.ID, "Nozzle", 4)

	_, err := f.svcs.Item.Update(f.ctx, created.ID, dto.UpdateItemDTO{Quantity: ptr(-3)})
	if !errors.Is(err, catalogdomain.ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem, got %v", err)
	}
	got, _, _ := f.svcs.Item.GetByID(f.ctx, created.ID)
	if got.Quantity != 4 {
		t.Fatalf("rejected update must not persist, quantity=%d", got.Quantity)
	}
}

func TestProductDelete_Cascades(t *testing.T) {
	f := newFixture(t)
	doomed := f.product(t, "Garden Hose")
	kept := f.product(t, "Rake")
	for _, name := range []string{"Nozzle", "Reel", "Connector"} {
		f.item(t, doomed.ID, name, 1)
	}
	survivor := f.item(t, kept.ID, "Handle", 2)

	ok, err := f.svcs.Product.Delete(f.ctx, doomed.ID)
	if err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}

	items, err := f.svcs.Item.GetAll(f.ctx)
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(items) != 1 || items[0].ID != survivor.ID {
		t.Fatalf("expected only item %d after cascade, got %+v", survivor.ID, items)
	}
}

func TestGetByID_AbsentIsNotAnError(t *testing.T) {
	f := newFixture(t)

	if _, found, err := f.svcs.Product.GetByID(f.ctx, 77); found || err != nil {
		t.Fatalf("product: found=%v err=%v", found, err)
	}
	if _, found, err := f.svcs.Item.GetByID(f.ctx, 77); found || err != nil {
		t.Fatalf("item: found=%v err=%v", found, err)
	}
}

func TestUpdateAndDelete_AbsentReturnFalse(t *testing.T) {
	f := newFixture(t)

	checks := []struct {
		name string
		run  func() (bool, error)
	}{
		{"update product", func() (bool, error) {
			return f.svcs.Product.Update(f.ctx, 9, dto.UpdateProductDTO{ProductName: ptr("x")})
		}},
		{"delete product", func() (bool, error) { return f.svcs.Product.Delete(f.ctx, 9) }},
		{"update item", func() (bool, error) { return f.svcs.Item.Update(f.ctx, 9, dto.UpdateItemDTO{Quantity: ptr(1)}) }},
		{"delete item", func() (bool, error) { return f.svcs.Item.Delete(f.ctx, 9) }},
	}

	for _, c := range checks {
		t.Run(c.name, func(t *testing.T) {
			ok, err := c.run()
			if ok || err != nil {
				t.Fatalf("expected (false, nil), got (%v, %v)", ok, err)
			}
		})
	}
}

func TestProductCreate_RoundTrip(t *testing.T) {
	f := newFixture(t)
	created := f.product(t, "Garden Hose")

	got, found, err := f.svcs.Product.GetByID(f.ctx, created.ID)
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if got.ID != created.ID || got.ProductName != created.ProductName {
		t.Fatalf("round trip mismatch: created %+v got %+v", created, got)
	}
	if got.CreatedBy != "bituser" || got.ModifiedBy != nil || got.ModifiedOn != nil {
		t.Fatalf("unexpected audit fields: %+v", got)
	}
	if got.RelatedItems == nil || len(got.RelatedItems) != 0 {
		t.Fatalf("expected empty related items, got %v", got.RelatedItems)
	}
}

func TestItemCreate_RoundTrip(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Garden Hose")
	created := f.item(t, p.ID, "Nozzle", 4)

	got, found, err := f.svcs.Item.GetByID(f.ctx, created.ID)
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if got != created {
		t.Fatalf("round trip mismatch: created %+v got %+v", created, got)
	}
}

func TestProductGetByID_RelatedItems(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Garden Hose")
	nozzle := f.item(t, p.ID, "Nozzle", 4)
	reel := f.item(t, p.ID, "Reel", 1)

	got, _, err := f.svcs.Product.GetByID(f.ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.RelatedItems) != 2 {
		t.Fatalf("expected 2 related items, got %+v", got.RelatedItems)
	}
	if got.RelatedItems[0] != (dto.RelatedItemDTO{ID: nozzle.ID, ItemName: "Nozzle", Quantity: 4}) ||
		got.RelatedItems[1] != (dto.RelatedItemDTO{ID: reel.ID, ItemName: "Reel", Quantity: 1}) {
		t.Fatalf("unexpected projection: %+v", got.RelatedItems)
	}

	list, _ := f.svcs.Product.GetAll(f.ctx)
	if len(list) != 1 || list[0].RelatedItems != nil {
		t.Fatalf("list must not carry related items: %+v", list)
	}
}

func TestProductUpdate_StampsModification(t *testing.T) {
	f := newFixture(t)
	created := f.product(t, "Garden Hose")

	later := time.Date(2025, 5, 2, 8, 0, 0, 0, time.UTC)
	f.svcs.Product.now = func() time.Time { return later }
	editor := auth.WithPrincipal(context.Background(), auth.Principal{Name: "editor"})

	ok, err := f.svcs.Product.Update(editor, created.ID, dto.UpdateProductDTO{ProductName: ptr("Garden Hose 25m")})
	if err != nil || !ok {
		t.Fatalf("update: ok=%v err=%v", ok, err)
	}

	got, _, _ := f.svcs.Product.GetByID(f.ctx, created.ID)
	if got.ProductName != "Garden Hose 25m" {
		t.Fatalf("ProductName: got %q", got.ProductName)
	}
	if got.ModifiedBy == nil || *got.ModifiedBy != "editor" || got.ModifiedOn == nil || !got.ModifiedOn.Equal(later) {
		t.Fatalf("modification not stamped: %+v", got)
	}
	if got.CreatedBy != created.CreatedBy || !got.CreatedOn.Equal(created.CreatedOn) {
		t.Fatal("creation audit fields changed")
	}
}

func TestProductUpdate_EmptyPatchKeepsName(t *testing.T) {
	f := newFixture(t)
	created := f.product(t, "Garden Hose")

	ok, err := f.svcs.Product.Update(f.ctx, created.ID, dto.UpdateProductDTO{})
	if err != nil || !ok {
		t.Fatalf("update: ok=%v err=%v", ok, err)
	}
	got, _, _ := f.svcs.Product.GetByID(f.ctx, created.ID)
	if got.ProductName != "Garden Hose" {
		t.Fatalf("ProductName changed to %q", got.ProductName)
	}
}

func TestProductCreate_AnonymousActor(t *testing.T) {
	f := newFixture(t)

	got, err := f.svcs.Product.Create(context.Background(), dto.CreateProductDTO{ProductName: "Rake"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got.CreatedBy != models.SystemActor {
		t.Fatalf("CreatedBy: got %q, want %q", got.CreatedBy, models.SystemActor)
	}
}

func TestProductCreate_InvalidName(t *testing.T) {
	f := newFixture(t)

	_, err := f.svcs.Product.Create(f.ctx, dto.CreateProductDTO{ProductName: "   "})
	if !errors.Is(err, catalogdomain.ErrInvalidProduct) {
		t.Fatalf("expected ErrInvalidProduct, got %v", err)
	}
}

func TestStorageFaultsPropagate(t *testing.T) {
	f := newFixture(t)
	p := f.product(t, "Garden Hose")
	boom := errors.New("connection reset by peer")
	f.store.Fail = boom

	if _, err := f.svcs.Product.GetAll(f.ctx); !errors.Is(err, boom) {
		t.Fatalf("GetAll: expected storage error, got %v", err)
	}
	if _, _, err := f.svcs.Product.GetByID(f.ctx, p.ID); !errors.Is(err, boom) {
		t.Fatalf("GetByID: expected storage error, got %v", err)
	}
	if _, err := f.svcs.Item.Create(f.ctx, dto.CreateItemDTO{ProductID: p.ID, ItemName: "x"}); !errors.Is(err, boom) {
		t.Fatalf("Item.Create: expected storage error, got %v", err)
	}
	if _, err := f.svcs.Item.Delete(f.ctx, 1); !errors.Is(err, boom) {
		t.Fatalf("Item.Delete: expected storage error, got %v", err)
	}
}
