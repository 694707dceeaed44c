package service

import (
	"testing"

	"oficinapro/cmd/internal/domain/entity"
	"oficinapro/cmd/internal/utils/apierror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStockFixture() (*DefaultStockService, *fakeProductRepo, *fakeOrderRepo) {
	userRepo := &fakeUserRepo{users: []*entity.User{
		{ID: 1, SubUUID: testSub, Username: "joao", Email: "joao@oficina.test"},
		{ID: 2, SubUUID: otherSub, Username: "ana", Email: "ana@oficina.test"},
	}}
	productRepo := &fakeProductRepo{products: []*entity.Product{
		{ID: 1, UserID: 1, Name: "Pastilha de freio", Category: "pecas", Quantity: 5, MinQuantity: 10, UnitPriceCents: 12990},
		{ID: 2, UserID: 2, Name: "Filtro de ar", Category: "pecas", Quantity: 8, MinQuantity: 2},
	}, nextID: 2}
	orderRepo := &fakeOrderRepo{orders: []*entity.ServiceOrder{
		{ID: 1, UserID: 1, ClientID: 1, Title: "Revisao", Status: entity.OrderStatusInProgress},
	}, nextID: 1}
	movementRepo := &fakeMovementRepo{}

	svc := NewStockService(productRepo, movementRepo, orderRepo, userRepo, newTestValidator())
	return svc, productRepo, orderRepo
}

func TestAdjustStock_Out(t *testing.T) {
	svc, products, _ := newStockFixture()

	resp, apierr := svc.AdjustStock(1, &AdjustStockRequest{
		Type:     entity.MovementTypeOut,
		Quantity: 3,
		Reason:   "sold",
	}, testSub)
	require.Nil(t, apierr)

	assert.Equal(t, 2, resp.NewQuantity)
	assert.True(t, resp.LowStock)
	assert.Equal(t, entity.MovementTypeOut, resp.Movement.Type)
	assert.Equal(t, 3, resp.Movement.Quantity)
	assert.Equal(t, "Pastilha de freio", resp.Movement.ProductName)

	// Persisted quantity and ledger entry.
	p, _ := products.FindByID(1)
	assert.Equal(t, 2, p.Quantity)
	require.Len(t, products.movements, 1)
	assert.Equal(t, resp.Movement.ID, products.movements[0].ID)
}

func TestAdjustStock_In(t *testing.T) {
	svc, products, _ := newStockFixture()

	resp, apierr := svc.AdjustStock(1, &AdjustStockRequest{
		Type:     entity.MovementTypeIn,
		Quantity: 20,
		Reason:   "restock",
	}, testSub)
	require.Nil(t, apierr)

	assert.Equal(t, 25, resp.NewQuantity)
	assert.False(t, resp.LowStock)

	p, _ := products.FindByID(1)
	assert.Equal(t, 25, p.Quantity)
}

func TestAdjustStock_Insufficient(t *testing.T) {
	svc, products, _ := newStockFixture()

	resp, apierr := svc.AdjustStock(1, &AdjustStockRequest{
		Type:     entity.MovementTypeOut,
		Quantity: 50,
		Reason:   "sold",
	}, testSub)
	require.NotNil(t, apierr)
	assert.Equal(t, apierror.InsufficientStockError, apierr)
	assert.Nil(t, resp)

	// No state change: quantity untouched, ledger untouched.
	p, _ := products.FindByID(1)
	assert.Equal(t, 5, p.Quantity)
	assert.Empty(t, products.movements)
}

func TestAdjustStock_WhitespaceReasonRejected(t *testing.T) {
	svc, products, _ := newStockFixture()

	// Passes the struct tag (len > 0) but the ledger trims it away.
	_, apierr := svc.AdjustStock(1, &AdjustStockRequest{
		Type:     entity.MovementTypeIn,
		Quantity: 1,
		Reason:   "   ",
	}, testSub)
	require.NotNil(t, apierr)
	assert.Equal(t, 400, apierr.Code())
	assert.Empty(t, products.movements)
}

func TestAdjustStock_UnknownTypeRejected(t *testing.T) {
	svc, _, _ := newStockFixture()

	_, apierr := svc.AdjustStock(1, &AdjustStockRequest{
		Type:     "transfer",
		Quantity: 1,
		Reason:   "move",
	}, testSub)
	require.NotNil(t, apierr)
	assert.Equal(t, 400, apierr.Code())
}

func TestAdjustStock_ForeignProductNotFound(t *testing.T) {
	svc, _, _ := newStockFixture()

	_, apierr := svc.AdjustStock(2, &AdjustStockRequest{
		Type:     entity.MovementTypeIn,
		Quantity: 1,
		Reason:   "restock",
	}, testSub)
	require.NotNil(t, apierr)
	assert.Equal(t, apierror.ProductNotFoundError, apierr)
}

func TestAdjustStock_RelatedOrderMustBeOwned(t *testing.T) {
	svc, products, orders := newStockFixture()

	orderID := 1
	resp, apierr := svc.AdjustStock(1, &AdjustStockRequest{
		Type:      entity.MovementTypeOut,
		Quantity:  1,
		Reason:    "used on service order",
		RelatedTo: &orderID,
	}, testSub)
	require.Nil(t, apierr)
	require.NotNil(t, resp.Movement.RelatedTo)
	assert.Equal(t, 1, *resp.Movement.RelatedTo)

	// Someone else's order id is treated as missing.
	orders.orders[0].UserID = 2
	_, apierr = svc.AdjustStock(1, &AdjustStockRequest{
		Type:      entity.MovementTypeOut,
		Quantity:  1,
		Reason:    "used on service order",
		RelatedTo: &orderID,
	}, testSub)
	require.NotNil(t, apierr)
	assert.Equal(t, apierror.OrderNotFoundError, apierr)
	assert.Len(t, products.movements, 1)
}

func TestGetMovements_ScopedToOwner(t *testing.T) {
	svc, _, _ := newStockFixture()

	_, apierr := svc.AdjustStock(1, &AdjustStockRequest{
		Type:     entity.MovementTypeIn,
		Quantity: 2,
		Reason:   "restock",
	}, testSub)
	require.Nil(t, apierr)

	// The movement repo fake is independent of the product repo fake, so
	// wire the produced entries over for the read side.
	stockSvc := svc
	stockSvc.MovementRepo = &fakeMovementRepo{movements: svc.ProductRepo.(*fakeProductRepo).movements}

	mine, apierr := stockSvc.GetMovements(testSub)
	require.Nil(t, apierr)
	assert.Len(t, mine, 1)

	theirs, apierr := stockSvc.GetMovements(otherSub)
	require.Nil(t, apierr)
	assert.Empty(t, theirs)
}

func TestUpdateProduct_LeavesQuantityAlone(t *testing.T) {
	svc, products, _ := newStockFixture()

	resp, apierr := svc.UpdateProduct(1, &ProductRequest{
		Name:           "Pastilha de freio dianteira",
		Category:       "pecas",
		Quantity:       999, // ignored: quantity only moves through the ledger
		MinQuantity:    4,
		UnitPriceCents: 14990,
	}, testSub)
	require.Nil(t, apierr)

	assert.Equal(t, 5, resp.Quantity)
	assert.Equal(t, "R$ 149,90", resp.UnitPriceDisplay)

	p, _ := products.FindByID(1)
	assert.Equal(t, 5, p.Quantity)
	assert.Equal(t, 4, p.MinQuantity)
}

func TestGetProducts_LowStockFlag(t *testing.T) {
	svc, _, _ := newStockFixture()

	products, apierr := svc.GetProducts(testSub)
	require.Nil(t, apierr)
	require.Len(t, products, 1)
	assert.True(t, products[0].LowStock)
	assert.Equal(t, "R$ 129,90", products[0].UnitPriceDisplay)
}
