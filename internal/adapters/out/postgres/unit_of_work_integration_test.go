package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	postgres_adapter "marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/shipmentrepo"
	"marketplace/internal/adapters/out/postgres/storerepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/shipment"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database,
// covering transaction boundaries across the store, order, and shipment
// repositories.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// seededOrder carries the identifiers of a store and an order written
// directly to the database, so tests can build shipments against them.
type seededOrder struct {
	storeID   kernel.UUID
	sellerID  kernel.UUID
	orderID   kernel.UUID
	buyerID   kernel.UUID
	itemIDs   []kernel.UUID
	storeName string
}

// SetupSuite initializes PostgreSQL container and database connection for all
// tests, then runs migrations to prepare the schema.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&storerepo.StoreDTO{},
		&storerepo.ProductDTO{},
		&storerepo.ProductVariantDTO{},
		&orderrepo.UserDTO{},
		&orderrepo.AddressDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.OrderTimelineDTO{},
		&shipmentrepo.SellerShipmentDTO{},
		&shipmentrepo.ShipmentItemDTO{},
		&shipmentrepo.ShipmentEventDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE seller_shipments, shipment_items, shipment_events, " +
			"orders, order_items, order_timelines, stores, products, product_variants, users, addresses").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// seedOrderWithStore writes a store, its products, and a two-item order
// straight to the tables so repository reads have something to resolve.
func (suite *UnitOfWorkIntegrationTestSuite) seedOrderWithStore() seededOrder {
	seed := seededOrder{
		storeID:   kernel.NewUUID(),
		sellerID:  kernel.NewUUID(),
		orderID:   kernel.NewUUID(),
		buyerID:   kernel.NewUUID(),
		itemIDs:   []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()},
		storeName: "Acme Outdoor",
	}

	err := suite.db.Create(&storerepo.StoreDTO{
		ID:     seed.storeID.Bytes(),
		UserID: seed.sellerID.Bytes(),
		Name:   seed.storeName,
	}).Error
	suite.Require().NoError(err)

	err = suite.db.Create(&orderrepo.OrderDTO{
		ID:          seed.orderID.Bytes(),
		UserID:      seed.buyerID.Bytes(),
		OrderNumber: "ORD-20260901-0001",
		Status:      order.StatusConfirmed.String(),
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}).Error
	suite.Require().NoError(err)

	for i, itemID := range seed.itemIDs {
		productID := kernel.NewUUID()

		err = suite.db.Create(&storerepo.ProductDTO{
			ID:      productID.Bytes(),
			StoreID: seed.storeID.Bytes(),
			Title:   "Trail Tent",
		}).Error
		suite.Require().NoError(err)

		err = suite.db.Create(&orderrepo.OrderItemDTO{
			ID:        itemID.Bytes(),
			OrderID:   seed.orderID.Bytes(),
			ProductID: productID.Bytes(),
			Quantity:  i + 1,
			Price:     49.90,
		}).Error
		suite.Require().NoError(err)
	}

	return seed
}

// buildShipment constructs a shipment aggregate over the seeded order items.
func (suite *UnitOfWorkIntegrationTestSuite) buildShipment(seed seededOrder, itemIDs ...kernel.UUID) *shipment.Shipment {
	if len(itemIDs) == 0 {
		itemIDs = seed.itemIDs
	}

	items := make([]shipment.Item, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		item, err := shipment.NewItem(itemID, 1)
		suite.Require().NoError(err)
		items = append(items, item)
	}

	aggregate, err := shipment.NewShipment(
		kernel.NewUUID(),
		seed.orderID,
		seed.storeID,
		shipment.NewNumber(time.Now()),
		seed.storeName,
		items,
		shipment.Details{},
	)
	suite.Require().NoError(err)

	return aggregate
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work
// instances with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.StoreRepository(), "First instance should provide store repository")
	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.ShipmentRepository(), "First instance should provide shipment repository")
	suite.NotNil(uow2.ShipmentRepository(), "Second instance should provide shipment repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid
// transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_ShipmentLifecycle verifies a shipment added within a
// transaction persists with items and its creation event after commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ShipmentLifecycle() {
	ctx := context.Background()
	seed := suite.seedOrderWithStore()
	aggregate := suite.buildShipment(seed)

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ShipmentRepository().Add(ctx, aggregate)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.ShipmentRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.StatusPending, retrieved.Status())
	suite.Equal(aggregate.Number(), retrieved.Number())
	suite.Len(retrieved.Items(), 2)

	var eventCount int64
	err = suite.db.Model(&shipmentrepo.ShipmentEventDTO{}).
		Where("shipment_id = ?", aggregate.ID().Bytes()).
		Count(&eventCount).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), eventCount, "Creation event should be persisted")
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	seed := suite.seedOrderWithStore()
	aggregate := suite.buildShipment(seed)

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ShipmentRepository().Add(ctx, aggregate)
	suite.Require().NoError(err)

	// Visible inside the transaction.
	_, err = uow.ShipmentRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.ShipmentRepository().Get(ctx, aggregate.ID())
	suite.Require().Error(err, "Shipment should not exist after rollback")
	suite.True(errors.Is(err, errs.ErrObjectNotFound))
}

// TestUnitOfWork_DuplicateOrderItemRejected verifies the unique index on
// shipment item order ids rejects a second shipment over the same order item.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DuplicateOrderItemRejected() {
	ctx := context.Background()
	seed := suite.seedOrderWithStore()

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)
	err = uow.ShipmentRepository().Add(ctx, suite.buildShipment(seed, seed.itemIDs[0]))
	suite.Require().NoError(err)
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	second := suite.factory.Create()
	err = second.Begin(ctx)
	suite.Require().NoError(err)

	err = second.ShipmentRepository().Add(ctx, suite.buildShipment(seed, seed.itemIDs[0]))
	suite.Require().Error(err, "Second shipment over the same order item should be rejected")
	suite.True(errors.Is(err, errs.ErrValueIsInvalid))

	err = second.Rollback(ctx)
	suite.Require().NoError(err)
}

// TestUnitOfWork_GetShippedOrderItemIDs verifies only already-shipped order
// item ids are reported back.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_GetShippedOrderItemIDs() {
	ctx := context.Background()
	seed := suite.seedOrderWithStore()

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)
	err = uow.ShipmentRepository().Add(ctx, suite.buildShipment(seed, seed.itemIDs[0]))
	suite.Require().NoError(err)
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	shipped, err := suite.factory.Create().ShipmentRepository().
		GetShippedOrderItemIDs(ctx, seed.itemIDs)
	suite.Require().NoError(err)
	suite.Require().Len(shipped, 1)
	suite.True(shipped[0].IsEqual(seed.itemIDs[0]))
}

// TestUnitOfWork_MultiRepositoryTransaction verifies shipment and order
// writes within one transaction commit atomically, including the order's
// timeline entries.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	seed := suite.seedOrderWithStore()

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ShipmentRepository().Add(ctx, suite.buildShipment(seed))
	suite.Require().NoError(err)

	loaded, err := uow.OrderRepository().Get(ctx, seed.orderID)
	suite.Require().NoError(err)
	suite.Len(loaded.Items(), 2, "Order items should resolve through the products join")

	err = loaded.ChangeStatus(order.StatusShipped, 1)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, loaded)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	reloaded, err := suite.factory.Create().OrderRepository().Get(ctx, seed.orderID)
	suite.Require().NoError(err)
	suite.Equal(order.StatusShipped, reloaded.Status())

	var timelineCount int64
	err = suite.db.Model(&orderrepo.OrderTimelineDTO{}).
		Where("order_id = ?", seed.orderID.Bytes()).
		Count(&timelineCount).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), timelineCount, "Status change should append one timeline entry")
}

// TestUnitOfWork_ShipmentStatusUpdate verifies updates persist status,
// timestamps, and the transition event.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ShipmentStatusUpdate() {
	ctx := context.Background()
	seed := suite.seedOrderWithStore()
	aggregate := suite.buildShipment(seed)

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)
	err = uow.ShipmentRepository().Add(ctx, aggregate)
	suite.Require().NoError(err)
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	second := suite.factory.Create()
	err = second.Begin(ctx)
	suite.Require().NoError(err)

	loaded, err := second.ShipmentRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	err = loaded.ChangeStatus(shipment.StatusPickedUp)
	suite.Require().NoError(err)
	err = second.ShipmentRepository().Update(ctx, loaded)
	suite.Require().NoError(err)

	err = second.Commit(ctx)
	suite.Require().NoError(err)

	reloaded, err := suite.factory.Create().ShipmentRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.StatusPickedUp, reloaded.Status())
	suite.NotNil(reloaded.ShippedAt(), "First pickup should stamp the shipped time")

	var eventCount int64
	err = suite.db.Model(&shipmentrepo.ShipmentEventDTO{}).
		Where("shipment_id = ?", aggregate.ID().Bytes()).
		Count(&eventCount).Error
	suite.Require().NoError(err)
	suite.Equal(int64(2), eventCount, "Creation and pickup events should both be persisted")
}

// TestUnitOfWork_GetAllByOrder verifies all shipments of an order are
// returned in creation order.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_GetAllByOrder() {
	ctx := context.Background()
	seed := suite.seedOrderWithStore()

	first := suite.buildShipment(seed, seed.itemIDs[0])
	second := suite.buildShipment(seed, seed.itemIDs[1])

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)
	err = uow.ShipmentRepository().Add(ctx, first)
	suite.Require().NoError(err)
	err = uow.ShipmentRepository().Add(ctx, second)
	suite.Require().NoError(err)
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	all, err := suite.factory.Create().ShipmentRepository().GetAllByOrder(ctx, seed.orderID)
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Len(all[0].Items(), 1)
	suite.Len(all[1].Items(), 1)
}

// TestUnitOfWorkIntegration runs the complete integration test suite.
// Requires Docker to be available for PostgreSQL container management.
func TestUnitOfWorkIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}

	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
