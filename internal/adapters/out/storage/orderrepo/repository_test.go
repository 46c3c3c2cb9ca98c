package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/storage/orderrepo"
	"storefront/internal/adapters/out/storage/storagetest"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(key string, aggregate any) {
	m.Called(key, aggregate)
}

// OrderRepositoryTestSuite runs against whatever database connect returns.
type OrderRepositoryTestSuite struct {
	suite.Suite
	connect    func(t testing.TB) *gorm.DB
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryTestSuite) SetupSuite() {
	suite.db = suite.connect(suite.T())
}

func (suite *OrderRepositoryTestSuite) SetupTest() {
	storagetest.Reset(suite.T(), suite.db)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryTestSuite) TestAdd_ThenGet_RoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID().String(), testOrder).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(testOrder.IsEqual(loaded))
	suite.Equal(testOrder.Customer(), loaded.Customer())
	suite.Equal(order.Pending, loaded.Status())
	suite.True(testOrder.CreatedAt().Equal(loaded.CreatedAt()),
		"created at %s, loaded %s", testOrder.CreatedAt(), loaded.CreatedAt())

	suite.Require().Len(loaded.Items(), 3)
	for i, item := range testOrder.Items() {
		got := loaded.Items()[i]
		suite.Equal(item.MenuItemID(), got.MenuItemID(), "item %d", i)
		suite.Equal(item.Quantity(), got.Quantity(), "item %d", i)
		suite.InDelta(item.Price(), got.Price(), 0.0001, "item %d", i)
		suite.Equal(item.Note(), got.Note(), "item %d", i)
	}

	suite.Equal(order.Cash, loaded.Payment().Method)
	suite.Require().NotNil(loaded.Payment().Amount)
	suite.InDelta(500, *loaded.Payment().Amount, 0.0001)
	suite.InDelta(305.5, loaded.Charges().Total, 0.0001)
	suite.Require().NotNil(loaded.Charges().DistanceKm)
	suite.InDelta(3.2, *loaded.Charges().DistanceKm, 0.0001)
	suite.Nil(loaded.Charges().ShippingCost)

	suite.Equal(int64(1), storagetest.Count(suite.T(), suite.db, "orders"))
	suite.Equal(int64(3), storagetest.Count(suite.T(), suite.db, "order_items"))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryTestSuite) TestAdd_DuplicateID_ReturnsInvalid() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	err := suite.repository.Add(ctx, testOrder)

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
	suite.Equal(int64(1), storagetest.Count(suite.T(), suite.db, "orders"))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryTestSuite) TestAdd_NotConstructedOrder_ReturnsError() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryTestSuite) TestGet_UnknownID_ReturnsNotFound() {
	id := kernel.NewUUID()

	loaded, err := suite.repository.Get(context.Background(), id)

	suite.Nil(loaded)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Contains(err.Error(), id.String())
}

func (suite *OrderRepositoryTestSuite) TestGet_InvalidID_ReturnsError() {
	_, err := suite.repository.Get(context.Background(), kernel.UUID{})

	suite.Require().ErrorIs(err, kernel.ErrUUIDIsNotConstructed)
}

func (suite *OrderRepositoryTestSuite) TestUpdateStatus_OnlyStatusChanges() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID().String(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.ChangeStatus(order.Delivering))
	suite.Require().NoError(suite.repository.UpdateStatus(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivering, loaded.Status())
	suite.Equal(testOrder.Customer(), loaded.Customer())
	suite.Len(loaded.Items(), 3)
	suite.True(testOrder.CreatedAt().Equal(loaded.CreatedAt()))
	suite.Equal(int64(1), storagetest.Count(suite.T(), suite.db, "orders"))
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryTestSuite) TestUpdateStatus_UnknownOrder_CreatesNothing() {
	testOrder := suite.createTestOrder()

	err := suite.repository.UpdateStatus(context.Background(), testOrder)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Equal(int64(0), storagetest.Count(suite.T(), suite.db, "orders"))
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryTestSuite) TestAdd_CancelledContext_ReturnsError() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := suite.repository.Add(ctx, suite.createTestOrder())

	suite.Require().Error(err)
	suite.Equal(int64(0), storagetest.Count(suite.T(), suite.db, "orders"))
}

func (suite *OrderRepositoryTestSuite) createTestOrder() *order.Order {
	items := []order.LineItem{
		suite.lineItem("promo1", "Promo 2 Clásicos", "", 1, 100, "uno de pollo y uno de surimi"),
		suite.lineItem("esp2", "Nachito Roll", "Camarón", 2, 80, ""),
		suite.lineItem("app1", "Bocados de Arroz", "Queso", 1, 55, ""),
	}

	tendered := 500.0
	distance := 3.2
	o, err := order.NewOrder(
		kernel.NewUUID(),
		order.Customer{Name: "Ana", Phone: "555-0101", Address: "Calle 5 #12", Details: "portón azul"},
		items,
		order.Payment{Method: order.Cash, Amount: &tendered},
		order.Charges{Total: 305.5, DistanceKm: &distance},
		time.Date(2025, 3, 14, 18, 30, 15, 123456000, time.UTC),
	)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryTestSuite) lineItem(
	id, name, protein string, quantity int, price float64, note string,
) order.LineItem {
	item, err := order.NewLineItem(id, name, protein, quantity, price, note)
	suite.Require().NoError(err)
	return item
}

func TestOrderRepository_SQLite(t *testing.T) {
	suite.Run(t, &OrderRepositoryTestSuite{connect: storagetest.OpenSQLite})
}
