package queries_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/adapters/out/postgres/orderrepo"
	"shipping/internal/adapters/out/postgres/userrepo"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetUserOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetUserOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
	alice     kernel.UUID
	bob       kernel.UUID
}

// mockAggregateTracker is a no-op tracker for seeding test data.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ interface{}) {}

func (suite *GetUserOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &userrepo.UserDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetUserOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})

	// Seed the user directory
	suite.alice = kernel.NewUUID()
	suite.bob = kernel.NewUUID()
	err = db.Create(&userrepo.UserDTO{ID: suite.alice.Bytes(), Login: "alice"}).Error
	suite.Require().NoError(err)
	err = db.Create(&userrepo.UserDTO{ID: suite.bob.Bytes(), Login: "bob"}).Error
	suite.Require().NoError(err)
}

func (suite *GetUserOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetUserOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetUserOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetUserOrdersQuery("alice", "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetUserOrdersQueryHandlerTestSuite) TestHandle_UnknownLogin_ReturnsEmptySlice() {
	suite.seedOrder(suite.alice, "a box of paperback books")

	query, err := queries.NewGetUserOrdersQuery("nobody", "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetUserOrdersQueryHandlerTestSuite) TestHandle_ReturnsOnlyOwnOrders() {
	ownOrder := suite.seedOrder(suite.alice, "a box of paperback books")
	suite.seedOrder(suite.bob, "a chess set")

	query, err := queries.NewGetUserOrdersQuery("alice", "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(ownOrder.ID().IsEqual(result[0].ID))
	suite.Equal("a box of paperback books", result[0].Description)
	suite.Equal(order.NotPaid, result[0].Status)
	suite.True(kernel.MoneyFromCents(2800).IsEqual(result[0].PriceInCents))
	suite.Nil(result[0].ShippingDate)
	suite.Nil(result[0].DeliveryDate)
}

func (suite *GetUserOrdersQueryHandlerTestSuite) TestHandle_StatusFilter_AppliesFilter() {
	suite.seedOrder(suite.alice, "a box of paperback books")
	shipped := suite.seedShippedOrder(suite.alice, "a chess set")

	query, err := queries.NewGetUserOrdersQuery("alice", "SHIPPED")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(shipped.ID().IsEqual(result[0].ID))
	suite.Equal(order.Shipped, result[0].Status)
	suite.NotNil(result[0].ShippingDate)
	suite.NotNil(result[0].DeliveryDate)
}

func (suite *GetUserOrdersQueryHandlerTestSuite) TestHandle_NoFilter_ReturnsAllStatuses() {
	suite.seedOrder(suite.alice, "a box of paperback books")
	suite.seedShippedOrder(suite.alice, "a chess set")

	query, err := queries.NewGetUserOrdersQuery("alice", "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 2)
}

// seedOrder persists a fresh unpaid order owned by the given user.
func (suite *GetUserOrdersQueryHandlerTestSuite) seedOrder(ownerID kernel.UUID, description string) *order.Order {
	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		ownerID,
		description,
		decimal.NewFromInt(2),
		1,
		1,
		kernel.MoneyFromCents(2800),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), testOrder))
	return testOrder
}

// seedShippedOrder persists an order already moved to the SHIPPED status.
func (suite *GetUserOrdersQueryHandlerTestSuite) seedShippedOrder(ownerID kernel.UUID, description string) *order.Order {
	testOrder := suite.seedOrder(ownerID, description)
	suite.Require().NoError(testOrder.MarkPaid(kernel.NewUUID()))
	suite.Require().NoError(testOrder.Ship(time.Now().UTC(), 3))
	suite.Require().NoError(suite.orderRepo.Update(context.Background(), testOrder))
	return testOrder
}

func TestGetUserOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetUserOrdersQueryHandlerTestSuite))
}
