package queries_test

import (
	"context"
	"testing"
	"time"

	"ordermanagement/internal/adapters/out/postgres/orderrepo"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrdersQueryHandlerTestSuite) addOrder(status order.Status) *order.Order {
	aggregate, err := order.NewOrder("Jane Doe", "jane@example.com")
	suite.Require().NoError(err)

	item, err := order.NewItem("Widget", 1, 10.0)
	suite.Require().NoError(err)
	aggregate.AddItem(item)

	if status != order.Pending {
		suite.Require().NoError(aggregate.OverrideStatus(status))
	}
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_NoFilter_ReturnsAllOrders() {
	suite.addOrder(order.Pending)
	suite.addOrder(order.Shipped)
	suite.addOrder(order.Cancelled)

	query := queries.NewGetOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 3)
	for _, r := range result {
		suite.Len(r.Items, 1)
		suite.InDelta(10.0, r.TotalAmount, 0.0001)
	}
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_StatusFilter_ReturnsExactMatchesOnly() {
	pending1 := suite.addOrder(order.Pending)
	pending2 := suite.addOrder(order.Pending)
	suite.addOrder(order.Shipped)
	suite.addOrder(order.Delivered)

	query, err := queries.NewGetOrdersInStatusQuery(order.Pending)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 2)

	resultIDs := make(map[kernel.UUID]bool)
	for _, r := range result {
		suite.Equal("PENDING", r.Status)
		resultIDs[r.ID] = true
	}
	suite.True(resultIDs[pending1.ID()])
	suite.True(resultIDs[pending2.ID()])
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_StatusFilterWithNoMatches_ReturnsEmptySlice() {
	suite.addOrder(order.Pending)

	query, err := queries.NewGetOrdersInStatusQuery(order.Delivered)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_OrdersSortedByCreationTime() {
	first := suite.addOrder(order.Pending)
	second := suite.addOrder(order.Pending)
	third := suite.addOrder(order.Pending)

	query := queries.NewGetOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.True(result[0].ID.IsEqual(first.ID()))
	suite.True(result[1].ID.IsEqual(second.ID()))
	suite.True(result[2].ID.IsEqual(third.ID()))
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestGetOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrdersQueryHandlerTestSuite))
}
