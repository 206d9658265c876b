package queries_test

import (
	"context"
	"time"

	"eats/internal/adapters/out/postgres/orderrepo"
	"eats/internal/adapters/out/postgres/restaurantrepo"
	"eats/internal/adapters/out/postgres/userrepo"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker satisfies the repositories' tracker dependency without
// recording anything; query tests only care about what lands in the database.
type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(kernel.UUID, any) {}

// queryHandlerTestSuite is the shared fixture for query handler integration
// tests: one PostgreSQL container per suite, migrated schema, repositories for
// seeding and a clean database before each test.
type queryHandlerTestSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	orderRepo      *orderrepo.GormOrderRepository
	restaurantRepo *restaurantrepo.GormRestaurantRepository
	userRepo       *userrepo.GormUserRepository
}

func (suite *queryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(
		&userrepo.UserDTO{},
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.DishDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	suite.Require().NoError(err)

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, mockAggregateTracker{})
	suite.restaurantRepo = restaurantrepo.NewGormRestaurantRepository(db, mockAggregateTracker{})
	suite.userRepo = userrepo.NewGormUserRepository(db, mockAggregateTracker{})
}

func (suite *queryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *queryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE users, restaurants, dishes, orders, order_items CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *queryHandlerTestSuite) createUser(role user.Role) *user.User {
	u, err := user.NewUser(kernel.NewUUID(), "Test "+role.String(), role)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.userRepo.Add(context.Background(), u))
	return u
}

func (suite *queryHandlerTestSuite) createRestaurant(
	ownerID kernel.UUID, latitude, longitude float64,
) *restaurant.Restaurant {
	position, err := kernel.NewGeoPoint(latitude, longitude)
	suite.Require().NoError(err)

	r, err := restaurant.NewRestaurant(kernel.NewUUID(), ownerID, "Seoul Kitchen", position)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.restaurantRepo.Add(context.Background(), r))
	return r
}

func (suite *queryHandlerTestSuite) createOrder(
	restaurantID, customerID kernel.UUID, driverID *kernel.UUID, status order.Status,
) *order.Order {
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Bulgogi Bowl", nil, 1400)
	suite.Require().NoError(err)

	o, err := order.RestoreOrder(kernel.NewUUID(), restaurantID, customerID,
		driverID, status, []*order.Item{item}, item.Total())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}
