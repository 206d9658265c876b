package queries_test

import (
	"context"
	"testing"

	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"

	"github.com/stretchr/testify/suite"
)

type GetOwnerOrdersQueryHandlerTestSuite struct {
	queryHandlerTestSuite
	handler queries.GetOwnerOrdersQueryHandler
}

func (suite *GetOwnerOrdersQueryHandlerTestSuite) SetupSuite() {
	suite.queryHandlerTestSuite.SetupSuite()
	suite.handler = queries.NewGetOwnerOrdersQueryHandler(suite.db)
}

func (suite *GetOwnerOrdersQueryHandlerTestSuite) TestHandle_ReturnsRestaurantOrdersWithItems() {
	client := suite.createUser(user.Client)
	owner := suite.createUser(user.Owner)
	r := suite.createRestaurant(owner.ID(), 50.45, 30.52)
	other := suite.createRestaurant(owner.ID(), 50.46, 30.53)

	o := suite.createOrder(r.ID(), client.ID(), nil, order.Pending)
	suite.createOrder(other.ID(), client.ID(), nil, order.Pending)

	query, err := queries.NewGetOwnerOrdersQuery(r.ID(), nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(o.ID()))
	suite.Require().Len(result[0].Items, 1)
	suite.Equal("Bulgogi Bowl", result[0].Items[0].DishName)
}

func (suite *GetOwnerOrdersQueryHandlerTestSuite) TestHandle_StatusListNarrowsResult() {
	client := suite.createUser(user.Client)
	owner := suite.createUser(user.Owner)
	r := suite.createRestaurant(owner.ID(), 50.45, 30.52)

	suite.createOrder(r.ID(), client.ID(), nil, order.Pending)
	cooking := suite.createOrder(r.ID(), client.ID(), nil, order.Cooking)
	cooked := suite.createOrder(r.ID(), client.ID(), nil, order.Cooked)

	query, err := queries.NewGetOwnerOrdersQuery(r.ID(), []order.Status{order.Cooking, order.Cooked})
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)
	ids := []string{result[0].ID.String(), result[1].ID.String()}
	suite.Contains(ids, cooking.ID().String())
	suite.Contains(ids, cooked.ID().String())
}

func (suite *GetOwnerOrdersQueryHandlerTestSuite) TestHandle_NoOrders_ReturnsEmptySlice() {
	owner := suite.createUser(user.Owner)
	r := suite.createRestaurant(owner.ID(), 50.45, 30.52)

	query, err := queries.NewGetOwnerOrdersQuery(r.ID(), nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func TestGetOwnerOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOwnerOrdersQueryHandlerTestSuite))
}
