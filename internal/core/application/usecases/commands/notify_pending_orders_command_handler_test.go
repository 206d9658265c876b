package commands_test

import (
	"testing"
	"time"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotifyPendingOrdersCommandHandler_Handle_RepublishesStaleOrders(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	position, err := kernel.NewGeoPoint(37.5665, 126.9780)
	require.NoError(t, err)

	rest, err := restaurant.NewRestaurant(restaurantID, ownerID, "Burger Joint", position)
	require.NoError(t, err)
	stale := newTestOrder(t, restaurantID, kernel.NewUUID())

	cmd, err := commands.NewNotifyPendingOrdersCommand(5 * time.Minute)
	require.NoError(t, err)

	restaurants := new(MockRestaurantRepository)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("GetAllPendingBefore", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{stale}, nil).Once(),
		uow.On("RestaurantRepository").Return(restaurants).Once(),
		restaurants.On("Get", mock.Anything, restaurantID).Return(rest, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e ports.OrderEvent) bool {
		return e.Channel == ports.ChannelPendingOrder &&
			e.OwnerID.IsEqual(ownerID) &&
			e.Order.IsEqual(stale)
	})).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewNotifyPendingOrdersCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	orders.AssertExpectations(t)
	restaurants.AssertExpectations(t)
	publisher.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestNotifyPendingOrdersCommandHandler_Handle_NothingStale(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewNotifyPendingOrdersCommand(5 * time.Minute)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("GetAllPendingBefore", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	publisher := new(MockEventPublisher)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewNotifyPendingOrdersCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestNewNotifyPendingOrdersCommand_NegativeDuration(t *testing.T) {
	_, err := commands.NewNotifyPendingOrdersCommand(-time.Minute)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
