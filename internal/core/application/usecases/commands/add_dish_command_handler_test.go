package commands_test

import (
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddDishCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	position, err := kernel.NewGeoPoint(37.5665, 126.9780)
	require.NoError(t, err)

	spicy := int64(100)
	cmd, err := commands.NewAddDishCommand(
		kernel.NewUUID(), restaurantID, ownerID,
		"Bulgogi Burger", 1200,
		[]restaurant.Option{{Name: "Spicy", Price: &spicy}},
	)
	require.NoError(t, err)

	owner, err := user.NewUser(ownerID, "Bob", user.Owner)
	require.NoError(t, err)
	rest, err := restaurant.NewRestaurant(restaurantID, ownerID, "Burger Joint", position)
	require.NoError(t, err)

	users := new(MockUserRepository)
	restaurants := new(MockRestaurantRepository)
	uow := new(MockRestaurantUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		users.On("Get", mock.Anything, ownerID).Return(owner, nil).Once(),
		uow.On("RestaurantRepository").Return(restaurants).Once(),
		restaurants.On("Get", mock.Anything, restaurantID).Return(rest, nil).Once(),
		uow.On("RestaurantRepository").Return(restaurants).Once(),
		restaurants.On("AddDish", mock.Anything, mock.AnythingOfType("*restaurant.Dish")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddDishCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	users.AssertExpectations(t)
	restaurants.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddDishCommandHandler_Handle_ForeignRestaurant(t *testing.T) {
	ctx := t.Context()
	actorID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	position, err := kernel.NewGeoPoint(37.5665, 126.9780)
	require.NoError(t, err)

	cmd, err := commands.NewAddDishCommand(kernel.NewUUID(), restaurantID, actorID, "Bulgogi Burger", 1200, nil)
	require.NoError(t, err)

	actor, err := user.NewUser(actorID, "Eve", user.Owner)
	require.NoError(t, err)
	// Restaurant owned by somebody else.
	rest, err := restaurant.NewRestaurant(restaurantID, kernel.NewUUID(), "Burger Joint", position)
	require.NoError(t, err)

	users := new(MockUserRepository)
	restaurants := new(MockRestaurantRepository)
	uow := new(MockRestaurantUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		users.On("Get", mock.Anything, actorID).Return(actor, nil).Once(),
		uow.On("RestaurantRepository").Return(restaurants).Once(),
		restaurants.On("Get", mock.Anything, restaurantID).Return(rest, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddDishCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	users.AssertExpectations(t)
	restaurants.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddDishCommandHandler_Handle_ClientCannotAddDish(t *testing.T) {
	ctx := t.Context()
	actorID := kernel.NewUUID()
	cmd, err := commands.NewAddDishCommand(kernel.NewUUID(), kernel.NewUUID(), actorID, "Bulgogi Burger", 1200, nil)
	require.NoError(t, err)

	actor, err := user.NewUser(actorID, "Carol", user.Client)
	require.NoError(t, err)

	users := new(MockUserRepository)
	uow := new(MockRestaurantUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		users.On("Get", mock.Anything, actorID).Return(actor, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddDishCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
}

func TestNewAddDishCommand_NegativePrice(t *testing.T) {
	_, err := commands.NewAddDishCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Burger", -1, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
