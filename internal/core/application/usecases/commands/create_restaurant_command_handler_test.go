package commands_test

import (
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateRestaurantCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	position, err := kernel.NewGeoPoint(37.5665, 126.9780)
	require.NoError(t, err)
	cmd, err := commands.NewCreateRestaurantCommand(kernel.NewUUID(), ownerID, "Pizza Place", position)
	require.NoError(t, err)

	owner, err := user.NewUser(ownerID, "Bob", user.Owner)
	require.NoError(t, err)

	users := new(MockUserRepository)
	restaurants := new(MockRestaurantRepository)
	uow := new(MockRestaurantUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		users.On("Get", mock.Anything, ownerID).Return(owner, nil).Once(),
		uow.On("RestaurantRepository").Return(restaurants).Once(),
		restaurants.On("Add", mock.Anything, mock.AnythingOfType("*restaurant.Restaurant")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRestaurantCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	users.AssertExpectations(t)
	restaurants.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateRestaurantCommandHandler_Handle_NotAnOwner(t *testing.T) {
	ctx := t.Context()
	actorID := kernel.NewUUID()
	position, err := kernel.NewGeoPoint(37.5665, 126.9780)
	require.NoError(t, err)
	cmd, err := commands.NewCreateRestaurantCommand(kernel.NewUUID(), actorID, "Pizza Place", position)
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

	h := commands.NewCreateRestaurantCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	users.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateRestaurantCommandHandler_Handle_OwnerNotFound(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	position, err := kernel.NewGeoPoint(37.5665, 126.9780)
	require.NoError(t, err)
	cmd, err := commands.NewCreateRestaurantCommand(kernel.NewUUID(), ownerID, "Pizza Place", position)
	require.NoError(t, err)

	users := new(MockUserRepository)
	uow := new(MockRestaurantUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(users).Once(),
		users.On("Get", mock.Anything, ownerID).
			Return(nil, errs.NewObjectNotFoundError("user", ownerID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRestaurantCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	users.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
