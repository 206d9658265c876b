package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/guard"
)

var ErrEditOrderStatusCommandIsNotConstructed = errors.New(
	"EditOrderStatusCommand must be created via NewEditOrderStatusCommand constructor",
)

// EditOrderStatusCommand represents a request to move an order to a new
// lifecycle status on behalf of the acting user.
type EditOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewEditOrderStatusCommand creates a command to change an order's status.
func NewEditOrderStatusCommand(orderID, actorID kernel.UUID, status order.Status) (EditOrderStatusCommand, error) {
	command := EditOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setActorID(actorID),
		command.setStatus(status),
	); err != nil {
		return EditOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c EditOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to change.
func (c EditOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the acting user.
func (c EditOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Status returns the target lifecycle status.
func (c EditOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *EditOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *EditOrderStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *EditOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
