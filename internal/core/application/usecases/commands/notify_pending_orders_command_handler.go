package commands

import (
	"context"
	"time"

	"eats/internal/core/ports"
)

// NotifyPendingOrdersCommandHandler re-announces stale pending orders on the
// pending channel. It is driven by the scheduled reminder job and never mutates
// state; the transaction only provides a consistent read.
type NotifyPendingOrdersCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
}

// NewNotifyPendingOrdersCommandHandler creates a handler for the reminder command.
func NewNotifyPendingOrdersCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
) NotifyPendingOrdersCommandHandler {
	return NotifyPendingOrdersCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle loads every order still Pending after the configured age, resolves the
// owning restaurant of each and republishes them for the owners.
func (h NotifyPendingOrdersCommandHandler) Handle(ctx context.Context, cmd NotifyPendingOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	createdBefore := time.Now().Add(-cmd.OlderThan())
	stale, err := uow.OrderRepository().GetAllPendingBefore(ctx, createdBefore)
	if err != nil {
		return err
	}

	events := make([]ports.OrderEvent, 0, len(stale))
	for _, pending := range stale {
		rest, err := uow.RestaurantRepository().Get(ctx, pending.RestaurantID())
		if err != nil {
			return err
		}
		events = append(events, ports.OrderEvent{
			Channel: ports.ChannelPendingOrder,
			Order:   pending,
			OwnerID: rest.OwnerID(),
		})
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, event := range events {
		h.publisher.Publish(ctx, event)
	}

	return nil
}
