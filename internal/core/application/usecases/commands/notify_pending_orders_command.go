package commands

import (
	"errors"
	"fmt"
	"time"

	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrNotifyPendingOrdersCommandIsNotConstructed = errors.New(
	"NotifyPendingOrdersCommand must be created via NewNotifyPendingOrdersCommand constructor",
)

// NotifyPendingOrdersCommand represents a request to re-announce orders that
// have stayed Pending for at least the given duration, so restaurant owners do
// not miss them.
type NotifyPendingOrdersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewNotifyPendingOrdersCommand creates a command to re-announce stale pending orders.
func NewNotifyPendingOrdersCommand(olderThan time.Duration) (NotifyPendingOrdersCommand, error) {
	command := NotifyPendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOlderThan(olderThan); err != nil {
		return NotifyPendingOrdersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c NotifyPendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrNotifyPendingOrdersCommandIsNotConstructed)
}

// OlderThan returns the minimal age of pending orders to re-announce.
func (c NotifyPendingOrdersCommand) OlderThan() time.Duration {
	return c.olderThan
}

func (c *NotifyPendingOrdersCommand) setOlderThan(olderThan time.Duration) error {
	if olderThan < 0 {
		return errs.NewValueIsInvalidErrorWithCause("olderThan",
			fmt.Errorf("%s is negative", olderThan))
	}
	c.olderThan = olderThan
	return nil
}
