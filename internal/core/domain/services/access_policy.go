package services

import (
	"fmt"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
)

// AccessPolicy decides which users may view an order and which roles may set
// which order statuses.
//
// Viewing: a client sees their own orders, a delivery user the orders assigned
// to them, an owner the orders of their restaurants.
//
// Status edits check the target status against the actor's role, not the strict
// lifecycle sequence: owners set Cooking or Cooked, delivery users set PickedUp
// or Delivered, clients never change status.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanView reports whether the user may read the order. restaurantOwnerID is the
// owner of the restaurant the order was placed at; the caller resolves it since
// the order aggregate only references the restaurant by ID.
func (AccessPolicy) CanView(u *user.User, o *order.Order, restaurantOwnerID kernel.UUID) bool {
	if u == nil || o == nil {
		return false
	}

	switch u.Role() {
	case user.Client:
		return o.CustomerID().IsEqual(u.ID())
	case user.Delivery:
		return o.Driver() != nil && o.Driver().IsEqual(u.ID())
	case user.Owner:
		return restaurantOwnerID.IsEqual(u.ID())
	default:
		return false
	}
}

// CheckView is CanView as an error-returning check.
// Returns a PermissionDenied error when the user may not read the order.
func (p AccessPolicy) CheckView(u *user.User, o *order.Order, restaurantOwnerID kernel.UUID) error {
	if !p.CanView(u, o, restaurantOwnerID) {
		return errs.NewPermissionDeniedError("view order")
	}
	return nil
}

// CheckEditStatus decides whether a role may set the given target status.
// Returns a PermissionDenied error for any disallowed combination.
func (AccessPolicy) CheckEditStatus(role user.Role, target order.Status) error {
	switch role {
	case user.Client:
		return errs.NewPermissionDeniedErrorWithCause("edit order",
			fmt.Errorf("clients cannot change order status"))
	case user.Owner:
		if target != order.Cooking && target != order.Cooked {
			return errs.NewPermissionDeniedErrorWithCause("edit order",
				fmt.Errorf("owner cannot set status %s", target))
		}
		return nil
	case user.Delivery:
		if target != order.PickedUp && target != order.Delivered {
			return errs.NewPermissionDeniedErrorWithCause("edit order",
				fmt.Errorf("delivery cannot set status %s", target))
		}
		return nil
	default:
		return errs.NewPermissionDeniedErrorWithCause("edit order",
			fmt.Errorf("unknown role %d", role))
	}
}
