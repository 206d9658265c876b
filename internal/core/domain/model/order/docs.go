// Package order defines the Order aggregate, its items and the lifecycle status.
// An order is created Pending with a total frozen from its items' line totals.
// Status changes are role-gated by the access policy in the services package;
// driver assignment happens at most once per order.
package order
