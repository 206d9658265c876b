// Package user defines the User entity and the Role enumeration.
// A user's role decides which order operations they may perform:
// clients place orders, owners run restaurants and cook, delivery
// users take and deliver orders.
package user
