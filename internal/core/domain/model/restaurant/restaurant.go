package restaurant

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was not
// created through the NewRestaurant factory method.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant represents a food vendor owned by exactly one user.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Must have a valid owner identifier
//   - Must have a non-empty name
//   - Must have a valid geographic position
type Restaurant struct {
	id       kernel.UUID
	ownerID  kernel.UUID
	name     string
	position kernel.GeoPoint

	isConstructed bool
}

// NewRestaurant creates a Restaurant with validation.
func NewRestaurant(id, ownerID kernel.UUID, name string, position kernel.GeoPoint) (*Restaurant, error) {
	restaurant := &Restaurant{
		isConstructed: true,
	}

	if err := errors.Join(
		restaurant.setID(id),
		restaurant.setOwnerID(ownerID),
		restaurant.setName(name),
		restaurant.setPosition(position),
	); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// RestoreRestaurant reconstructs a Restaurant from persistence.
func RestoreRestaurant(id, ownerID kernel.UUID, name string, position kernel.GeoPoint) (*Restaurant, error) {
	return NewRestaurant(id, ownerID, name, position)
}

// Validate ensures the Restaurant instance was properly constructed.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// IsEqual compares two restaurants by their unique identifiers.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// OwnerID returns the identifier of the owning user.
func (r *Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Position returns the restaurant's geographic position.
func (r *Restaurant) Position() kernel.GeoPoint {
	return r.position
}

// IsOwnedBy reports whether the given user owns this restaurant.
func (r *Restaurant) IsOwnedBy(userID kernel.UUID) bool {
	return r.ownerID.IsEqual(userID)
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	r.ownerID = ownerID
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Restaurant) setPosition(position kernel.GeoPoint) error {
	if err := position.Validate(); err != nil {
		return err
	}
	r.position = position
	return nil
}
