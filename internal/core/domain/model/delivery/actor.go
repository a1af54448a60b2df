package delivery

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Role identifies which side of the negotiation an actor is on.
type Role string

const (
	// RoleTrainer is the selling coach who owes the product.
	RoleTrainer Role = "trainer"

	// RoleClient is the buyer awaiting the product.
	RoleClient Role = "client"
)

// Validate checks that the role is either trainer or client.
func (r Role) Validate() error {
	if r != RoleTrainer && r != RoleClient {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
	return nil
}

// String returns the persisted form of the role.
func (r Role) String() string {
	return string(r)
}

// Actor is the authenticated party invoking a lifecycle operation. Authentication
// itself is a collaborator concern; the domain only checks that the actor is one of
// the two parties on the record and holds the role the operation requires.
//
// Actor is an immutable value object; construct through NewActor.
type Actor struct {
	id   kernel.UUID
	role Role
}

// NewActor creates an actor from a validated identifier and role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// ID returns the actor's identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// Validate checks the actor was built through NewActor.
func (a Actor) Validate() error {
	if err := a.id.Validate(); err != nil {
		return err
	}
	return a.role.Validate()
}
