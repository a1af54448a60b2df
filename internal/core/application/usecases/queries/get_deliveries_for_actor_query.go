// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetDeliveriesForActorQueryIsNotConstructed = errors.New(
	"GetDeliveriesForActorQuery must be created via NewGetDeliveriesForActorQuery constructor",
)

// GetDeliveriesForActorQuery retrieves the deliveries visible to one party.
// A trainer sees the deliveries they owe, a client the deliveries owed to them;
// neither role can read across the partition.
//
// Example:
//
//	query, err := NewGetDeliveriesForActorQuery(actorID, delivery.RoleClient)
//	if err != nil {
//	    return err
//	}
//
//	deliveries, err := handler.Handle(ctx, query)
type GetDeliveriesForActorQuery struct {
	actorID kernel.UUID
	role    delivery.Role

	guard guard.ConstructorGuard
}

// NewGetDeliveriesForActorQuery creates a query scoped to one actor.
func NewGetDeliveriesForActorQuery(
	actorID kernel.UUID, role delivery.Role,
) (GetDeliveriesForActorQuery, error) {
	if err := actorID.Validate(); err != nil {
		return GetDeliveriesForActorQuery{}, err
	}
	if err := role.Validate(); err != nil {
		return GetDeliveriesForActorQuery{}, err
	}

	return GetDeliveriesForActorQuery{
		actorID: actorID,
		role:    role,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveriesForActorQueryIsNotConstructed if validation fails.
func (q GetDeliveriesForActorQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesForActorQueryIsNotConstructed)
}

// ActorID returns the party whose deliveries are requested.
func (q GetDeliveriesForActorQuery) ActorID() kernel.UUID {
	return q.actorID
}

// Role returns whether the actor is the trainer or the client side.
func (q GetDeliveriesForActorQuery) Role() delivery.Role {
	return q.role
}

// GetDeliveriesForActorQueryResponse is the delivery read model returned to
// the actor. It carries the fields a lifecycle overview needs and nothing
// internal, reschedule negotiation state included since both parties see it.
type GetDeliveriesForActorQueryResponse struct {
	ID             kernel.UUID
	OrderID        *kernel.UUID
	ProductName    string
	Quantity       int
	Status         delivery.Status
	Method         delivery.Method
	TrackingNumber string
	ScheduledDate  *time.Time
	DeliveredAt    *time.Time
	ConfirmedAt    *time.Time
	RescheduleDate *time.Time
	CreatedAt      time.Time
}
