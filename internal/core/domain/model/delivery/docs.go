// Package delivery contains the domain model for physical product fulfillment:
// the DeliveryRecord aggregate, its lifecycle state machine, and the reschedule
// negotiation between trainer and client.
//
// The aggregate is the sole authority over status changes. Every lifecycle method
// validates the acting party and the current state against a single declarative
// transition table, so the documented state diagram and the enforced one are the
// same artifact.
//
// The package also hosts the note codec that reads reschedule requests embedded in
// legacy client notes. New requests are stored structurally; the codec exists so
// rows written by the old system keep working without a migration step.
package delivery
