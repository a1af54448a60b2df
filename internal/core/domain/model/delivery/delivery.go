package delivery

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a DeliveryRecord instance was not
// created through NewDeliveryRecord or RestoreDeliveryRecord.
var ErrDeliveryIsNotConstructed = errors.New(
	"DeliveryRecord must be created via NewDeliveryRecord or RestoreDeliveryRecord",
)

// DeliveryRecord is the aggregate root for one product-delivery obligation: a
// purchased physical product owed by a trainer to a client. It owns the lifecycle
// status, the timestamps that accompany each transition, and the optional pending
// reschedule request.
//
// Invariants:
//   - status is always one of the eight enumerated values
//   - confirmed and cancelled are terminal; no transition leaves them
//   - deliveredAt is set exactly once, when the record reaches delivered
//   - a pending reschedule request exists only in pending, ready, or scheduled
//   - every mutation goes through a lifecycle method validated against the
//     transition table; there is no other way to change status
//
// Records are never hard-deleted; cancellation is a terminal status, not removal.
type DeliveryRecord struct {
	id          kernel.UUID
	orderID     *kernel.UUID
	orderItemID *kernel.UUID
	trainerID   kernel.UUID
	clientID    kernel.UUID

	productID   *kernel.UUID
	productName string
	quantity    int

	status         Status
	method         Method
	trackingNumber string
	scheduledDate  *time.Time
	deliveredAt    *time.Time
	confirmedAt    *time.Time

	notes       string
	clientNotes string
	reschedule  *RescheduleRequest

	disputeReason string
	cancelReason  string

	version int64

	isConstructed bool
}

// NewDeliveryRecord creates a delivery obligation in pending status. Trainer and
// client are the two negotiating parties and are immutable afterwards. Optional
// attributes (order back-references, product ID, tracking number, notes) are
// attached through the corresponding methods before first persistence.
func NewDeliveryRecord(
	id kernel.UUID,
	trainerID kernel.UUID,
	clientID kernel.UUID,
	productName string,
	quantity int,
	method Method,
) (*DeliveryRecord, error) {
	d := &DeliveryRecord{
		status:        StatusPending,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setParties(trainerID, clientID),
		d.setProductName(productName),
		d.setQuantity(quantity),
		d.setMethod(method),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDeliveryParams carries the persisted attributes needed to reconstruct a
// record. Used by the persistence adapter only.
type RestoreDeliveryParams struct {
	ID             kernel.UUID
	OrderID        *kernel.UUID
	OrderItemID    *kernel.UUID
	TrainerID      kernel.UUID
	ClientID       kernel.UUID
	ProductID      *kernel.UUID
	ProductName    string
	Quantity       int
	Status         Status
	Method         Method
	TrackingNumber string
	ScheduledDate  *time.Time
	DeliveredAt    *time.Time
	ConfirmedAt    *time.Time
	Notes          string
	ClientNotes    string
	Reschedule     *RescheduleRequest
	DisputeReason  string
	CancelReason   string
	Version        int64
}

// RestoreDeliveryRecord reconstructs a record from persistence without replaying
// its history. The stored status and version are trusted but still validated.
func RestoreDeliveryRecord(params RestoreDeliveryParams) (*DeliveryRecord, error) {
	d := &DeliveryRecord{
		status:        params.Status,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(params.ID),
		d.setParties(params.TrainerID, params.ClientID),
		d.setProductName(params.ProductName),
		d.setQuantity(params.Quantity),
		d.setMethod(params.Method),
		params.Status.Validate(),
		d.setVersion(params.Version),
	); err != nil {
		return nil, err
	}

	d.orderID = params.OrderID
	d.orderItemID = params.OrderItemID
	d.productID = params.ProductID
	d.trackingNumber = params.TrackingNumber
	d.scheduledDate = params.ScheduledDate
	d.deliveredAt = params.DeliveredAt
	d.confirmedAt = params.ConfirmedAt
	d.notes = params.Notes
	d.clientNotes = params.ClientNotes
	d.disputeReason = params.DisputeReason
	d.cancelReason = params.CancelReason
	if params.Status.AllowsReschedule() {
		d.reschedule = params.Reschedule
	}

	return d, nil
}

// Validate ensures the record was built through a constructor.
func (d *DeliveryRecord) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two records by identifier.
func (d *DeliveryRecord) IsEqual(other *DeliveryRecord) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the record's unique identifier.
func (d *DeliveryRecord) ID() kernel.UUID {
	return d.id
}

// OrderID returns the owning order, nil for records created outside a formal order.
func (d *DeliveryRecord) OrderID() *kernel.UUID {
	return d.orderID
}

// OrderItemID returns the owning order line item, nil when absent.
func (d *DeliveryRecord) OrderItemID() *kernel.UUID {
	return d.orderItemID
}

// TrainerID returns the trainer party.
func (d *DeliveryRecord) TrainerID() kernel.UUID {
	return d.trainerID
}

// ClientID returns the client party.
func (d *DeliveryRecord) ClientID() kernel.UUID {
	return d.clientID
}

// ProductID returns the catalog product reference, nil when absent.
func (d *DeliveryRecord) ProductID() *kernel.UUID {
	return d.productID
}

// ProductName returns the human-readable name of what is owed.
func (d *DeliveryRecord) ProductName() string {
	return d.productName
}

// Quantity returns how many units are owed.
func (d *DeliveryRecord) Quantity() int {
	return d.quantity
}

// Status returns the current lifecycle state.
func (d *DeliveryRecord) Status() Status {
	return d.status
}

// DeliveryMethod returns how the product reaches the client.
func (d *DeliveryRecord) DeliveryMethod() Method {
	return d.method
}

// TrackingNumber returns the carrier tracking number, empty unless shipped.
func (d *DeliveryRecord) TrackingNumber() string {
	return d.trackingNumber
}

// ScheduledDate returns the agreed hand-off date, nil when none is set.
func (d *DeliveryRecord) ScheduledDate() *time.Time {
	return d.scheduledDate
}

// DeliveredAt returns when the hand-off happened. Non-nil if and only if the
// record has ever reached delivered.
func (d *DeliveryRecord) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// ConfirmedAt returns when the client confirmed receipt, nil before confirmation.
func (d *DeliveryRecord) ConfirmedAt() *time.Time {
	return d.confirmedAt
}

// Notes returns the trainer-authored free text. Never parsed.
func (d *DeliveryRecord) Notes() string {
	return d.notes
}

// ClientNotes returns the client-authored free text. Legacy rows may carry an
// encoded reschedule payload here; the persistence adapter strips it on read and
// adopts it as the structured request.
func (d *DeliveryRecord) ClientNotes() string {
	return d.clientNotes
}

// RescheduleRequest returns the pending request, nil when there is none.
func (d *DeliveryRecord) RescheduleRequest() *RescheduleRequest {
	return d.reschedule
}

// DisputeReason returns the client's complaint, set only when disputed.
func (d *DeliveryRecord) DisputeReason() string {
	return d.disputeReason
}

// CancelReason returns why the obligation was abandoned, set only when cancelled.
func (d *DeliveryRecord) CancelReason() string {
	return d.cancelReason
}

// Version returns the optimistic concurrency counter the record was read at.
func (d *DeliveryRecord) Version() int64 {
	return d.version
}

// AdvanceVersion moves the counter forward after a successful version-guarded
// write, keeping the in-memory aggregate aligned with the stored row. Called by
// the persistence adapter only.
func (d *DeliveryRecord) AdvanceVersion() {
	d.version++
}

// AttachOrder records the back-reference to the owning purchase.
func (d *DeliveryRecord) AttachOrder(orderID, orderItemID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), orderItemID.Validate()); err != nil {
		return err
	}
	d.orderID = &orderID
	d.orderItemID = &orderItemID
	return nil
}

// AttachProduct records the catalog product reference.
func (d *DeliveryRecord) AttachProduct(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	d.productID = &productID
	return nil
}

// SetTrackingNumber records a carrier tracking number. Only shipped deliveries
// carry one.
func (d *DeliveryRecord) SetTrackingNumber(trackingNumber string) error {
	if d.method != MethodShipped {
		return errs.NewValueIsInvalidErrorWithCause("tracking number",
			fmt.Errorf("delivery method %s does not carry a tracking number", d.method))
	}
	d.trackingNumber = trackingNumber
	return nil
}

// SetNotes replaces the trainer-authored free text.
func (d *DeliveryRecord) SetNotes(notes string) {
	d.notes = notes
}

// SetClientNotes replaces the client-authored free text.
func (d *DeliveryRecord) SetClientNotes(notes string) {
	d.clientNotes = notes
}

// MarkReady moves a pending record to ready. Trainer only.
func (d *DeliveryRecord) MarkReady(actor Actor) error {
	if err := d.authorize(actor, OpMarkReady); err != nil {
		return err
	}

	d.transitionTo(StatusReady)
	return nil
}

// MarkScheduled records an agreed hand-off date. Trainer only, from pending or ready.
func (d *DeliveryRecord) MarkScheduled(actor Actor, date time.Time) error {
	if err := d.authorize(actor, OpMarkScheduled); err != nil {
		return err
	}
	if date.IsZero() {
		return errs.NewValueIsRequiredError("scheduled date")
	}

	d.transitionTo(StatusScheduled)
	d.scheduledDate = normalizeToDay(&date)
	return nil
}

// MarkOutForDelivery notes that the product left the trainer's hands. Trainer only.
func (d *DeliveryRecord) MarkOutForDelivery(actor Actor) error {
	if err := d.authorize(actor, OpMarkOutForDelivery); err != nil {
		return err
	}

	d.transitionTo(StatusOutForDelivery)
	return nil
}

// MarkDelivered records the hand-off at the given time. Trainer only. The
// delivered timestamp is written exactly once: delivered cannot be re-entered.
func (d *DeliveryRecord) MarkDelivered(actor Actor, at time.Time) error {
	if err := d.authorize(actor, OpMarkDelivered); err != nil {
		return err
	}

	d.transitionTo(StatusDelivered)
	deliveredAt := at.UTC()
	d.deliveredAt = &deliveredAt
	return nil
}

// ConfirmReceipt is the client acknowledging the hand-off, closing the happy path.
func (d *DeliveryRecord) ConfirmReceipt(actor Actor, at time.Time) error {
	if err := d.authorize(actor, OpConfirmReceipt); err != nil {
		return err
	}

	d.transitionTo(StatusConfirmed)
	confirmedAt := at.UTC()
	d.confirmedAt = &confirmedAt
	return nil
}

// ReportIssue is the client disputing the delivery. Allowed from delivered, and
// from ready as the legacy system permitted.
func (d *DeliveryRecord) ReportIssue(actor Actor, reason string) error {
	if err := d.authorize(actor, OpReportIssue); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("dispute reason")
	}

	d.transitionTo(StatusDisputed)
	d.disputeReason = reason
	return nil
}

// Cancel abandons the obligation from any non-terminal state. Either party may cancel.
func (d *DeliveryRecord) Cancel(actor Actor, reason string) error {
	if err := d.authorize(actor, OpCancel); err != nil {
		return err
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("cancel reason")
	}

	d.transitionTo(StatusCancelled)
	d.cancelReason = reason
	return nil
}

// RequestReschedule records the client's proposal to move the hand-off date.
// Status is unchanged; the request waits for the trainer's decision. A new request
// replaces any earlier unresolved one.
func (d *DeliveryRecord) RequestReschedule(actor Actor, proposedDate *time.Time, reason string, at time.Time) error {
	if err := d.authorize(actor, OpRequestReschedule); err != nil {
		return err
	}

	requestedAt := at.UTC()
	req := NewRescheduleRequest(proposedDate, reason, &requestedAt)
	d.reschedule = &req
	return nil
}

// ApproveReschedule accepts the pending request: the record becomes scheduled for
// the trainer's chosen date (which may differ from the proposal) and the request
// is cleared.
func (d *DeliveryRecord) ApproveReschedule(actor Actor, newDate time.Time) error {
	if err := d.authorize(actor, OpApproveReschedule); err != nil {
		return err
	}
	if newDate.IsZero() {
		return errs.NewValueIsRequiredError("new scheduled date")
	}

	d.transitionTo(StatusScheduled)
	d.scheduledDate = normalizeToDay(&newDate)
	d.reschedule = nil
	return nil
}

// RejectReschedule declines the pending request. Status is unchanged; the request
// is cleared regardless of outcome.
func (d *DeliveryRecord) RejectReschedule(actor Actor) error {
	if err := d.authorize(actor, OpRejectReschedule); err != nil {
		return err
	}

	d.reschedule = nil
	return nil
}

// transitionTo applies the already-validated status change and maintains the
// invariant that a pending reschedule request cannot outlive the states it is
// meaningful in.
func (d *DeliveryRecord) transitionTo(next Status) {
	d.status = next
	if !next.AllowsReschedule() {
		d.reschedule = nil
	}
}

// authorize validates an operation against the transition table: the actor must be
// a party on the record, hold a role the operation permits, and the record must be
// in an allowed source state. Wrong actor and wrong state produce distinct errors.
func (d *DeliveryRecord) authorize(actor Actor, op Operation) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}

	rule, ok := transitionRules[op]
	if !ok {
		return errs.NewInvalidTransitionError(string(op), d.status.String())
	}

	if !rule.allowsRole(actor.Role()) {
		return errs.NewUnauthorizedError(string(op), actor.Role().String())
	}

	var party kernel.UUID
	switch actor.Role() {
	case RoleTrainer:
		party = d.trainerID
	case RoleClient:
		party = d.clientID
	}
	if !actor.ID().IsEqual(party) {
		return errs.NewUnauthorizedErrorWithCause(string(op), actor.Role().String(),
			fmt.Errorf("actor %s is not the %s on this delivery", actor.ID(), actor.Role()))
	}

	if !rule.allowsSource(d.status) {
		return errs.NewInvalidTransitionError(string(op), d.status.String())
	}

	if rule.requiresPendingRequest && d.reschedule == nil {
		return errs.NewInvalidTransitionErrorWithCause(string(op), d.status.String(),
			errors.New("no pending reschedule request"))
	}

	return nil
}

func (d *DeliveryRecord) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *DeliveryRecord) setParties(trainerID, clientID kernel.UUID) error {
	var trainerErr, clientErr error
	if err := trainerID.Validate(); err != nil {
		trainerErr = errs.NewValueIsRequiredErrorWithCause("trainer ID", err)
	}
	if err := clientID.Validate(); err != nil {
		clientErr = errs.NewValueIsRequiredErrorWithCause("client ID", err)
	}
	if trainerErr != nil || clientErr != nil {
		return errors.Join(trainerErr, clientErr)
	}
	d.trainerID = trainerID
	d.clientID = clientID
	return nil
}

func (d *DeliveryRecord) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	d.productName = productName
	return nil
}

func (d *DeliveryRecord) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	d.quantity = quantity
	return nil
}

func (d *DeliveryRecord) setMethod(method Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	d.method = method
	return nil
}

func (d *DeliveryRecord) setVersion(version int64) error {
	if version <= 0 {
		return errs.NewVersionIsInvalidError("delivery version",
			fmt.Errorf("%d is not greater than 0", version))
	}
	d.version = version
	return nil
}
