package delivery

import (
	"time"

	"github.com/jinzhu/now"
)

// RescheduleRequest is the structured form of a client's proposal to move the
// hand-off date. It lives on the record as an optional sub-entity: no request is
// simply a nil pointer. The legacy string transport inside clientNotes is handled
// by the note codec (see notecodec.go) and only ever read, never written back.
type RescheduleRequest struct {
	requestedDate *time.Time
	reason        string
	requestedAt   *time.Time
}

// NewRescheduleRequest creates a reschedule request. Dates are normalized to day
// granularity in UTC; timestamps are truncated to whole seconds so that encoded
// forms round-trip exactly. Either date may be nil.
func NewRescheduleRequest(requestedDate *time.Time, reason string, requestedAt *time.Time) RescheduleRequest {
	return RescheduleRequest{
		requestedDate: normalizeToDay(requestedDate),
		reason:        reason,
		requestedAt:   normalizeToSecond(requestedAt),
	}
}

// RequestedDate returns the proposed hand-off date, nil when none was specified.
func (r RescheduleRequest) RequestedDate() *time.Time {
	return r.requestedDate
}

// Reason returns the client's stated reason, possibly empty.
func (r RescheduleRequest) Reason() string {
	return r.reason
}

// RequestedAt returns when the request was made, nil for legacy records.
func (r RescheduleRequest) RequestedAt() *time.Time {
	return r.requestedAt
}

func normalizeToDay(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	day := now.New(t.UTC()).BeginningOfDay()
	return &day
}

func normalizeToSecond(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	sec := t.UTC().Truncate(time.Second)
	return &sec
}

// NormalizeDate parses a date value arriving as text. It accepts a plain ISO-8601
// date or a full RFC 3339 timestamp, normalized to day granularity in UTC. A value
// that does not parse is treated as absent rather than an error: displaying "no
// date specified" beats surfacing a parse failure to the user.
func NormalizeDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return normalizeToDay(&t)
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return normalizeToDay(&t)
	}
	return nil
}
