package delivery

import (
	"encoding/json"
	"strings"
	"time"
)

// The legacy mobile clients had no column for reschedule requests, so the request
// rode inside the client-authored notes field. Two historical encodings exist and
// both must remain readable:
//
//  1. Versioned: a fixed prefix followed by a JSON payload. Canonical for every
//     request the legacy system wrote after the format was introduced.
//  2. Free text: any note containing the marker phrase "reschedule requested"
//     (case-insensitive); the substring after the first colon is the reason.
//
// This codec is a migration path only. New requests are stored structurally; the
// decoder runs on the persistence read side to adopt payloads still embedded in
// old rows, and the encoder exists for export tooling and round-trip verification.

// RescheduleNotePrefix marks the versioned encoding inside a client note.
const RescheduleNotePrefix = "[RESCHEDULE_REQUEST_V1]"

const legacyRescheduleMarker = "reschedule requested"

type rescheduleNotePayload struct {
	RequestedDate *string `json:"requestedDate"`
	Reason        *string `json:"reason"`
	RequestedAt   *string `json:"requestedAt"`
}

// EncodeRescheduleNote renders a request in the versioned form. The decoder
// reproduces the input exactly: DecodeRescheduleNote(EncodeRescheduleNote(r)) == r.
func EncodeRescheduleNote(req RescheduleRequest) string {
	payload := rescheduleNotePayload{}
	if d := req.RequestedDate(); d != nil {
		s := d.Format("2006-01-02")
		payload.RequestedDate = &s
	}
	if req.Reason() != "" {
		s := req.Reason()
		payload.Reason = &s
	}
	if at := req.RequestedAt(); at != nil {
		s := at.Format(time.RFC3339)
		payload.RequestedAt = &s
	}

	// Marshalling a struct of strings cannot fail.
	raw, _ := json.Marshal(payload)
	return RescheduleNotePrefix + string(raw)
}

// DecodeRescheduleNote extracts a reschedule request from free text. It is total:
// any input, including empty strings, malformed JSON after the prefix, and
// unrelated text, yields either a request or nil, never an error. A corrupted
// payload must not block the rest of the lifecycle.
func DecodeRescheduleNote(text string) *RescheduleRequest {
	if strings.HasPrefix(text, RescheduleNotePrefix) {
		var payload rescheduleNotePayload
		if err := json.Unmarshal([]byte(text[len(RescheduleNotePrefix):]), &payload); err != nil {
			return nil
		}

		var reason string
		if payload.Reason != nil {
			reason = *payload.Reason
		}
		var requestedAt *time.Time
		if payload.RequestedAt != nil {
			if at, err := time.Parse(time.RFC3339, *payload.RequestedAt); err == nil {
				requestedAt = &at
			}
		}
		var requestedDate *time.Time
		if payload.RequestedDate != nil {
			requestedDate = NormalizeDate(*payload.RequestedDate)
		}

		req := NewRescheduleRequest(requestedDate, reason, requestedAt)
		return &req
	}

	if strings.Contains(strings.ToLower(text), legacyRescheduleMarker) {
		reason := ""
		if idx := strings.Index(text, ":"); idx >= 0 {
			reason = strings.TrimSpace(text[idx+1:])
		}
		req := NewRescheduleRequest(nil, reason, nil)
		return &req
	}

	return nil
}
