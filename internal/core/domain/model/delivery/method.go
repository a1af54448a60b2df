package delivery

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Method describes how the product reaches the client. It is informational and
// never affects state transitions; the only rule attached to it is that a tracking
// number may be set for shipped deliveries only.
type Method string

const (
	MethodInPerson  Method = "in_person"
	MethodLocker    Method = "locker"
	MethodFrontDesk Method = "front_desk"
	MethodShipped   Method = "shipped"
)

func validMethods() map[Method]struct{} {
	return map[Method]struct{}{
		MethodInPerson:  {},
		MethodLocker:    {},
		MethodFrontDesk: {},
		MethodShipped:   {},
	}
}

// Validate checks that the method is one of the four enumerated values.
func (m Method) Validate() error {
	if _, ok := validMethods()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery method is invalid",
			fmt.Errorf("%q is not a valid delivery method", string(m)))
	}
	return nil
}

// String returns the persisted form of the method.
func (m Method) String() string {
	return string(m)
}
