package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	InboxActionRead    = "read"
	InboxActionClaim   = "claim"
	InboxActionReadAll = "read-all"
)

// MessageActionRequest drives the per-message state machine.
type MessageActionRequest struct {
	Action string `json:"action"`
}

func (r MessageActionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Action, validation.Required, validation.In(InboxActionRead, InboxActionClaim)),
	)
}

type InboxActionRequest struct {
	Action string `json:"action"`
}

func (r InboxActionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Action, validation.Required, validation.In(InboxActionReadAll)),
	)
}
