package exemption

import "errors"

var (
	ErrExemptionNotFound         = errors.New("exemption request not found")
	ErrExemptionAlreadyProcessed = errors.New("exemption request already processed")
	ErrExemptionNotApproved      = errors.New("only an approved exemption can be ended early")
	ErrEndDateBeforeStart        = errors.New("end date must not be before start date")
)
