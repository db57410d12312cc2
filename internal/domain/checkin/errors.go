package checkin

import "errors"

var (
	ErrAlreadyCheckedIn = errors.New("you have already checked in today")
	ErrNotEligible      = errors.New("check-in is not open right now")
	ErrOnExemption      = errors.New("you are on an approved exemption today")
	ErrCheckInNotFound  = errors.New("check-in record not found")
)
