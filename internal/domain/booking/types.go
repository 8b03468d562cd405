package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusConfirmed, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// HoldsSlot reports whether a booking in this status owns its interval.
func (s Status) HoldsSlot() bool {
	return s == StatusApproved || s == StatusConfirmed
}

// Hard conflicts block approval; soft conflicts are rejected by the cascade.
var (
	HardConflictStatuses = []Status{StatusApproved, StatusConfirmed}
	SoftConflictStatuses = []Status{StatusPending}
)

// PaymentFlag is the booking-level cache of the current payment state.
type PaymentFlag string

const (
	PaymentFlagUnpaid PaymentFlag = "unpaid"
	PaymentFlagPaid   PaymentFlag = "paid"
)

func (f PaymentFlag) String() string {
	return string(f)
}

const ConflictRejectionReason = "conflict with an approved booking"
