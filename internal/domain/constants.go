package domain

// Default pricing values
const (
	DefaultShortStayThreshold = 3
	DefaultChildDiscountRate  = 0.3
)

// Business validation constants
const (
	MaxNameLength           = 200
	MaxCustomRequestsLength = 2000
	MaxChildrenAgesLength   = 200
	MaxTravelerCount        = 100
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AllStatuses lists every known booking status
var AllStatuses = []BookingStatus{
	StatusDraft,
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// ActiveStatuses lists statuses of bookings that are still in progress
var ActiveStatuses = []BookingStatus{
	StatusDraft,
	StatusPending,
	StatusConfirmed,
}
