package booking

import "time"

// Pure pre-persistence checks. No side effects; the caller maps the
// returned error onto its transport.

// ValidateDates requires a non-zero start strictly before end, and a
// start that is not in the past relative to now.
func ValidateDates(start, end, now time.Time) error {
	if start.IsZero() || end.IsZero() {
		return ErrInvalidDateRange
	}
	if !start.Before(end) {
		return ErrInvalidDateRange
	}
	if start.Before(now) {
		return ErrInvalidDateRange
	}
	return nil
}

// ValidateOwnership rejects a booker trying to book their own item.
func ValidateOwnership(bookerID, ownerID int64) error {
	if bookerID == ownerID {
		return ErrSelfBooking
	}
	return nil
}

// ValidateAvailability rejects items the owner has switched off.
func ValidateAvailability(available bool) error {
	if !available {
		return ErrItemUnavailable
	}
	return nil
}
