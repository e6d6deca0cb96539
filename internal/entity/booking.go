package entity

// DateLayout is the UTC timestamp format stamped on every record.
const DateLayout = "2006-01-02T15:04:05Z"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
)

type Booking struct {
	ID       int           `json:"id"`
	Category string        `json:"category"`
	Event    string        `json:"event"`
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Date     string        `json:"date"`
	Status   BookingStatus `json:"status"`
}

// CreateBookingRequest keeps every field optional so that absent and empty
// values can be told apart from the zero value.
type CreateBookingRequest struct {
	Category *string `json:"category"`
	Event    *string `json:"event"`
	Name     *string `json:"name"`
	Email    *string `json:"email"`
}

func (r *CreateBookingRequest) Validate() error {
	if !present(r.Category, r.Event, r.Name, r.Email) {
		return ErrMissingFields
	}
	return nil
}

// present reports whether every field was sent as a non-empty string.
func present(fields ...*string) bool {
	for _, f := range fields {
		if f == nil || *f == "" {
			return false
		}
	}
	return true
}
