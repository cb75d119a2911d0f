package response

// BookingResponse exposes only the booking token, never the row id.
type BookingResponse struct {
	BookingID string `json:"bookingId"`
}
