package request

// ShowtimeRequest carries both create and update payloads. Timestamps stay
// strings here: the scheduler parses them and quotes the raw input back in
// its overlap conflict message.
type ShowtimeRequest struct {
	MovieID   int64   `json:"movieId" validate:"required"`
	Theater   string  `json:"theater" validate:"required"`
	StartTime string  `json:"startTime" validate:"required"` // ISO-8601
	EndTime   string  `json:"endTime" validate:"required"`   // ISO-8601
	Price     float64 `json:"price" validate:"min=0,max=1000"`
}
