package domain

var (
	MessageFailedBodyRequest = "failed to process request body"
)

const (
	DefaultSkip  = 0
	DefaultLimit = 10

	DateFormat = "2006-01-02"
)
