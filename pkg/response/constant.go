package response

import "time"

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500
	TooManyRequestsCode     = 429

	DateTimeFormat       = time.RFC3339
	LegacyDateTimeFormat = "2006-01-02 15:04:05"
)
