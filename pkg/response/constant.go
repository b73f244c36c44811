package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	ValidationErrorCode     = 1
	NotFoundErrorCode       = 404
	RateLimitErrorCode      = 429
	InternalServerErrorCode = 500
	UpstreamErrorCode       = 502
	OverloadedErrorCode     = 503

	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
