package response

const (
	InternalServerErrorCode = 500
	DefaultErrorMessage     = "Internal Server Error"
)
