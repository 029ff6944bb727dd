package response

const (
	// MessageSuccess is the message body of successful responses.
	MessageSuccess = "success"

	// DefaultErrorMessage hides internal details from clients.
	DefaultErrorMessage = "Something went wrong"

	// DateFormat is the wire format for Date values.
	DateFormat = "2006-01-02"

	// DateTimeFormat is the wire format for DateTime values.
	DateTimeFormat = "2006-01-02 15:04:05"
)
