package errcode

// Reserved codes shared by every application.
const (
	// UnknownError is the catch-all unknown failure.
	UnknownError = "DE0599999999"
	// UnknownSystemError is an unclassified system failure.
	UnknownSystemError = "DE0509999999"
	// UnknownBizError is an unclassified business failure.
	UnknownBizError = "DE0519999999"
	// UnknownThirdPartyError is an unclassified upstream failure.
	UnknownThirdPartyError = "DE0529999999"
	// CodeProcessingError marks a failure inside the code tooling itself.
	CodeProcessingError = "DE0509998998"
)
