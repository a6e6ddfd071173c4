package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrAllFieldsRequired ErrCode = "ALL_FIELDS_REQUIRED"
	ErrInvalidEmail      ErrCode = "INVALID_EMAIL"
	ErrInvalidUlsaID     ErrCode = "INVALID_ULSA_ID"
	ErrInvalidGradYear   ErrCode = "INVALID_GRAD_YEAR"
	ErrInvalidPayload    ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrAlreadyRegistered ErrCode = "ALREADY_REGISTERED"

	// ─── Server ────────────────────────────────────────────────────────
	// Internal failures carry a generic user-facing message per endpoint;
	// the underlying cause is logged server-side only.
	ErrRegisterFailed ErrCode = "REGISTER_FAILED"
	ErrFetchFailed    ErrCode = "FETCH_FAILED"
)

// GetMessage returns the user-facing message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Validation ────────────────────────────────────────────────────
	case ErrAllFieldsRequired:
		return "All fields are required"
	case ErrInvalidEmail:
		return "Please use your UTSA email (john.doe@my.utsa.edu or abc123@utsa.edu)"
	case ErrInvalidUlsaID:
		return "Please enter a valid UTSA ID (e.g., abc123)"
	case ErrInvalidGradYear:
		return "Please enter a valid graduation year"
	case ErrInvalidPayload:
		return "Invalid request payload"

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrAlreadyRegistered:
		return "This email or UTSA ID is already registered"

	// ─── Server ────────────────────────────────────────────────────────
	case ErrRegisterFailed:
		return "Failed to register member. Please try again."
	case ErrFetchFailed:
		return "Failed to fetch members"
	default:
		return "An unexpected error occurred"
	}
}
