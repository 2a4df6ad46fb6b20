package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidUserID     = "Invalid userId parameter"

	// Business error messages; clients match on these exact strings
	ErrMsgUserNotFoundHTTP        = "User not found"
	ErrMsgTransactionNotFoundHTTP = "Transaction not found"
	ErrMsgInsufficientBalance     = "Insufficient balance"
	ErrMsgInvalidAmountHTTP       = "Invalid amount"
	ErrMsgBetMismatchHTTP         = "Bet amount does not match transaction"
	ErrMsgWinMismatchHTTP         = "Win amount does not match spin result"
	ErrMsgAlreadyPaidHTTP         = "Transaction already paid out"
	ErrMsgAlreadySpunHTTP         = "Transaction already spun"
	ErrMsgEmptyMessageHTTP        = "Message must not be empty"

	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
)
