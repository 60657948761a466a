package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Command error codes (COMMAND_*)
const (
	CommandEmptyText  ErrorCode = "COMMAND_001"
	CommandNoTargetID ErrorCode = "COMMAND_002"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidDate   ErrorCode = "VALIDATION_004"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_002"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound      ErrorCode = "BUDGET_001"
	BudgetInvalidAmount ErrorCode = "BUDGET_002"
)

// Goal error codes (GOAL_*)
const (
	GoalNotFound      ErrorCode = "GOAL_001"
	GoalInvalidAmount ErrorCode = "GOAL_002"
)

// Recurring rule error codes (RECURRING_*)
const (
	RecurringNotFound        ErrorCode = "RECURRING_001"
	RecurringInvalidInterval ErrorCode = "RECURRING_002"
)

// Advisor error codes (ADVISOR_*)
const (
	AdvisorUpstreamError ErrorCode = "ADVISOR_001"
	AdvisorEmptyQuestion ErrorCode = "ADVISOR_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Command errors
	CommandEmptyText:  "Command text is required",
	CommandNoTargetID: "No transaction id found in the command text",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidDate:   "Invalid date format or range",

	// Transaction errors
	TransactionNotFound:      "Transaction not found",
	TransactionInvalidAmount: "Transaction amount must be a positive number",

	// Budget errors
	BudgetNotFound:      "Budget not found",
	BudgetInvalidAmount: "Budget monthly amount must be a positive number",

	// Goal errors
	GoalNotFound:      "Goal not found",
	GoalInvalidAmount: "Goal target amount must be a positive number",

	// Recurring rule errors
	RecurringNotFound:        "Recurring rule not found",
	RecurringInvalidInterval: "Recurring interval must be 'monthly' or 'weekly'",

	// Advisor errors
	AdvisorUpstreamError: "The financial advisor service is currently unavailable",
	AdvisorEmptyQuestion: "Question text is required",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemUnexpectedError:    "An unexpected error occurred",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
