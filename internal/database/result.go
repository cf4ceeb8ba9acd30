package database

// FailureReason is a stable code identifying why a store operation did not
// succeed. Callers branch on these values, so a reason's meaning never
// changes once assigned.
type FailureReason string

const (
	UnknownError                       FailureReason = "UnknownError"
	NotProvidedValidFields             FailureReason = "NotProvidedValidFields"
	ForeignKeyConstraintFailure        FailureReason = "ForeignKeyConstraintFailure"
	UsernameInvalid                    FailureReason = "UsernameInvalid"
	PasswordInvalid                    FailureReason = "PasswordInvalid"
	UsernameAlreadyExists              FailureReason = "UsernameAlreadyExists"
	UserDoesNotExist                   FailureReason = "UserDoesNotExist"
	ChatroomNameFailsValidation        FailureReason = "ChatroomNameFailsValidation"
	ChatroomNameAlreadyExists          FailureReason = "ChatroomNameAlreadyExists"
	ChatroomDoesNotExist               FailureReason = "ChatroomDoesNotExist"
	ChatroomSubscriptionIsNotUnique    FailureReason = "ChatroomSubscriptionIsNotUnique"
	ChatroomSubscriptionDoesNotExist   FailureReason = "ChatroomSubscriptionDoesNotExist"
	ChatroomAdminAlreadyExists         FailureReason = "ChatroomAdminAlreadyExists"
	ChatroomAdminDoesNotExist          FailureReason = "ChatroomAdminDoesNotExist"
	ChatroomBanAlreadyExists           FailureReason = "ChatroomBanAlreadyExists"
	ChatroomBanDoesNotExist            FailureReason = "ChatroomBanDoesNotExist"
	ChatroomMessageDoesNotExist        FailureReason = "ChatroomMessageDoesNotExist"
	ChatroomMessageFailsValidation     FailureReason = "ChatroomMessageFailsValidation"
	SecurityQuestionIsNotUnique        FailureReason = "SecurityQuestionIsNotUnique"
	SecurityQuestionDoesNotExist       FailureReason = "SecurityQuestionDoesNotExist"
	SecurityQuestionAnswerIsNotUnique  FailureReason = "SecurityQuestionAnswerIsNotUnique"
	SecurityQuestionAnswerDoesNotExist FailureReason = "SecurityQuestionAnswerDoesNotExist"
)

// Result is the envelope every store operation returns. Exactly one of
// Value and FailureID is meaningful, discriminated by Success.
type Result[T any] struct {
	Success   bool          `json:"success"`
	Value     T             `json:"value,omitempty"`
	FailureID FailureReason `json:"failure_id,omitempty"`
}

// ActionResult is the envelope for operations with no return value,
// such as deletes and verifies.
type ActionResult struct {
	Success   bool          `json:"success"`
	FailureID FailureReason `json:"failure_id,omitempty"`
}

func ok[T any](v T) Result[T] {
	return Result[T]{Success: true, Value: v}
}

func fail[T any](reason FailureReason) Result[T] {
	return Result[T]{Success: false, FailureID: reason}
}

func done() ActionResult {
	return ActionResult{Success: true}
}

func failAction(reason FailureReason) ActionResult {
	return ActionResult{Success: false, FailureID: reason}
}
