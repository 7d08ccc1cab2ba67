package datepicker

// Reason identifies why a date or range was rejected. The set is closed:
// hosts switch over these tags to render feedback.
type Reason string

const (
	ReasonLessThanMinDate     Reason = "LESS_THAN_MIN_DATE"
	ReasonGreaterThanMaxDate  Reason = "GREATER_THAN_MAX_DATE"
	ReasonBlockedDate         Reason = "BLOCKED_DATE"
	ReasonViolatesFixRange    Reason = "VIOLATES_FIX_RANGE"
	ReasonLessThanMinRange    Reason = "LESS_THAN_MIN_RANGE"
	ReasonGreaterThanMaxRange Reason = "GREATER_THAN_MAX_RANGE"
	ReasonContainsBlockedDate Reason = "CONTAINS_BLOCKED_DATE"
)

// ValidationError is feedback data, not a control-flow error: a failed
// commit silently declines the transition and the reason is surfaced on the
// hovered date or potential range for the host to render.
type ValidationError struct {
	Reason Reason
}

func (e *ValidationError) Error() string {
	return string(e.Reason)
}

func invalid(r Reason) *ValidationError {
	return &ValidationError{Reason: r}
}
