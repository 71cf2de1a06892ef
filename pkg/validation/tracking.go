package validation

import "errors"

// Validation errors returned before any network call is made.
var (
	ErrThreadIDRequired  = errors.New("thread id is required")
	ErrMessageRequired   = errors.New("message cannot be empty")
	ErrMessageIDRequired = errors.New("message id is required")
	ErrRunIDRequired     = errors.New("run id is required")
)

// TrackingRequestValidator validates tracking-related requests
type TrackingRequestValidator struct{}

// NewTrackingRequestValidator creates a new TrackingRequestValidator
func NewTrackingRequestValidator() *TrackingRequestValidator {
	return &TrackingRequestValidator{}
}

// ValidateThreadID validates a thread identifier
func (v *TrackingRequestValidator) ValidateThreadID(threadID string) error {
	if threadID == "" {
		return ErrThreadIDRequired
	}
	return nil
}

// ValidateMessage validates message content
func (v *TrackingRequestValidator) ValidateMessage(message string) error {
	if message == "" {
		return ErrMessageRequired
	}
	return nil
}

// ValidateMessageID validates a message identifier
func (v *TrackingRequestValidator) ValidateMessageID(messageID string) error {
	if messageID == "" {
		return ErrMessageIDRequired
	}
	return nil
}

// ValidateRunID validates a run identifier
func (v *TrackingRequestValidator) ValidateRunID(runID string) error {
	if runID == "" {
		return ErrRunIDRequired
	}
	return nil
}

// ValidateThreadRequest validates a complete thread creation request
func (v *TrackingRequestValidator) ValidateThreadRequest(threadID string) error {
	return v.ValidateThreadID(threadID)
}

// ValidateMessageRequest validates a complete message creation request
func (v *TrackingRequestValidator) ValidateMessageRequest(threadID, message, messageID string) error {
	if err := v.ValidateThreadID(threadID); err != nil {
		return err
	}

	if err := v.ValidateMessage(message); err != nil {
		return err
	}

	if err := v.ValidateMessageID(messageID); err != nil {
		return err
	}

	return nil
}

// ValidateRunRequest validates a complete run creation request. The
// response content is intentionally unchecked, an empty model response is
// still worth recording.
func (v *TrackingRequestValidator) ValidateRunRequest(threadID, runID string) error {
	if err := v.ValidateThreadID(threadID); err != nil {
		return err
	}

	if err := v.ValidateRunID(runID); err != nil {
		return err
	}

	return nil
}
