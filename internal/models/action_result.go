package models

// ActionStatus represents the outcome of a single applied action
type ActionStatus interface {
	isActionStatus()
}

type actionStatusApplied struct{}
type actionStatusSkipped struct{ Reason string }
type actionStatusFailed struct{ Error string }

func (actionStatusApplied) isActionStatus() {}
func (actionStatusSkipped) isActionStatus() {}
func (actionStatusFailed) isActionStatus()  {}

// Applied indicates the action completed successfully
var Applied ActionStatus = actionStatusApplied{}

// Skipped creates an ActionStatus for an action that was not attempted
func Skipped(reason string) ActionStatus {
	return actionStatusSkipped{Reason: reason}
}

// Failed creates an ActionStatus for an action that errored
func Failed(err string) ActionStatus {
	return actionStatusFailed{Error: err}
}

// ActionResult pairs an action with its outcome
type ActionResult struct {
	// Action that was attempted
	Action Action
	// Status of the attempt
	Status ActionStatus
}

// IsStatusApplied returns true if status is Applied
func IsStatusApplied(s ActionStatus) bool {
	_, ok := s.(actionStatusApplied)
	return ok
}

// IsStatusSkipped returns true if status is Skipped
func IsStatusSkipped(s ActionStatus) bool {
	_, ok := s.(actionStatusSkipped)
	return ok
}

// IsStatusFailed returns true if status is Failed
func IsStatusFailed(s ActionStatus) bool {
	_, ok := s.(actionStatusFailed)
	return ok
}

// GetStatusReason returns the reason string for Skipped or Failed statuses
func GetStatusReason(s ActionStatus) string {
	if skipped, ok := s.(actionStatusSkipped); ok {
		return skipped.Reason
	}
	if failed, ok := s.(actionStatusFailed); ok {
		return failed.Error
	}
	return ""
}
