package models

import "fmt"

// ActionKind identifies one kind of downstream action
type ActionKind int

const (
	// ActionTransition moves the issue to a new status
	ActionTransition ActionKind = iota
	// ActionWorklog logs time against the issue
	ActionWorklog
	// ActionComment posts a comment on the issue
	ActionComment
)

// Action is one downstream operation derived from parsed directives
type Action struct {
	// Kind of the action
	Kind ActionKind
	// Status label for ActionTransition
	Status string
	// Hours to log for ActionWorklog
	Hours float64
	// Date (yyyy-mm-dd) for ActionWorklog
	Date string
	// Phase label attached to the worklog (may be empty)
	Phase string
	// Comment text for ActionComment
	Comment string
}

// Display returns a one-line description for confirmation screens
func (a Action) Display() string {
	switch a.Kind {
	case ActionTransition:
		return fmt.Sprintf("transition to %q", a.Status)
	case ActionWorklog:
		if a.Phase != "" {
			return fmt.Sprintf("log %.2fh on %s (%s)", a.Hours, a.Date, a.Phase)
		}
		return fmt.Sprintf("log %.2fh on %s", a.Hours, a.Date)
	case ActionComment:
		return fmt.Sprintf("comment: %s", a.Comment)
	default:
		return ""
	}
}

// Plan is the ordered set of actions to apply for one commit
type Plan struct {
	// Issue key all actions target
	Issue string
	// Directives the plan was built from
	Directives Directives
	// Actions in apply order (transition, worklog, comment)
	Actions []Action
}
