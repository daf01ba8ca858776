package app

// Screen represents the current view in the application
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenReview
	ScreenApplying
	ScreenComplete
	ScreenError
	ScreenUpdatePrompt
	ScreenUpdating
)

func (s Screen) String() string {
	names := []string{
		"Loading",
		"Review",
		"Applying",
		"Complete",
		"Error",
		"UpdatePrompt",
		"Updating",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}
