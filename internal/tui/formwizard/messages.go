package formwizard

// StepSubmittedMsg is sent when the user asks to advance past the active
// step (enter on an input or the Next button). The wizard validates the
// step and either advances or raises a validation toast.
type StepSubmittedMsg struct{}
