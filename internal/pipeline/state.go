package pipeline

// State is a step of one pipeline run. Completed and Failed are terminal.
type State string

const (
	StateReceived    State = "received"
	StateExtracted   State = "extracted"
	StateTransformed State = "transformed"
	StatePersisted   State = "persisted"
	StateCompleted   State = "completed"
	StateFailed      State = "failed"
)

func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed
}

const (
	StatusTextFailed   = "Upload Failed."
	StatusTextFinished = "Upload Finished."
)
