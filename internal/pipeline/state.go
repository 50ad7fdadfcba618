package pipeline

// State is the lifecycle position of one pipeline run.
type State string

const (
	StateReceived     State = "received"
	StateTranscribing State = "transcribing"
	StateAnalyzing    State = "analyzing"
	StatePersisting   State = "persisting"
	StateDone         State = "done"
	StateFailed       State = "failed"
)
