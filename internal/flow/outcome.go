package flow

// Status classifies how a flow ended.
type Status int

const (
	// StatusCompleted means the flow ran to the end.
	StatusCompleted Status = iota
	// StatusCancelled means the operator backed out of a prompt (or made an
	// empty selection); nothing was mutated past that point.
	StatusCancelled
	// StatusFailed means a subprocess call or parse failed; Err carries the
	// cause.
	StatusFailed
)

// Outcome is the uniform result of running a flow.
type Outcome struct {
	Status Status
	Err    error
}

func completed() Outcome {
	return Outcome{Status: StatusCompleted}
}

func cancelled() Outcome {
	return Outcome{Status: StatusCancelled}
}

func failed(err error) Outcome {
	return Outcome{Status: StatusFailed, Err: err}
}
