package feedback

import "context"

// Completer sends one system instruction plus one user message to a
// language-model completion service and returns the raw reply text.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Analyzer turns a feedback message into scores.
type Analyzer interface {
	Analyze(ctx context.Context, message string) (Analysis, error)
}

// Store appends analyzed feedback. There is no read path.
type Store interface {
	Insert(ctx context.Context, r Record) error
}
