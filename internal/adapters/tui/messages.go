package tui

import "time"

// MsgInitSteps announces the ordered list of steps of a run.
type MsgInitSteps struct {
	Steps []string
}

// MsgStepStart reports that a step began.
type MsgStepStart struct {
	SpanID    string
	Name      string
	StartTime time.Time
}

// MsgStepLog carries output written by a step.
type MsgStepLog struct {
	SpanID string
	Data   []byte
}

// MsgStepComplete reports that a step finished. Err is nil on success.
type MsgStepComplete struct {
	SpanID  string
	EndTime time.Time
	Err     error
}
