package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for the user-facing reply and the log entry.
type Kind int

const (
	Internal Kind = iota
	InvalidInput
	DownloadFailed
	TranscriptionFailed
	SummarizationFailed
)

const (
	MsgInvalidLink = "Invalid YouTube URL."
	MsgProcessing  = "An error occurred while processing the video"
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case DownloadFailed:
		return "download_failed"
	case TranscriptionFailed:
		return "transcription_failed"
	case SummarizationFailed:
		return "summarization_failed"
	default:
		return "internal"
	}
}

// Error is a classified failure. Op names the pipeline step that produced it.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err with a kind and an operation name.
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, Internal otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// UserMessage is the reply sent to the chat for a failure of the given kind.
func UserMessage(kind Kind) string {
	if kind == InvalidInput {
		return MsgInvalidLink
	}
	return MsgProcessing
}
