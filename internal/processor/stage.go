package processor

// Stage is the pipeline step a request is in.
type Stage int

const (
	StageDownloading Stage = iota + 1
	StageTranscribing
	StageSummarizing
	StageSanitizing
)

func (s Stage) String() string {
	switch s {
	case StageDownloading:
		return "downloading"
	case StageTranscribing:
		return "transcribing"
	case StageSummarizing:
		return "summarizing"
	case StageSanitizing:
		return "sanitizing"
	default:
		return "unknown"
	}
}
