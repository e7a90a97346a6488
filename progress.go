package embedfs

import "github.com/meigma/embedfs/internal/embedtype"

// Re-export progress types from internal/embedtype.
type (
	// ProgressEvent represents a progress update during pack or unpack.
	ProgressEvent = embedtype.ProgressEvent

	// ProgressStage identifies the current phase of an operation.
	ProgressStage = embedtype.ProgressStage

	// ProgressFunc receives progress updates during operations.
	ProgressFunc = embedtype.ProgressFunc
)

// Re-export progress stage constants.
const (
	// StageWalking indicates the source tree is being enumerated.
	StageWalking = embedtype.StageWalking

	// StagePacking indicates directories and files are being serialized.
	StagePacking = embedtype.StagePacking

	// StageParsing indicates a container is being validated.
	StageParsing = embedtype.StageParsing

	// StageExtracting indicates files are being written.
	StageExtracting = embedtype.StageExtracting
)

// progress wraps an optional ProgressFunc.
type progress struct {
	fn ProgressFunc
}

// report sends a progress event if a callback is configured.
func (p progress) report(stage ProgressStage, path string, bytesDone, bytesTotal uint64, filesDone, filesTotal int) {
	if p.fn == nil {
		return
	}
	p.fn(ProgressEvent{
		Stage:      stage,
		Path:       path,
		BytesDone:  bytesDone,
		BytesTotal: bytesTotal,
		FilesDone:  filesDone,
		FilesTotal: filesTotal,
	})
}
