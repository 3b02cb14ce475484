package session

import (
	"github.com/jadipas/freddie/internal/models"
)

// FallbackState tracks the catalog-recovery flow.
type FallbackState int

const (
	AwaitingFile FallbackState = iota
	Validating
	Accepted
)

func (s FallbackState) String() string {
	switch s {
	case Validating:
		return "validating"
	case Accepted:
		return "accepted"
	default:
		return "awaiting file"
	}
}

// Fallback is the recovery state machine entered when the backend cannot
// deliver a catalog. It accepts replacement catalog files, validating each in
// a fixed order (file chosen, .json extension, parseable content). A rejected
// file returns the machine to [AwaitingFile] with the reason; the user may
// retry indefinitely.
type Fallback struct {
	state  FallbackState
	reason error
}

// NewFallback creates a fallback machine awaiting its first file.
func NewFallback() *Fallback {
	return &Fallback{state: AwaitingFile}
}

// State returns the current state.
func (f *Fallback) State() FallbackState { return f.state }

// Reason returns why the last submission was rejected, nil if none was.
func (f *Fallback) Reason() error { return f.reason }

// Submit validates a replacement catalog payload. On success the machine
// moves to [Accepted] and the parsed catalog is returned for immediate use;
// durable persistence is the caller's job. On failure the machine is back in
// [AwaitingFile] with the reject reason recorded.
func (f *Fallback) Submit(filename string, data []byte) (models.Catalog, error) {
	f.state = Validating
	f.reason = nil

	catalog, err := models.ValidateUpload(filename, data)
	if err != nil {
		f.state = AwaitingFile
		f.reason = err
		return nil, err
	}

	f.state = Accepted
	return catalog, nil
}

// Reject records a failure that happened after local validation, such as the
// persistence upload failing, and returns the machine to [AwaitingFile].
func (f *Fallback) Reject(err error) {
	f.state = AwaitingFile
	f.reason = err
}
