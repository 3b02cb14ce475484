// Package session owns the in-memory state for one interactive DJ session.
//
// The package contains three pieces:
//
//  1. [Session] : the library/playlist state machine. Every song in the
//     catalog lives in exactly one of the two ordered sequences, and all
//     mutation goes through the named transitions ([Session.Select],
//     [Session.Move], [Session.ToggleView], [Session.SetRecommendationCount],
//     [Session.ReplaceCatalog]). Transitions return the file_path to bring
//     into view so the rendering layer owns scrolling.
//  2. The tempo scorer: [Score] ranks candidates by absolute BPM distance from
//     the selected song, and [Intensities] buckets the result into five
//     heat levels for display.
//  3. [Fallback] : the catalog-recovery state machine used when the backend
//     cannot deliver a catalog. It validates a user-supplied replacement file
//     and stays in [AwaitingFile] until a payload is accepted.
//
// A session has exactly one writer at a time, so no locking is done here.
// [Session.Version] increases on every transition; asynchronous completions
// capture the version at dispatch and discard themselves when it has moved on.
package session
