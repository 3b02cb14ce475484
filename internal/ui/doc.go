// Package ui implements the interactive terminal interface using bubbletea's
// Elm architecture.
//
// The TUI drives one DJ session:
//
//  1. [LoadingView] : catalog fetch in flight
//  2. [BrowseView] : the dual library/playlist browser; selecting a library
//     song ranks the rest of the library by tempo closeness, and moved songs
//     accumulate in performance order in the playlist
//  3. [UploadView] : the catalog-recovery flow entered when the backend has
//     no catalog; the user supplies a replacement .json file
//
// The [Model] implements bubbletea's standard Init/Update/View pattern. All
// session mutation happens inside Update, so there is exactly one writer.
// Asynchronous completions (catalog fetch, upload) carry the dispatch
// sequence number and are dropped when user actions have advanced it, keeping
// stale results from overwriting newer state.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, tab, m, +/-, u, q)
// with contextual help via charmbracelet/bubbles/help.
package ui
