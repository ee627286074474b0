package service

import "errors"

// Error kinds surfaced to handlers. Handlers branch with errors.Is to pick
// the response envelope; nothing below this package panics across a public
// boundary.
var (
	// ErrNotFound: a requested item/persona/post/content id is absent. The
	// operation aborts before any mutation.
	ErrNotFound = errors.New("not found")

	// ErrJobNotFound: no candidate queue recognized a render request id.
	ErrJobNotFound = errors.New("job not found")

	// ErrUpstream: the completion or media service failed or returned an
	// unrecognized payload. The underlying message is attached for
	// diagnostics.
	ErrUpstream = errors.New("upstream service failure")
)
