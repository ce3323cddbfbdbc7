package reverse

import "errors"

// ErrMissingEscapeRate is returned when Undo needs to draw a waiting time
// for an eliminated node whose EscapeRate was never set (zero), which would
// otherwise silently produce a zero-mean (degenerate) Gamma draw.
var ErrMissingEscapeRate = errors.New("reverse: eliminated node has no escape rate set")
