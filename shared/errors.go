package shared

import "errors"

// ErrResizeFailed is the one error kind a Hopscotch set ever surfaces: R
// outer growth rounds were not enough to accommodate a new key. The set
// is left exactly as it was before the failing call.
var ErrResizeFailed = errors.New("hopscotchset: resize did not converge within the configured retry budget")
