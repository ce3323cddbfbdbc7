package subnet

import "errors"

// ErrEmptyLabels indicates Build was called with an empty or mismatched
// labels slice (its length must equal net.NumNodes()).
var ErrEmptyLabels = errors.New("subnet: labels length must equal network node count")
