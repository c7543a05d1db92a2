package respond

import "errors"

// ErrUnknownProfile is returned when a ranked result references a profile id
// that is not present in the snapshot it was ranked against. Ranking and
// formatting always use the same snapshot, so this signals a caller bug.
var ErrUnknownProfile = errors.New("unknown profile id")
