package kdtools

import "errors"

// ErrTaskSpawnFailed is the error returned by SortParallel when
// one or more recursive fan-out points could not acquire a worker slot and
// fell back to sorting that subrange on the calling goroutine. The sequence
// is still fully sorted; the error only reports the degraded parallelism.
var ErrTaskSpawnFailed = errors.New("kdtools: could not spawn a sort task, fell back to serial sort")
