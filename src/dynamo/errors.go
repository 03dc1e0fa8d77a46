package dynamo

import "errors"

// ErrStorage marks failures of the backing table, as opposed to a plain
// miss, which Get reports through its found flag.
var ErrStorage = errors.New("insight storage failure")
