package dict

import "errors"

// ErrDataMissing is returned when a required dictionary file is absent or
// unreadable. Fatal at init (§7): the caller should surface it to the host
// together with the offending path.
var ErrDataMissing = errors.New("dict: required data file missing or unreadable")
