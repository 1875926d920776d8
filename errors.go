package corrector

import "errors"

// ErrDataMissing is returned (wrapped, with the underlying dict error's text
// appended) when the main dictionary file for a requested language cannot be
// opened (§7: fatal at init, not a DataMalformed warning).
var ErrDataMissing = errors.New("corrector: required dictionary data missing or unreadable")

// ErrUnknownLanguage is returned when the requested language code has no
// registered lang.Language.
var ErrUnknownLanguage = errors.New("corrector: unknown language code")
