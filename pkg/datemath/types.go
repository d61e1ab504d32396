package datemath

import "time"

// Match is a relative date phrase found inside free text.
type Match struct {
	Phrase string    // the phrase as it appeared (lower-cased)
	Date   time.Time // start of the resolved day in the parser's timezone
}
