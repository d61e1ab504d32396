package response

import (
	"encoding/json"
	"fmt"
	"time"
)

// Resp is the envelope every JSON endpoint answers with.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// DateTime keeps its zone offset on the wire so clients can render it in the hotel's timezone.
type DateTime time.Time

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateTimeFormat))
}

// UnmarshalJSON accepts DateTimeFormat and the legacy zone-less LegacyDateTimeFormat (read as UTC).
func (d *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for _, layout := range []string{DateTimeFormat, LegacyDateTimeFormat} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = DateTime(t)
			return nil
		}
	}
	return fmt.Errorf("response: invalid datetime %q", s)
}

func (d DateTime) Time() time.Time {
	return time.Time(d)
}
