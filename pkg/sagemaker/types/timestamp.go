package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	smithytime "github.com/aws/smithy-go/time"
)

// Timestamp is a point in time as exchanged with the service. It is encoded as
// epoch seconds with a millisecond fraction and compared at millisecond
// precision.
type Timestamp time.Time

func NewTimestamp(t time.Time) *Timestamp {
	ts := Timestamp(t.Truncate(time.Millisecond))
	return &ts
}

func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

func (t Timestamp) EpochMillis() int64 {
	return time.Time(t).UnixMilli()
}

func (t Timestamp) String() string {
	return time.Time(t).UTC().Format(time.RFC3339Nano)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	seconds := smithytime.FormatEpochSeconds(time.Time(t))
	return []byte(strconv.FormatFloat(seconds, 'f', -1, 64)), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		parsed, err := smithytime.ParseDateTime(s)
		if err != nil {
			return fmt.Errorf("invalid timestamp %q: %w", s, err)
		}
		*t = Timestamp(parsed)
		return nil
	}

	seconds, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", string(b), err)
	}

	// rounded to whole milliseconds, a float64 cannot hold .123 exactly
	*t = Timestamp(time.UnixMilli(int64(math.Round(seconds * 1e3))).UTC())
	return nil
}
