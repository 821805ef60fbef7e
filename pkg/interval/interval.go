package interval

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"time"
)

// compact is the interval grammar: optional minus, decimal magnitude, one unit letter.
var compact = regexp.MustCompile(`^(-)?(\d+)([dhms])$`)

// unitSeconds maps unit letters to their length in seconds.
var unitSeconds = map[string]int64{
	"s": 1,
	"m": 60,
	"h": 60 * 60,
	"d": 60 * 60 * 24,
}

const maxSeconds = math.MaxInt64 / int64(time.Second)

// Cast converts an interval value into a time.Duration.
//
// Strings in the compact form ("10s", "42m", "1h", "10d", "-5s") are scaled by
// their unit. Integers of any kind, named integer types included, are taken
// as seconds. time.Duration and
// Duration values are returned unchanged. Anything else, including strings
// that do not match the compact form, fails with ErrInvalidInterval.
func Cast(value any) (time.Duration, error) {
	if s, ok := value.(string); ok {
		if m := compact.FindStringSubmatch(s); m != nil {
			return fromMatch(s, m)
		}
	}

	switch v := value.(type) {
	case time.Duration:
		return v, nil
	case Duration:
		return v.Duration, nil
	}

	if value != nil {
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return seconds(rv.Int(), value)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return unsignedSeconds(rv.Uint(), value)
		}
	}

	return 0, invalid(value)
}

// Parse reads a string in the compact form only.
func Parse(s string) (time.Duration, error) {
	m := compact.FindStringSubmatch(s)
	if m == nil {
		return 0, invalid(s)
	}
	return fromMatch(s, m)
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) time.Duration {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Format renders d in the compact form using the largest unit that divides it
// exactly. Durations that are not whole seconds fall back to time.Duration.String.
func Format(d time.Duration) string {
	if d%time.Second != 0 {
		return d.String()
	}
	secs := int64(d / time.Second)
	for _, unit := range []string{"d", "h", "m"} {
		if secs != 0 && secs%unitSeconds[unit] == 0 {
			return strconv.FormatInt(secs/unitSeconds[unit], 10) + unit
		}
	}
	return strconv.FormatInt(secs, 10) + "s"
}

func fromMatch(raw string, m []string) (time.Duration, error) {
	magnitude, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return 0, invalid(raw)
	}
	factor := unitSeconds[m[3]]
	if magnitude > maxSeconds/factor {
		return 0, invalid(raw)
	}
	secs := magnitude * factor
	if m[1] == "-" {
		secs = -secs
	}
	return seconds(secs, raw)
}

func seconds(n int64, raw any) (time.Duration, error) {
	if n > maxSeconds || n < -maxSeconds {
		return 0, invalid(raw)
	}
	return time.Duration(n) * time.Second, nil
}

func unsignedSeconds(n uint64, raw any) (time.Duration, error) {
	if n > uint64(maxSeconds) {
		return 0, invalid(raw)
	}
	return seconds(int64(n), raw)
}

func invalid(value any) error {
	return fmt.Errorf("%w %v", ErrInvalidInterval, value)
}
