package date

import (
	"errors"
	"fmt"
	"time"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// Layout is the only accepted textual form of a Date.
const Layout = "2006-01-02"

// Date is a calendar date without a time of day or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Of returns the calendar date of t in t's location.
func Of(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Parse parses a date in the YYYY-MM-DD form.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, errors.Join(ErrInvalidDate, fmt.Errorf("%q: %w", s, err))
	}
	return Of(t), nil
}

// MustParse is like Parse but panics on malformed input. Intended for tests and constants.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// IsValid reports whether d names an existing day, so 2023-02-29 is invalid.
func (d Date) IsValid() bool {
	return Of(d.In(time.UTC)) == d
}

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) After(other Date) bool {
	return other.Before(d)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// UnmarshalYAML reads the raw scalar instead of letting yaml.v3 resolve it as a
// timestamp, so date-times like 2017-07-27T10:00:00Z are rejected.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a scalar", ErrInvalidDate, node.Line)
	}
	if err := d.UnmarshalText([]byte(node.Value)); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	return nil
}

func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}

// JSONSchema describes Date for invopop/jsonschema reflection.
func (Date) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Format:      "date",
		Description: "Calendar date in YYYY-MM-DD form",
	}
}
