package request

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// POS clients send numbers as numbers, quoted numbers, or garbage. Each
// lenient field type parses what it can and otherwise reports itself unset,
// so defaults are applied once at the normalization boundary instead of ad
// hoc at every access site. Unmarshaling never fails.

// Amount is a lenient decimal field.
type Amount struct {
	value decimal.Decimal
	valid bool
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	a.value = d
	a.valid = true
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.value)
}

// Decimal returns the parsed value, or zero when the field was absent or
// unparseable.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// IsSet reports whether the field held a usable value.
func (a Amount) IsSet() bool {
	return a.valid
}

// Count is a lenient integer field.
type Count struct {
	value int
	valid bool
}

func (c *Count) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(strings.Trim(strings.TrimSpace(string(data)), `"`))
	if s == "" || s == "null" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		c.value = n
		c.valid = true
		return nil
	}
	// Quantities sometimes arrive as floats; truncate them.
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		c.value = int(f)
		c.valid = true
	}
	return nil
}

func (c Count) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.value)
}

// Int returns the parsed value, or zero when unset.
func (c Count) Int() int {
	return c.value
}

// IsSet reports whether the field held a usable value.
func (c Count) IsSet() bool {
	return c.valid
}

// StrictBool is true only for the JSON literal true. Truthy strings and
// numbers do not count.
type StrictBool bool

func (b *StrictBool) UnmarshalJSON(data []byte) error {
	*b = StrictBool(strings.TrimSpace(string(data)) == "true")
	return nil
}

// Code is a lenient string field that also accepts bare numbers, for codes
// like VAT rates that clients send either way.
type Code struct {
	value string
	valid bool
}

func (c *Code) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		str = strings.TrimSpace(str)
		if str == "" {
			return nil
		}
		c.value = str
		c.valid = true
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		c.value = n.String()
		c.valid = true
	}
	return nil
}

func (c Code) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.value)
}

// Or returns the parsed value, or def when the field was absent or empty.
func (c Code) Or(def string) string {
	if !c.valid {
		return def
	}
	return c.value
}
