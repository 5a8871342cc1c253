package flow

import "strconv"

// IntClamp bounds a numeric form field. Default is used when the raw
// input does not parse as an integer.
type IntClamp struct {
	Min     int
	Max     int
	Default int
}

// Apply normalizes raw input into the clamp's range. Non-numeric input
// falls back to Default; out-of-range values clamp to the nearest bound.
func (c IntClamp) Apply(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return c.Default
	}
	if n < c.Min {
		return c.Min
	}
	if n > c.Max {
		return c.Max
	}
	return n
}

// Form accumulates wizard input across steps. Fields are only ever
// cleared by a session restart; retreating or a failed submit never
// touches them.
type Form struct {
	text map[string]string
	nums map[string]int

	// lookups holds the payload of each non-empty step lookup, keyed by
	// the step the lookup ran on. Steps keep their own results so a later
	// lookup never displaces what an earlier step needs on retreat.
	lookups map[int]any
}

// NewForm creates an empty form.
func NewForm() *Form {
	return &Form{
		text:    make(map[string]string),
		nums:    make(map[string]int),
		lookups: make(map[int]any),
	}
}

// Set stores a text field.
func (f *Form) Set(name, value string) {
	f.text[name] = value
}

// Get returns a text field, or "" when unset.
func (f *Form) Get(name string) string {
	return f.text[name]
}

// SetInt stores a numeric field directly.
func (f *Form) SetInt(name string, value int) {
	f.nums[name] = value
}

// SetClamped normalizes raw input through the clamp and stores the
// result. Clamping happens on every edit, not just on submit.
func (f *Form) SetClamped(name, raw string, clamp IntClamp) int {
	n := clamp.Apply(raw)
	f.nums[name] = n
	return n
}

// Int returns a numeric field, or def when unset.
func (f *Form) Int(name string, def int) int {
	if n, ok := f.nums[name]; ok {
		return n
	}
	return def
}

// reset drops all fields.
func (f *Form) reset() {
	f.text = make(map[string]string)
	f.nums = make(map[string]int)
	f.lookups = make(map[int]any)
}
