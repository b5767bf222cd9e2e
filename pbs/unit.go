// Unit-typed scalar values for the scheduler reports.
//
// The reports routinely omit fields (a queued job has no walltime yet), so every scalar here is a
// discriminated value: either a magnitude in a fixed base unit, or explicitly absent.  Absent is
// not zero - "no memory reported yet" and "claimed 0 memory" must print and sort differently.
//
// Each type exposes the raw magnitude for sorting and arithmetic, and rendering into the
// scheduler's human notation ("512mb", "1.2h", "0.99").  Keeping display and magnitude on separate
// methods keeps sorting and formatting independently testable.

package pbs

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// The fixed no-value token of the external reports, also our default rendering for absent.
const Placeholder = "--"

type unitStep struct {
	factor float64
	suffix string
}

// Decimal steps, as the scheduler reports them.
var byteSteps = []unitStep{
	{1e12, "tb"},
	{1e9, "gb"},
	{1e6, "mb"},
	{1e3, "kb"},
	{1, "b"},
}

var secondSteps = []unitStep{
	{86400, "d"},
	{3600, "h"},
	{60, "m"},
	{1, "s"},
}

// Pick the largest unit that leaves 1-4 integer digits; values below the smallest step use the
// smallest unit.
func pickStep(steps []unitStep, v float64) unitStep {
	if v < 0 {
		v = -v
	}
	for _, s := range steps {
		if v >= s.factor {
			return s
		}
	}
	return steps[len(steps)-1]
}

func findStep(steps []unitStep, suffix string) (unitStep, bool) {
	for _, s := range steps {
		if s.suffix == suffix {
			return s, true
		}
	}
	return unitStep{}, false
}

func formatStepped(steps []unitStep, unit string, prec int, v float64) string {
	var s unitStep
	if unit == "" {
		s = pickStep(steps, v)
	} else {
		var found bool
		s, found = findStep(steps, unit)
		if !found {
			s = pickStep(steps, v)
		}
	}
	return strconv.FormatFloat(v/s.factor, 'f', prec, 64) + s.suffix
}

func absentToken(s string) bool {
	return s == "" || s == Placeholder
}

///////////////////////////////////////////////////////////////////////////////////////////////////
//
// Bytes: memory and disk quantities, base unit bytes.

type Bytes struct {
	val float64
	ok  bool
}

func BytesOf(v float64) Bytes {
	return Bytes{v, true}
}

// Parse a scheduler memory string: "6286932kb", "512mb", "2gb", "1024" (bare bytes), with the
// single-letter forms "K"/"M"/"G"/"T" also accepted.  The no-value tokens parse to the absent
// value without error.
func ParseBytes(text string) (Bytes, error) {
	s := strings.TrimSpace(text)
	if absentToken(s) {
		return Bytes{}, nil
	}
	num := s
	factor := 1.0
	if st, found := findStep(byteSteps, strings.ToLower(suffixOf(s, 2))); found && len(s) > 2 {
		num, factor = s[:len(s)-2], st.factor
	} else if st, found := findStep(byteSteps, oneLetterByteUnit(suffixOf(s, 1))); found && len(s) > 1 {
		num, factor = s[:len(s)-1], st.factor
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return Bytes{}, fmt.Errorf("Unparseable memory value %q", text)
	}
	if v < 0 {
		return Bytes{}, fmt.Errorf("Negative memory value %q", text)
	}
	return Bytes{v * factor, true}, nil
}

// The telemetry report and some scheduler fields use bare "K"/"M"/"G"/"T"; "b" alone is bytes.
func oneLetterByteUnit(s string) string {
	switch strings.ToLower(s) {
	case "k":
		return "kb"
	case "m":
		return "mb"
	case "g":
		return "gb"
	case "t":
		return "tb"
	case "b":
		return "b"
	default:
		return ""
	}
}

func suffixOf(s string, n int) string {
	if len(s) < n {
		return ""
	}
	return s[len(s)-n:]
}

func (b Bytes) Present() bool {
	return b.ok
}

// The magnitude in bytes; zero when absent.  Check Present when the difference matters.
func (b Bytes) Value() float64 {
	return b.val
}

func (b Bytes) Add(o Bytes) Bytes {
	if !b.ok {
		return o
	}
	if !o.ok {
		return b
	}
	return Bytes{b.val + o.val, true}
}

func (b Bytes) Sub(o Bytes) Bytes {
	if !b.ok || !o.ok {
		return Bytes{}
	}
	return Bytes{b.val - o.val, true}
}

// Absent is neither greater nor less than anything: the comparison orders present values only,
// and a stable sort leaves absent records where they were.
func (b Bytes) Cmp(o Bytes) int {
	if !b.ok || !o.ok {
		return 0
	}
	return cmp.Compare(b.val, o.val)
}

// Render with an explicit display unit ("kb".."tb", "" = auto) and decimal count.
func (b Bytes) Format(unit string, prec int) string {
	if !b.ok {
		return Placeholder
	}
	return formatStepped(byteSteps, unit, prec, b.val)
}

func (b Bytes) String() string {
	return b.Format("", 0)
}

func (b Bytes) StringOr(absent string) string {
	if !b.ok {
		return absent
	}
	return b.String()
}

///////////////////////////////////////////////////////////////////////////////////////////////////
//
// Seconds: durations, base unit seconds.  Durations are measured since job start and cannot be
// negative; a negative parse is an error, not a value.

type Seconds struct {
	val float64
	ok  bool
}

func SecondsOf(v float64) Seconds {
	return Seconds{v, true}
}

// Parse a scheduler duration: clock format "995:58:01" or "07:13", a single-unit form "10d",
// "7.13m", "42s", or bare seconds.  The no-value tokens parse to the absent value without error.
func ParseSeconds(text string) (Seconds, error) {
	s := strings.TrimSpace(text)
	if absentToken(s) {
		return Seconds{}, nil
	}
	if strings.Contains(s, ":") {
		return parseClock(s)
	}
	num := s
	factor := 1.0
	if st, found := findStep(secondSteps, suffixOf(s, 1)); found && len(s) > 1 {
		num, factor = s[:len(s)-1], st.factor
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return Seconds{}, fmt.Errorf("Unparseable duration %q", text)
	}
	if v < 0 {
		return Seconds{}, fmt.Errorf("Negative duration %q", text)
	}
	return Seconds{v * factor, true}, nil
}

// "HH:MM:SS" or "HH:MM".  Hours are unbounded (cputime of long jobs runs to many hundreds).
func parseClock(s string) (Seconds, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Seconds{}, fmt.Errorf("Unparseable clock value %q", s)
	}
	var total float64
	for _, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || n < 0 {
			return Seconds{}, fmt.Errorf("Unparseable clock value %q", s)
		}
		total = total*60 + float64(n)
	}
	if len(parts) == 2 {
		total *= 60
	}
	return Seconds{total, true}, nil
}

func (t Seconds) Present() bool {
	return t.ok
}

// The magnitude in seconds; zero when absent.
func (t Seconds) Value() float64 {
	return t.val
}

func (t Seconds) Add(o Seconds) Seconds {
	if !t.ok {
		return o
	}
	if !o.ok {
		return t
	}
	return Seconds{t.val + o.val, true}
}

// Absent compares equal to everything, as for Bytes.
func (t Seconds) Cmp(o Seconds) int {
	if !t.ok || !o.ok {
		return 0
	}
	return cmp.Compare(t.val, o.val)
}

// Render with an explicit display unit ("s", "m", "h", "d", "" = auto) and decimal count.
func (t Seconds) Format(unit string, prec int) string {
	if !t.ok {
		return Placeholder
	}
	return formatStepped(secondSteps, unit, prec, t.val)
}

func (t Seconds) String() string {
	return t.Format("", 1)
}

func (t Seconds) StringOr(absent string) string {
	if !t.ok {
		return absent
	}
	return t.String()
}

///////////////////////////////////////////////////////////////////////////////////////////////////
//
// Ratio: dimensionless quantities - scores, utilization fractions, idle percentages.

type Ratio struct {
	val float64
	ok  bool
}

func RatioOf(v float64) Ratio {
	return Ratio{v, true}
}

func ParseRatio(text string) (Ratio, error) {
	s := strings.TrimSpace(text)
	if absentToken(s) {
		return Ratio{}, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Ratio{}, fmt.Errorf("Unparseable number %q", text)
	}
	return Ratio{v, true}, nil
}

func (r Ratio) Present() bool {
	return r.ok
}

// The magnitude; zero when absent.
func (r Ratio) Value() float64 {
	return r.val
}

// Absent compares equal to everything, as for Bytes.
func (r Ratio) Cmp(o Ratio) int {
	if !r.ok || !o.ok {
		return 0
	}
	return cmp.Compare(r.val, o.val)
}

func (r Ratio) Format(prec int) string {
	if !r.ok {
		return Placeholder
	}
	return strconv.FormatFloat(r.val, 'f', prec, 64)
}

func (r Ratio) String() string {
	return r.Format(2)
}

func (r Ratio) StringOr(absent string) string {
	if !r.ok {
		return absent
	}
	return r.String()
}
