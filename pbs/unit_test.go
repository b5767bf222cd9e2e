package pbs

import (
	"testing"
)

func TestParseBytes(t *testing.T) {
	b, err := ParseBytes("6286932kb")
	if err != nil || !b.Present() || b.Value() != 6286932e3 {
		t.Fatal(b, err)
	}
	if s := b.String(); s != "6gb" {
		t.Fatal(s)
	}
	b, err = ParseBytes("512mb")
	if err != nil || b.Value() != 512e6 {
		t.Fatal(b, err)
	}
	if s := b.String(); s != "512mb" {
		t.Fatal(s)
	}
	// Bare number is bytes
	b, err = ParseBytes("1024")
	if err != nil || b.Value() != 1024 {
		t.Fatal(b, err)
	}
	// Single-letter units, as the telemetry prints them
	b, err = ParseBytes("16G")
	if err != nil || b.Value() != 16e9 {
		t.Fatal(b, err)
	}
	// The no-value token is absent, not zero, and not an error
	b, err = ParseBytes("--")
	if err != nil || b.Present() {
		t.Fatal(b, err)
	}
	b, err = ParseBytes("")
	if err != nil || b.Present() {
		t.Fatal(b, err)
	}
	if _, err = ParseBytes("-1kb"); err == nil {
		t.Fatal("negative accepted")
	}
	if _, err = ParseBytes("lots"); err == nil {
		t.Fatal("garbage accepted")
	}
}

func TestBytesAbsentVsZero(t *testing.T) {
	zero := BytesOf(0)
	var absent Bytes
	if !zero.Present() || absent.Present() {
		t.Fatal(zero, absent)
	}
	if zero.String() != "0b" || absent.String() != Placeholder {
		t.Fatal(zero.String(), absent.String())
	}
	// Absent is neither greater nor less than anything, including zero
	if absent.Cmp(zero) != 0 || zero.Cmp(absent) != 0 || absent.Cmp(absent) != 0 {
		t.Fatal("bad order")
	}
	if BytesOf(1).Cmp(zero) != 1 || zero.Cmp(BytesOf(1)) != -1 {
		t.Fatal("bad order")
	}
}

func TestAbsentCmp(t *testing.T) {
	var s Seconds
	if s.Cmp(SecondsOf(1)) != 0 || SecondsOf(1).Cmp(s) != 0 {
		t.Fatal("seconds absent ordered")
	}
	var r Ratio
	if r.Cmp(RatioOf(1)) != 0 || RatioOf(1).Cmp(r) != 0 {
		t.Fatal("ratio absent ordered")
	}
	if SecondsOf(2).Cmp(SecondsOf(1)) != 1 || RatioOf(1).Cmp(RatioOf(2)) != -1 {
		t.Fatal("present values unordered")
	}
}

func TestBytesArith(t *testing.T) {
	a := BytesOf(3e9)
	b := BytesOf(1e9)
	var absent Bytes
	if v := a.Sub(b); v.Value() != 2e9 {
		t.Fatal(v)
	}
	if v := a.Sub(absent); v.Present() {
		t.Fatal(v)
	}
	if v := a.Add(absent); v.Value() != 3e9 {
		t.Fatal(v)
	}
	if v := absent.Add(b); v.Value() != 1e9 {
		t.Fatal(v)
	}
}

func TestParseSeconds(t *testing.T) {
	s, err := ParseSeconds("995:58:01")
	if err != nil || s.Value() != 995*3600+58*60+1 {
		t.Fatal(s, err)
	}
	if v := s.String(); v != "41.5d" {
		t.Fatal(v)
	}
	// Two components are HH:MM
	s, err = ParseSeconds("07:13")
	if err != nil || s.Value() != (7*60+13)*60 {
		t.Fatal(s, err)
	}
	if v := s.String(); v != "7.2h" {
		t.Fatal(v)
	}
	s, err = ParseSeconds("10d")
	if err != nil || s.Value() != 864000 {
		t.Fatal(s, err)
	}
	if v := s.Format("d", 0); v != "10d" {
		t.Fatal(v)
	}
	s, err = ParseSeconds("42")
	if err != nil || s.Value() != 42 {
		t.Fatal(s, err)
	}
	s, err = ParseSeconds("--")
	if err != nil || s.Present() {
		t.Fatal(s, err)
	}
	if _, err = ParseSeconds("-5s"); err == nil {
		t.Fatal("negative accepted")
	}
	if _, err = ParseSeconds("1:2:3:4"); err == nil {
		t.Fatal("bad clock accepted")
	}
}

// Formatting is lossy at the default precision, but reformatting what we print must be stable.
func TestSecondsIdempotent(t *testing.T) {
	for _, text := range []string{"995:58:01", "07:13", "10d", "59", "90m"} {
		s, err := ParseSeconds(text)
		if err != nil {
			t.Fatal(err)
		}
		once := s.String()
		s2, err := ParseSeconds(once)
		if err != nil {
			t.Fatal(err)
		}
		if again := s2.String(); again != once {
			t.Fatal(text, once, again)
		}
	}
}

func TestRatio(t *testing.T) {
	r, err := ParseRatio("0.99")
	if err != nil || r.Value() != 0.99 {
		t.Fatal(r, err)
	}
	if v := r.String(); v != "0.99" {
		t.Fatal(v)
	}
	r, err = ParseRatio("--")
	if err != nil || r.Present() {
		t.Fatal(r, err)
	}
	if _, err = ParseRatio("high"); err == nil {
		t.Fatal("garbage accepted")
	}
	if v := RatioOf(0.987).Format(2); v != "0.99" {
		t.Fatal(v)
	}
	var absent Ratio
	if v := absent.StringOr("n/a"); v != "n/a" {
		t.Fatal(v)
	}
}
