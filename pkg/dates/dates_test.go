package dates

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseAndString(t *testing.T) {
	d, err := Parse("2026-03-14")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.String() != "2026-03-14" {
		t.Errorf("String() = %q", d.String())
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse("14/03/2026"); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	type payload struct {
		When Date `json:"when"`
	}
	var p payload
	if err := json.Unmarshal([]byte(`{"when": "2026-03-14"}`), &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != `{"when":"2026-03-14"}` {
		t.Errorf("Marshal = %s", out)
	}
}

func TestScan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if d.String() != "2026-03-14" {
		t.Errorf("scanned date = %q", d.String())
	}
}

func TestValue_Zero(t *testing.T) {
	var d Date
	v, err := d.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if v != nil {
		t.Errorf("zero date Value() = %v, want nil", v)
	}
}
