package life

import (
	"encoding/base64"
	"errors"
	"testing"

	"lifecode/pkg/core"
)

func TestParseRuleRoundTrip(t *testing.T) {
	codes := []string{
		"AAAAAAAAAAA=", // all dead
		"//////////8=", // every encodable state live
		"AAAAAAAABwo=",
	}
	for _, code := range codes {
		r, err := ParseRule(code)
		if err != nil {
			t.Fatalf("parse %q: %v", code, err)
		}
		if got := r.Encode(); got != code {
			t.Errorf("round trip %q -> %q", code, got)
		}
	}
}

func TestRandomRuleRoundTrip(t *testing.T) {
	rng := core.NewRNG(7).Source()
	for i := 0; i < 100; i++ {
		r := RandomRule(rng)
		back, err := ParseRule(r.Encode())
		if err != nil {
			t.Fatalf("parse %q: %v", r.Encode(), err)
		}
		if back != r {
			t.Fatalf("round trip changed rule %q", r.Encode())
		}
	}
}

func TestParseRuleRejects(t *testing.T) {
	cases := []struct {
		name string
		code string
	}{
		{"empty", ""},
		{"short payload", "AAAA"},
		{"four byte payload", "AAAAAA=="},
		{"nine byte payload", "AAAAAAAAAAAA"},
		{"bad alphabet", "!!!!!!!!!!!!"},
		{"missing padding", "AAAAAAAAAAA"},
		{"nonzero padding bits", "AAAAAAAAAAB="},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseRule(tc.code)
			if err == nil {
				t.Fatalf("parse %q succeeded, want error", tc.code)
			}
			var derr *DecodeError
			if !errors.As(err, &derr) {
				t.Fatalf("error %v is not a *DecodeError", err)
			}
			if derr.Code != tc.code {
				t.Errorf("DecodeError.Code=%q, want %q", derr.Code, tc.code)
			}
		})
	}
}

func TestParseRuleUnwrapsCorruptInput(t *testing.T) {
	_, err := ParseRule("????????????")
	var cerr base64.CorruptInputError
	if !errors.As(err, &cerr) {
		t.Fatalf("error %v does not unwrap to base64.CorruptInputError", err)
	}
}

func TestRuleBitOrder(t *testing.T) {
	// The payload 00 00 00 00 00 00 07 0a read as a big-endian integer has
	// bits 1, 3, 8, 9 and 10 set, so exactly those codes come out alive.
	r, err := ParseRule("AAAAAAAABwo=")
	if err != nil {
		t.Fatal(err)
	}

	alive := map[int]bool{1: true, 3: true, 8: true, 9: true, 10: true}
	for code := 0; code < TableSize; code++ {
		if got := r.Alive(code); got != alive[code] {
			t.Errorf("code %d: alive=%v, want %v", code, got, alive[code])
		}
	}
}

func TestAliveOutsideEncodableRange(t *testing.T) {
	r, err := ParseRule("//////////8=")
	if err != nil {
		t.Fatal(err)
	}

	for code := 0; code < 64; code++ {
		if !r.Alive(code) {
			t.Fatalf("code %d dead under the all-ones payload", code)
		}
	}
	for code := 64; code < TableSize; code++ {
		if r.Alive(code) {
			t.Fatalf("code %d alive, but codes beyond the payload must stay dead", code)
		}
	}
	if r.Alive(-1) {
		t.Fatal("negative code reported alive")
	}
}
