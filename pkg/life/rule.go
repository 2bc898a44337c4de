package life

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

const (
	// PayloadLen is the decoded byte length of a rule code.
	PayloadLen = 8

	// TableSize is the number of neighbor-state codes a rule decides.
	TableSize = 512
)

// ruleCodec is the textual form of a rule payload: standard base64
// alphabet with padding and no line wrapping. Strict mode rejects
// non-canonical trailing bits, so every accepted code re-encodes to itself.
var ruleCodec = base64.StdEncoding.Strict()

// Rule is an immutable next-state table indexed by neighbor-state code.
//
// The wire format reads the payload bytes most-significant-bit first and
// reverses the bit sequence into the low table entries, which is the same
// as treating the payload as a big-endian integer whose bit i decides code
// i. An 8-byte payload therefore covers codes 0 through 63 only; codes 64
// and above are permanently dead. Widening the payload would change the
// meaning of every existing code, so the narrow table is part of the
// format.
type Rule struct {
	bits uint64
}

// DecodeError reports a rule code that could not be decoded. No partial
// rule is ever produced.
type DecodeError struct {
	Code string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode rule %q: %v", e.Code, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ParseRule decodes a textual rule code. The code must be the canonical
// base64 form of exactly PayloadLen bytes; anything else fails with a
// *DecodeError.
func ParseRule(code string) (Rule, error) {
	payload, err := ruleCodec.DecodeString(code)
	if err != nil {
		return Rule{}, &DecodeError{Code: code, Err: err}
	}
	if len(payload) != PayloadLen {
		return Rule{}, &DecodeError{
			Code: code,
			Err:  fmt.Errorf("payload is %d bytes, want %d", len(payload), PayloadLen),
		}
	}
	return Rule{bits: binary.BigEndian.Uint64(payload)}, nil
}

// Alive reports the next state for the given neighbor-state code. Codes
// outside the encodable range are dead.
func (r Rule) Alive(code int) bool {
	if code < 0 || code >= PayloadLen*8 {
		return false
	}
	return (r.bits>>code)&1 == 1
}

// Encode renders the rule back into its textual code.
func (r Rule) Encode() string {
	var payload [PayloadLen]byte
	binary.BigEndian.PutUint64(payload[:], r.bits)
	return ruleCodec.EncodeToString(payload[:])
}

// RandomRule draws a rule uniformly from the encodable table space.
func RandomRule(rng *rand.Rand) Rule {
	return Rule{bits: rng.Uint64()}
}
