package krakenspot

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Payload is an ordered set of form parameters. Unlike url.Values, Encode
// preserves insertion order, so the bytes that are signed are exactly the
// bytes the caller built and the bytes that are sent.
type Payload struct {
	entries []payloadEntry
}

type payloadEntry struct {
	key   string
	value string
}

func NewPayload() *Payload {
	return &Payload{}
}

// Add appends 'key'='value' after any existing entries, including entries
// with the same key.
func (p *Payload) Add(key, value string) {
	p.entries = append(p.entries, payloadEntry{key: key, value: value})
}

// Set replaces the value of the first entry for 'key', keeping its position,
// and drops any later entries with the same key. Appends if 'key' is absent.
func (p *Payload) Set(key, value string) {
	found := false
	kept := p.entries[:0]
	for _, e := range p.entries {
		if e.key == key {
			if found {
				continue
			}
			e.value = value
			found = true
		}
		kept = append(kept, e)
	}
	p.entries = kept
	if !found {
		p.Add(key, value)
	}
}

// AddFloat appends 'f' in plain decimal notation, never scientific notation.
// NaN and infinities are rejected with ErrInvalidArg.
func (p *Payload) AddFloat(key string, f float64) error {
	s, err := FormatNumber(f)
	if err != nil {
		return err
	}
	p.Add(key, s)
	return nil
}

func (p *Payload) AddInt(key string, i int64) {
	p.Add(key, strconv.FormatInt(i, 10))
}

// AddBool appends the literal "true" when 'b' is true. Kraken has no wire
// form for false, so false leaves the payload untouched.
func (p *Payload) AddBool(key string, b bool) {
	if b {
		p.Add(key, "true")
	}
}

// AddNumber appends any supported scalar: string, bool, signed and unsigned
// integers, float32, float64 and decimal.Decimal.
func (p *Payload) AddNumber(key string, v interface{}) error {
	if b, ok := v.(bool); ok {
		p.AddBool(key, b)
		return nil
	}
	s, err := FormatNumber(v)
	if err != nil {
		return err
	}
	p.Add(key, s)
	return nil
}

// Get returns the first value for 'key' or "" if absent.
func (p *Payload) Get(key string) string {
	if p == nil {
		return ""
	}
	for _, e := range p.entries {
		if e.key == key {
			return e.value
		}
	}
	return ""
}

func (p *Payload) Has(key string) bool {
	if p == nil {
		return false
	}
	for _, e := range p.entries {
		if e.key == key {
			return true
		}
	}
	return false
}

// Del removes every entry for 'key'.
func (p *Payload) Del(key string) {
	kept := p.entries[:0]
	for _, e := range p.entries {
		if e.key != key {
			kept = append(kept, e)
		}
	}
	p.entries = kept
}

func (p *Payload) Len() int {
	if p == nil {
		return 0
	}
	return len(p.entries)
}

// Keys returns keys in insertion order, repeated keys included.
func (p *Payload) Keys() []string {
	keys := make([]string, len(p.entries))
	for i, e := range p.entries {
		keys[i] = e.key
	}
	return keys
}

func (p *Payload) Clone() *Payload {
	if p == nil {
		return NewPayload()
	}
	c := &Payload{entries: make([]payloadEntry, len(p.entries))}
	copy(c.entries, p.entries)
	return c
}

// Encode returns the payload in application/x-www-form-urlencoded form with
// entries in insertion order.
func (p *Payload) Encode() string {
	if p == nil || len(p.entries) == 0 {
		return ""
	}
	var buf strings.Builder
	for i, e := range p.entries {
		if i > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(url.QueryEscape(e.key))
		buf.WriteByte('=')
		buf.WriteString(url.QueryEscape(e.value))
	}
	return buf.String()
}

func (p *Payload) String() string {
	return p.Encode()
}

// withNonce returns a copy of the payload with 'nonce' as its first entry.
// A nonce already present in the payload is discarded.
func (p *Payload) withNonce(nonce uint64) *Payload {
	out := &Payload{entries: make([]payloadEntry, 0, p.Len()+1)}
	out.entries = append(out.entries, payloadEntry{key: "nonce", value: strconv.FormatUint(nonce, 10)})
	if p != nil {
		for _, e := range p.entries {
			if e.key != "nonce" {
				out.entries = append(out.entries, e)
			}
		}
	}
	return out
}

// ParsePayload decodes a form-encoded string, keeping entry order.
func ParsePayload(encoded string) (*Payload, error) {
	p := NewPayload()
	if encoded == "" {
		return p, nil
	}
	for _, pair := range strings.Split(encoded, "&") {
		key, value, _ := strings.Cut(pair, "=")
		k, err := url.QueryUnescape(key)
		if err != nil {
			return nil, fmt.Errorf("error unescaping key %q | %w", key, err)
		}
		v, err := url.QueryUnescape(value)
		if err != nil {
			return nil, fmt.Errorf("error unescaping value %q | %w", value, err)
		}
		p.Add(k, v)
	}
	return p, nil
}

// FormatNumber renders 'v' as a plain decimal string. Floats are expanded
// out of scientific notation (1e-8 becomes "0.00000001") since Kraken rejects
// exponents in numeric fields. Strings pass through unchanged.
func FormatNumber(v interface{}) (string, error) {
	switch n := v.(type) {
	case string:
		return n, nil
	case decimal.Decimal:
		return n.String(), nil
	case *decimal.Decimal:
		if n == nil {
			return "", fmt.Errorf("%w; nil decimal", ErrInvalidArg)
		}
		return n.String(), nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return "", fmt.Errorf("%w; cannot encode %v", ErrInvalidArg, n)
		}
		return decimal.NewFromFloat(n).String(), nil
	case float32:
		if math.IsNaN(float64(n)) || math.IsInf(float64(n), 0) {
			return "", fmt.Errorf("%w; cannot encode %v", ErrInvalidArg, n)
		}
		return decimal.NewFromFloat32(n).String(), nil
	case int:
		return strconv.FormatInt(int64(n), 10), nil
	case int8:
		return strconv.FormatInt(int64(n), 10), nil
	case int16:
		return strconv.FormatInt(int64(n), 10), nil
	case int32:
		return strconv.FormatInt(int64(n), 10), nil
	case int64:
		return strconv.FormatInt(n, 10), nil
	case uint:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint64:
		return strconv.FormatUint(n, 10), nil
	default:
		return "", fmt.Errorf("%w; unsupported payload value type %T", ErrInvalidArg, v)
	}
}
