// Package value implements cash's value algebra: a fixed tagged sum of
// kinds {boolean, integer, float, string, range, list, dict, none,
// function, builtin-function, future, return, break, continue} together
// with the unary/binary/index/membership operator contract dispatched by
// type switch rather than downcasting, per the interpreter's pattern-match
// dispatch style (conneroisu-gix/internal/value/value.go kept the same
// "Value interface + concrete kinds" shape; the per-operator dispatch here
// is regrounded on the original cash interpreter's per-kind operator methods,
// see backend/src/values/*.rs in the retrieval pack).
package value

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/conneroisu/cash/internal/errs"
)

// Kind identifies which alternative of the value sum a Value holds.
type Kind byte

const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindString
	KindRange
	KindList
	KindDict
	KindNone
	KindFunction
	KindBuiltin
	KindFuture
	KindReturn
	KindBreak
	KindContinue
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindRange:
		return "range"
	case KindList:
		return "list"
	case KindDict:
		return "dict"
	case KindNone:
		return "none"
	case KindFunction:
		return "function"
	case KindBuiltin:
		return "builtin"
	case KindFuture:
		return "future"
	case KindReturn:
		return "return"
	case KindBreak:
		return "break"
	case KindContinue:
		return "continue"
	default:
		return "unknown"
	}
}

// floatEpsilon is the absolute tolerance used for float equality.
const floatEpsilon = 1e-15

// Value is the interface every cash value implements.
type Value interface {
	Kind() Kind
	String() string
	// Clone returns an independent deep copy, so assignment and parameter
	// passing never let two bindings alias the same mutable container.
	Clone() Value
}

// Eq reports structural equality; cross-kind comparisons return false
// rather than erroring.
func Eq(a, b Value) bool {
	switch av := a.(type) {
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Int:
		switch bv := b.(type) {
		case Int:
			return av == bv
		case Float:
			return math.Abs(float64(av)-float64(bv)) <= floatEpsilon
		}
		return false
	case Float:
		switch bv := b.(type) {
		case Int:
			return math.Abs(float64(av)-float64(bv)) <= floatEpsilon
		case Float:
			return math.Abs(float64(av)-float64(bv)) <= floatEpsilon
		}
		return false
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case *Range:
		bv, ok := b.(*Range)
		return ok && av.Lower == bv.Lower && av.Upper == bv.Upper
	case *List:
		bv, ok := b.(*List)
		if !ok || len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !Eq(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	case *Dict:
		bv, ok := b.(*Dict)
		if !ok || len(av.entries) != len(bv.entries) {
			return false
		}
		for k, v := range av.entries {
			ov, ok := bv.entries[k]
			if !ok || !Eq(v, ov) {
				return false
			}
		}
		return true
	case None:
		_, ok := b.(None)
		return ok
	default:
		return false
	}
}

// Stringify renders v the way string concatenation and dict-key formation do.
func Stringify(v Value) string {
	if s, ok := v.(String); ok {
		return string(s)
	}
	return v.String()
}

// ---- boolean ----

type Bool bool

func (b Bool) Kind() Kind    { return KindBool }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (b Bool) Clone() Value { return b }

// ---- integer ----

type Int int64

func (i Int) Kind() Kind      { return KindInt }
func (i Int) String() string  { return strconv.FormatInt(int64(i), 10) }
func (i Int) Clone() Value    { return i }

// ---- float ----

type Float float64

func (f Float) Kind() Kind   { return KindFloat }
func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}
func (f Float) Clone() Value { return f }

// ---- string ----

// String is indexed by rune (character) position, not byte, so indexing
// and slicing stay correct for multi-byte UTF-8 text.
type String string

func (s String) Kind() Kind   { return KindString }
func (s String) String() string { return string(s) }
func (s String) Clone() Value { return s }

func (s String) runes() []rune { return []rune(string(s)) }

// ---- range ----

// Range is the half-open interval [Lower, Upper); Upper > Lower is
// enforced at every construction site so a Range is never empty.
type Range struct {
	Lower int64
	Upper int64
}

// NewRange validates and builds a Range.
func NewRange(lower, upper int64) (*Range, error) {
	if upper-lower < 1 {
		return nil, errs.NewInvalidLength(int(upper-lower), "range")
	}
	return &Range{Lower: lower, Upper: upper}, nil
}

func (r *Range) Kind() Kind   { return KindRange }
func (r *Range) String() string {
	return fmt.Sprintf("%d..%d", r.Lower, r.Upper)
}
func (r *Range) Clone() Value { return &Range{Lower: r.Lower, Upper: r.Upper} }
func (r *Range) Len() int64   { return r.Upper - r.Lower }

// ---- list ----

type List struct {
	Elems []Value
}

func NewList(elems ...Value) *List {
	cloned := make([]Value, len(elems))
	for i, e := range elems {
		cloned[i] = e.Clone()
	}
	return &List{Elems: cloned}
}

func (l *List) Kind() Kind { return KindList }
func (l *List) String() string {
	parts := make([]string, len(l.Elems))
	for i, e := range l.Elems {
		parts[i] = renderElem(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func renderElem(v Value) string {
	if s, ok := v.(String); ok {
		return strconv.Quote(string(s))
	}
	return v.String()
}

func (l *List) Clone() Value {
	elems := make([]Value, len(l.Elems))
	for i, e := range l.Elems {
		elems[i] = e.Clone()
	}
	return &List{Elems: elems}
}

// ---- dict ----

// Dict maps the string rendering of an index value to a Value.
type Dict struct {
	entries map[string]Value
	// order preserves insertion order for iteration determinism (Keys),
	// though dict is formally unordered per spec; String() sorts keys.
	order []string
}

func NewDict() *Dict {
	return &Dict{entries: make(map[string]Value)}
}

func (d *Dict) Kind() Kind { return KindDict }

func (d *Dict) Get(key string) (Value, bool) {
	v, ok := d.entries[key]
	return v, ok
}

func (d *Dict) Set(key string, v Value) {
	if _, exists := d.entries[key]; !exists {
		d.order = append(d.order, key)
	}
	d.entries[key] = v.Clone()
}

func (d *Dict) Delete(key string) bool {
	if _, ok := d.entries[key]; !ok {
		return false
	}
	delete(d.entries, key)
	for i, k := range d.order {
		if k == key {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return true
}

func (d *Dict) Len() int { return len(d.entries) }

// Keys returns keys in insertion order.
func (d *Dict) Keys() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

func (d *Dict) String() string {
	keys := append([]string(nil), d.order...)
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%q: %s", k, renderElem(d.entries[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (d *Dict) Clone() Value {
	nd := NewDict()
	for _, k := range d.order {
		nd.Set(k, d.entries[k])
	}
	return nd
}

// ---- none ----

type None struct{}

func (None) Kind() Kind    { return KindNone }
func (None) String() string { return "none" }
func (None) Clone() Value   { return None{} }

// ---- control-flow sentinels ----
//
// return/break/continue wrap an inner Value and exist only in transit
// through eval frames — never stored, never compared.

type Return struct{ Inner Value }

func (r *Return) Kind() Kind      { return KindReturn }
func (r *Return) String() string { return "return " + r.Inner.String() }
func (r *Return) Clone() Value    { return &Return{Inner: r.Inner.Clone()} }

type Break struct{ Inner Value }

func (b *Break) Kind() Kind      { return KindBreak }
func (b *Break) String() string { return "break " + b.Inner.String() }
func (b *Break) Clone() Value    { return &Break{Inner: b.Inner.Clone()} }

type Continue struct{ Inner Value }

func (c *Continue) Kind() Kind      { return KindContinue }
func (c *Continue) String() string { return "continue " + c.Inner.String() }
func (c *Continue) Clone() Value    { return &Continue{Inner: c.Inner.Clone()} }

// Sentinel returns (inner, true) if v is a return/break/continue wrapper.
func Sentinel(v Value) (Value, bool) {
	switch s := v.(type) {
	case *Return:
		return s.Inner, true
	case *Break:
		return s.Inner, true
	case *Continue:
		return s.Inner, true
	default:
		return nil, false
	}
}

// Unwrap returns the inner value of a sentinel, or v itself if it is not one.
func Unwrap(v Value) Value {
	if inner, ok := Sentinel(v); ok {
		return inner
	}
	return v
}
