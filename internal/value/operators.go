package value

import (
	"math"
	"strconv"
	"strings"

	"github.com/conneroisu/cash/internal/errs"
)

// ---- unary ----

// UPlus implements the unary '+' operator.
func UPlus(v Value) (Value, error) {
	switch t := v.(type) {
	case Int:
		return t, nil
	case Float:
		return t, nil
	default:
		return nil, errs.NewInvalidOperation("uplus", t.Kind().String())
	}
}

// UMinus implements the unary '-' operator. For range, negation maps
// (lower, upper) to (-upper, -lower); since the length is preserved
// (upper-lower == (-lower)-(-upper)) this never violates the range
// construction invariant, grounded on the original interpreter's
// RangeValue::uminus in backend/src/values/range.rs, which reuses the
// same boxed constructor and always succeeds.
func UMinus(v Value) (Value, error) {
	switch t := v.(type) {
	case Int:
		return -t, nil
	case Float:
		return -t, nil
	case *Range:
		return &Range{Lower: -t.Upper, Upper: -t.Lower}, nil
	default:
		return nil, errs.NewInvalidOperation("uminus", t.Kind().String())
	}
}

// Not implements the unary '!' operator.
func Not(v Value) (Value, error) {
	b, ok := v.(Bool)
	if !ok {
		return nil, errs.NewInvalidType(v.Kind().String(), "bool")
	}
	return !b, nil
}

// ---- arithmetic ----

func asFloat(v Value) (float64, bool) {
	switch t := v.(type) {
	case Int:
		return float64(t), true
	case Float:
		return float64(t), true
	default:
		return 0, false
	}
}

// Add implements '+' across all mixed-kind rules: numeric widening,
// string concatenation, range shifting, and list append.
func Add(l, r Value) (Value, error) {
	if ls, ok := l.(String); ok {
		return ls + String(Stringify(r)), nil
	}
	switch lt := l.(type) {
	case Int:
		switch rt := r.(type) {
		case Int:
			return lt + rt, nil
		case Float:
			return Float(float64(lt)) + rt, nil
		}
	case Float:
		if rf, ok := asFloat(r); ok {
			return lt + Float(rf), nil
		}
	case *Range:
		if ri, ok := r.(Int); ok {
			return &Range{Lower: lt.Lower + int64(ri), Upper: lt.Upper + int64(ri)}, nil
		}
	case *List:
		nl := lt.Clone().(*List)
		nl.Elems = append(nl.Elems, r.Clone())
		return nl, nil
	}
	return nil, errs.NewInvalidOperation("add", l.Kind().String()+" "+r.Kind().String())
}

// Sub implements '-'.
func Sub(l, r Value) (Value, error) {
	if ls, ok := l.(String); ok {
		rs, ok := r.(String)
		if !ok {
			return nil, errs.NewInvalidOperation("subtract", "string "+r.Kind().String())
		}
		return String(removeAll(string(ls), string(rs))), nil
	}
	switch lt := l.(type) {
	case Int:
		switch rt := r.(type) {
		case Int:
			return lt - rt, nil
		case Float:
			return Float(float64(lt)) - rt, nil
		}
	case Float:
		if rf, ok := asFloat(r); ok {
			return lt - Float(rf), nil
		}
	case *Range:
		if ri, ok := r.(Int); ok {
			return &Range{Lower: lt.Lower - int64(ri), Upper: lt.Upper - int64(ri)}, nil
		}
	}
	return nil, errs.NewInvalidOperation("subtract", l.Kind().String()+" "+r.Kind().String())
}

func removeAll(s, substr string) string {
	if substr == "" {
		return s
	}
	return strings.ReplaceAll(s, substr, "")
}

// Mul implements '*'.
func Mul(l, r Value) (Value, error) {
	switch lt := l.(type) {
	case Int:
		switch rt := r.(type) {
		case Int:
			return lt * rt, nil
		case Float:
			return Float(float64(lt)) * rt, nil
		}
	case Float:
		if rf, ok := asFloat(r); ok {
			return lt * Float(rf), nil
		}
	case String:
		if n, ok := r.(Int); ok {
			if n < 0 {
				return nil, errs.NewInvalidValue(strconv.FormatInt(int64(n), 10), "string repetition")
			}
			return String(strings.Repeat(string(lt), int(n))), nil
		}
	case *List:
		if n, ok := r.(Int); ok {
			if n < 0 {
				return nil, errs.NewInvalidValue(strconv.FormatInt(int64(n), 10), "list repetition")
			}
			out := make([]Value, 0, len(lt.Elems)*int(n))
			for i := int64(0); i < int64(n); i++ {
				for _, e := range lt.Elems {
					out = append(out, e.Clone())
				}
			}
			return &List{Elems: out}, nil
		}
	case *Range:
		length := lt.Len()
		switch rt := r.(type) {
		case Int:
			return NewRange(lt.Lower, lt.Lower+length*int64(rt))
		case Float:
			newLen := int64(float64(length) * float64(rt))
			return NewRange(lt.Lower, lt.Lower+newLen)
		}
	}
	return nil, errs.NewInvalidOperation("multiply", l.Kind().String()+" "+r.Kind().String())
}

// Div implements '/'. Integer division ALWAYS yields a float: do not
// silently downgrade to integer division.
func Div(l, r Value) (Value, error) {
	switch lt := l.(type) {
	case Int:
		switch rt := r.(type) {
		case Int:
			return Float(float64(lt)) / Float(float64(rt)), nil
		case Float:
			return Float(float64(lt)) / rt, nil
		}
	case Float:
		if rf, ok := asFloat(r); ok {
			return lt / Float(rf), nil
		}
	case *Range:
		if n, ok := r.(Int); ok {
			if n == 0 {
				return nil, errs.NewInvalidValue("0", "range division")
			}
			newLen := lt.Len() / int64(n)
			return NewRange(lt.Lower, lt.Lower+newLen)
		}
	}
	return nil, errs.NewInvalidOperation("divide", l.Kind().String()+" "+r.Kind().String())
}

// Mod implements '%' (integers and floats only).
func Mod(l, r Value) (Value, error) {
	li, lok := l.(Int)
	ri, rok := r.(Int)
	if lok && rok {
		if ri == 0 {
			return nil, errs.NewInvalidValue("0", "modulo")
		}
		return li % ri, nil
	}
	lf, lok2 := asFloat(l)
	rf, rok2 := asFloat(r)
	if lok2 && rok2 {
		return Float(math.Mod(lf, rf)), nil
	}
	return nil, errs.NewInvalidOperation("modulo", l.Kind().String()+" "+r.Kind().String())
}

// Pow implements '**'. integer**non-negative-integer stays integer;
// integer**negative-integer and any float operand yields float.
func Pow(l, r Value) (Value, error) {
	li, lIsInt := l.(Int)
	ri, rIsInt := r.(Int)
	if lIsInt && rIsInt {
		if ri >= 0 {
			result := int64(1)
			base := int64(li)
			for i := int64(0); i < int64(ri); i++ {
				result *= base
			}
			return Int(result), nil
		}
		return Float(math.Pow(float64(li), float64(ri))), nil
	}
	lf, lok := asFloat(l)
	rf, rok := asFloat(r)
	if lok && rok {
		return Float(math.Pow(lf, rf)), nil
	}
	return nil, errs.NewInvalidOperation("pow", l.Kind().String()+" "+r.Kind().String())
}

// ---- bitwise / shift ----

// Shl/Shr are defined on integers only.
func Shl(l, r Value) (Value, error) {
	li, lok := l.(Int)
	ri, rok := r.(Int)
	if !lok || !rok {
		return nil, errs.NewInvalidOperation("shl", l.Kind().String()+" "+r.Kind().String())
	}
	return li << uint(ri), nil
}

func Shr(l, r Value) (Value, error) {
	li, lok := l.(Int)
	ri, rok := r.(Int)
	if !lok || !rok {
		return nil, errs.NewInvalidOperation("shr", l.Kind().String()+" "+r.Kind().String())
	}
	return li >> uint(ri), nil
}

// BitAnd/BitXor/BitOr are bitwise on integers, logical on booleans —
// type-driven dispatch.
func BitAnd(l, r Value) (Value, error) {
	if lb, ok := l.(Bool); ok {
		if rb, ok := r.(Bool); ok {
			return lb && rb, nil
		}
	}
	if li, ok := l.(Int); ok {
		if ri, ok := r.(Int); ok {
			return li & ri, nil
		}
	}
	return nil, errs.NewInvalidOperation("and", l.Kind().String()+" "+r.Kind().String())
}

func BitXor(l, r Value) (Value, error) {
	if lb, ok := l.(Bool); ok {
		if rb, ok := r.(Bool); ok {
			return lb != rb, nil
		}
	}
	if li, ok := l.(Int); ok {
		if ri, ok := r.(Int); ok {
			return li ^ ri, nil
		}
	}
	return nil, errs.NewInvalidOperation("xor", l.Kind().String()+" "+r.Kind().String())
}

func BitOr(l, r Value) (Value, error) {
	if lb, ok := l.(Bool); ok {
		if rb, ok := r.(Bool); ok {
			return lb || rb, nil
		}
	}
	if li, ok := l.(Int); ok {
		if ri, ok := r.(Int); ok {
			return li | ri, nil
		}
	}
	return nil, errs.NewInvalidOperation("or", l.Kind().String()+" "+r.Kind().String())
}

// ---- comparison ----

// Less/Greater/LessEq/GreaterEq error on mismatched kinds (unlike ==/!=).
func Less(l, r Value) (Value, error) {
	if ls, ok := l.(String); ok {
		if rs, ok := r.(String); ok {
			return Bool(ls < rs), nil
		}
		return nil, errs.NewInvalidOperation("lt", "string "+r.Kind().String())
	}
	lf, lok := asFloat(l)
	rf, rok := asFloat(r)
	if !lok || !rok {
		return nil, errs.NewInvalidOperation("lt", l.Kind().String()+" "+r.Kind().String())
	}
	return Bool(lf < rf), nil
}

func Greater(l, r Value) (Value, error) { return Less(r, l) }

func LessEq(l, r Value) (Value, error) {
	gt, err := Greater(l, r)
	if err != nil {
		return nil, err
	}
	return !gt.(Bool), nil
}

func GreaterEq(l, r Value) (Value, error) {
	lt, err := Less(l, r)
	if err != nil {
		return nil, err
	}
	return !lt.(Bool), nil
}

// ---- membership ----

// In evaluates "lhs in rhs" as rhs.contains(lhs).
func In(lhs, rhs Value) (Value, error) {
	switch c := rhs.(type) {
	case *Range:
		n, ok := asFloat(lhs)
		if !ok {
			return nil, errs.NewInvalidOperation("in", lhs.Kind().String()+" range")
		}
		return Bool(float64(c.Lower) <= n && n < float64(c.Upper)), nil
	case *List:
		for _, e := range c.Elems {
			if Eq(e, lhs) {
				return Bool(true), nil
			}
		}
		return Bool(false), nil
	case *Dict:
		_, ok := c.Get(Stringify(lhs))
		return Bool(ok), nil
	case String:
		return Bool(strings.Contains(string(c), Stringify(lhs))), nil
	default:
		return nil, errs.NewInvalidOperation("in", lhs.Kind().String()+" "+rhs.Kind().String())
	}
}

// ---- indexing ----

// Index implements v[i]: an int indexes a single element, a range
// slices a substring/sublist, and a clone is returned so callers can't
// mutate a container through the result of an ordinary read.
func Index(v Value, idx Value) (Value, error) {
	switch c := v.(type) {
	case String:
		runes := c.runes()
		if r, ok := idx.(*Range); ok {
			return sliceString(runes, r)
		}
		i, ok := idx.(Int)
		if !ok {
			return nil, errs.NewInvalidType(idx.Kind().String(), "int or range")
		}
		pos := normalizeIndex(int64(i), int64(len(runes)))
		if pos < 0 || pos >= int64(len(runes)) {
			return nil, errs.NewIndexOutOfBounds(int(i), "string")
		}
		return String(string(runes[pos])), nil
	case *List:
		if r, ok := idx.(*Range); ok {
			return sliceList(c.Elems, r)
		}
		i, ok := idx.(Int)
		if !ok {
			return nil, errs.NewInvalidType(idx.Kind().String(), "int or range")
		}
		pos := normalizeIndex(int64(i), int64(len(c.Elems)))
		if pos < 0 || pos >= int64(len(c.Elems)) {
			return nil, errs.NewIndexOutOfBounds(int(i), "list")
		}
		return c.Elems[pos].Clone(), nil
	case *Dict:
		key := Stringify(idx)
		val, ok := c.Get(key)
		if !ok {
			return nil, errs.NewKeyNotFound(key, "dict")
		}
		return val.Clone(), nil
	default:
		return nil, errs.NewInvalidOperation("index", v.Kind().String())
	}
}

// IndexRef behaves like Index but returns the live element without
// cloning it, so that navigating an index path for an indexed
// assignment yields a reference a caller can mutate in place via
// IndexSet — the clone-on-read rule in Index exists for ordinary reads,
// not for the assignment path's own container walk.
func IndexRef(v Value, idx Value) (Value, error) {
	switch c := v.(type) {
	case *List:
		i, ok := idx.(Int)
		if !ok {
			if _, isRange := idx.(*Range); isRange {
				return nil, errs.NewInvalidOperation("index-assign", "list range")
			}
			return nil, errs.NewInvalidType(idx.Kind().String(), "int")
		}
		pos := normalizeIndex(int64(i), int64(len(c.Elems)))
		if pos < 0 || pos >= int64(len(c.Elems)) {
			return nil, errs.NewIndexOutOfBounds(int(i), "list")
		}
		return c.Elems[pos], nil
	case *Dict:
		key := Stringify(idx)
		val, ok := c.Get(key)
		if !ok {
			return nil, errs.NewKeyNotFound(key, "dict")
		}
		return val, nil
	default:
		return nil, errs.NewInvalidOperation("index", v.Kind().String())
	}
}

func normalizeIndex(i, length int64) int64 {
	if i < 0 {
		return length + i
	}
	return i
}

func sliceString(runes []rune, r *Range) (Value, error) {
	lo, hi := r.Lower, r.Upper
	if lo < 0 || hi > int64(len(runes)) {
		return nil, errs.NewIndexOutOfBounds(int(hi), "string")
	}
	return String(string(runes[lo:hi])), nil
}

func sliceList(elems []Value, r *Range) (Value, error) {
	lo, hi := r.Lower, r.Upper
	if lo < 0 || hi > int64(len(elems)) {
		return nil, errs.NewIndexOutOfBounds(int(hi), "list")
	}
	out := make([]Value, hi-lo)
	for i := lo; i < hi; i++ {
		out[i-lo] = elems[i].Clone()
	}
	return &List{Elems: out}, nil
}

// IndexSet writes value at v[idx] in place, used by indexed assignment.
// Range indexes broadcast the same value to every covered slot of a list.
func IndexSet(v Value, idx Value, val Value) error {
	switch c := v.(type) {
	case *List:
		if r, ok := idx.(*Range); ok {
			if r.Lower < 0 || r.Upper > int64(len(c.Elems)) {
				return errs.NewIndexOutOfBounds(int(r.Upper), "list")
			}
			for i := r.Lower; i < r.Upper; i++ {
				c.Elems[i] = val.Clone()
			}
			return nil
		}
		i, ok := idx.(Int)
		if !ok {
			return errs.NewInvalidType(idx.Kind().String(), "int or range")
		}
		pos := normalizeIndex(int64(i), int64(len(c.Elems)))
		if pos < 0 || pos >= int64(len(c.Elems)) {
			return errs.NewIndexOutOfBounds(int(i), "list")
		}
		c.Elems[pos] = val.Clone()
		return nil
	case *Dict:
		if _, ok := idx.(*Range); ok {
			return errs.NewInvalidOperation("index-assign", "dict range")
		}
		c.Set(Stringify(idx), val)
		return nil
	case String:
		return errs.NewInvalidOperation("index-assign", "string")
	default:
		return errs.NewInvalidOperation("index-assign", v.Kind().String())
	}
}

// Vec implements the vec() projection: range enumerates integers, list
// yields its elements, dict yields its keys as strings, string yields
// single-character strings.
func Vec(v Value) ([]Value, error) {
	switch c := v.(type) {
	case *Range:
		out := make([]Value, 0, c.Len())
		for i := c.Lower; i < c.Upper; i++ {
			out = append(out, Int(i))
		}
		return out, nil
	case *List:
		out := make([]Value, len(c.Elems))
		for i, e := range c.Elems {
			out[i] = e.Clone()
		}
		return out, nil
	case *Dict:
		keys := c.Keys()
		out := make([]Value, len(keys))
		for i, k := range keys {
			out[i] = String(k)
		}
		return out, nil
	case String:
		runes := c.runes()
		out := make([]Value, len(runes))
		for i, r := range runes {
			out[i] = String(string(r))
		}
		return out, nil
	default:
		return nil, errs.NewInvalidOperation("vec", v.Kind().String())
	}
}
