// Package value implements the runtime value system for the cash
// interpreter: a fixed tagged sum of kinds with per-kind operator
// dispatch and value semantics.
//
// Unlike an immutable-value system, cash lists and dicts are mutable
// containers; value semantics is instead an assignment-time guarantee —
// Clone() produces an independent deep copy so that "b = a; b[0] = 9"
// never affects a (spec testable property 11). Every context Get, every
// function argument pass, and every assignment stores a Clone of its
// operand rather than aliasing the caller's value.
//
// Control-flow sentinels (Return/Break/Continue) are ordinary Value
// implementations so that eval's "Value or error" contract need not grow
// a third channel, but callers must never let one escape into a
// container or binding — see internal/ast for the unwrap discipline at
// block/loop/call boundaries.
package value
