// Package collections provides functional helpers over loosely typed
// collections: traversal (map, filter, reduce, find, …), array and object
// helpers, deep equality, dot-notation paths, and a chainable [Wrapper].
//
// # Collections
//
// Every operation takes its collection as an any and decides once how to
// walk it ([Classify]):
//
//   - indexed: slices, arrays, strings (by rune), [Indexer] values, and
//     mappings whose "length" entry is a number in [0, [MaxArrayIndex]]
//   - keyed: maps (keys sorted), structs and struct pointers (exported
//     fields in declaration order), and [KeyedMapping] values
//
// nil is an empty keyed collection, so every operation accepts it.
//
// # Selectors
//
// Wherever an operation needs a per-element callback it accepts a loose
// selector and resolves it once ([Normalize]):
//
//	collections.Map(users, func(u User) string { return u.Name }) // function
//	collections.Map(users, "Name")                               // property
//	collections.Map(users, []string{"Address", "City"})          // property path
//	collections.Filter(users, map[string]any{"Active": true})    // matcher
//	collections.Map(users, nil)                                  // identity
//
// Functions receive (value, key, collection), truncated to the number of
// parameters they declare; typed parameters are converted from the
// forwarded values. [Fn], [Match], [Key] and [IdentitySelector] build
// selectors explicitly.
//
// # Equality
//
// [IsEqual] is a cycle-safe deep comparison; [StrictEqual] is the shallow
// comparison used by matchers and [IndexOf].
//
// # Chaining
//
//	evens := collections.Chain([]int{5, 2, 8, 2, 1}).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    Uniq().
//	    SortBy(nil).
//	    Value() // → []any{2, 8}
//
// Register named operations at runtime via [RegisterMixin] and call them
// through [Wrapper.Mixin].
//
// # Errors
//
// Programming errors, such as passing a non-function as a reducer, panic
// with an error wrapping one of the sentinels in this package. Operations
// that can fail on valid input ([Object], [SetPath], [CallMixin]) return the
// error instead.
package collections
