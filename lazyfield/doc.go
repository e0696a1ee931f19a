// Package lazyfield provides [Field], a single-slot wrapper that binds a
// byte span to a target scalar type, parsing it into that type only on
// first typed access and memoizing the result thereafter.
//
// Field is not safe for concurrent use. The upgrade from unparsed to parsed
// is an ordinary, non-atomic mutation: callers are expected to be
// thread-confined decoder views with a lifetime no longer than the buffer
// they borrow, the same way a [scanner.Scanner] is. Sharing a Field across
// goroutines without external synchronization is a bug, not a supported
// configuration.
package lazyfield
