// Package gen implements the schema-to-decoder code generator: it resolves
// an annotated record declaration into a [Record], then emits Go source for
// a zero-copy view struct, a Decode entry point, per-field accessors, and
// array iterators that drive the [scanner] package using precomputed skip
// distances.
//
// A record can be declared two ways, both parsing into the same [Record]
// model:
//
//   - As a Go struct in a source file, with a "jscan:object" doc-comment
//     directive and per-field `jscan:"..."` struct tags. Use [ParseGoFile].
//     This is the primary surface: it keeps the schema next to the type it
//     describes and plugs into go:generate the way stringer-style tools do.
//   - As a YAML schema document. Use [LoadSchemaFile]. This suits pipelines
//     that would rather not declare a placeholder Go type at all; documents
//     are validated against a JSON Schema description of the schema
//     language itself before being resolved into a [Record].
//
// [Generate] takes a resolved [Record] and returns gofmt'd Go source for its
// decoder. The emitted code does not import this package; it imports
// [scanner], [lazyfield], and jscanerr, plus jscanrt for field types that
// need its parsing helpers.
package gen
