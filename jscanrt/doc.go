// Package jscanrt holds the small runtime helpers that generated decoders
// import by name (jscanrt.ParseInt8, jscanrt.ParseUint32, ...). Keeping these
// out of the generated files themselves means a package with several
// generated decoders pays for one copy, not one per file.
package jscanrt
