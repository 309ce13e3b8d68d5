// Package icap holds the value types of ICAP messages (RFC 3507): requests and responses
// with their encapsulated HTTP heads and a mode-tagged body. Wire encoding is left to a codec
// built on top; nothing here performs I/O.
//
// The head primitives live in subpackages: method, proto and status for ICAP itself, http
// for the encapsulated HTTP heads, and kv for header fields.
package icap
