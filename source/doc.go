// Package source provides byte sources for the textio reader: values
// that produce a byte handle on demand while deferring acquisition
// until Open is called.
//
// A Source carries no context or timeout of its own. Implementations
// that talk to the network (URL, S3) own those policies and accept them
// as options; in-memory and file sources need none.
//
// # Usage
//
//	src := source.File("notes.txt")
//	rc, err := src.Open()
package source
