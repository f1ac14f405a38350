// Package testutil provides stream and source fixtures for charkit tests.
//
// The fixtures make the deferred-open contract observable: CountingSource
// proves when and how often a source was opened, CloseCounter proves the
// handle was released, and FailingSource and BrokenReader inject failures
// at open time and mid-stream.
//
// # Quick Start
//
// Asserting that construction performs no work:
//
//	src := testutil.Counting(source.String("hello"))
//	r := textio.New(src)
//	if src.Opens != 0 {
//	    t.Errorf("expected 0 opens before first read, got %d", src.Opens)
//	}
//
// Writing a fixture file and reading it back:
//
//	path := testutil.T(t).TempFile("data.txt", []byte("hello"))
//	r := textio.FromFile(path)
//	defer r.Close()
//
// All fixtures are plain structs with exported counters; they are not
// safe for concurrent use, matching the readers they test.
package testutil
