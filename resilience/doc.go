// Package resilience provides retry and circuit breaker primitives for
// operations against unreliable byte sources.
//
// Retry re-runs an operation with exponential backoff and jitter;
// CircuitBreaker fails fast once a source has proven unhealthy. Both
// are wired into source decorators, and can be combined:
//
//	cb := resilience.NewCircuitBreaker(resilience.DefaultCircuitBreakerConfig("feed"))
//	rc, err := resilience.Retry(ctx, cfg, func() (io.ReadCloser, error) {
//	    var out io.ReadCloser
//	    err := cb.Execute(func() error {
//	        var openErr error
//	        out, openErr = src.Open()
//	        return openErr
//	    })
//	    return out, err
//	})
package resilience
