// Package security provides shared security primitives for charkit.
//
// It includes TLS configuration and certificate handling used when a
// byte source fetches its content over HTTPS.
//
// # TLS Configuration
//
//	cfg := security.TLSConfig{
//	    CAFile:   "/path/to/ca.pem",
//	    CertFile: "/path/to/cert.pem",
//	    KeyFile:  "/path/to/key.pem",
//	}
//
//	tlsConfig, err := cfg.Build()
package security
