// Package s3 provides a byte source backed by Amazon S3 or any
// S3-compatible object store (MinIO, localstack).
//
// The source holds only coordinates (client, bucket, key); the object
// is fetched when the source is opened, and every reopen issues a
// fresh GetObject. Clients are built with NewClient or injected
// through the GetObjectAPIClient interface for testing.
package s3
