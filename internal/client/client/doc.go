// Package client contains the uploader's outbound building blocks.
//
// # Overview
//
// The package provides:
//  1. The TransferClient contract: send one file, get back the remote id the
//     storage backend assigned to it.
//  2. HTTPClient, the default implementation, which posts a multipart form
//     with a single "file" part to <backend>/upload and reads the JSON reply
//     ({"file_id": ...} or {"error": ...}).
//  3. S3Client, which writes the file straight into an S3-compatible bucket.
//  4. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Failures fall into two classes that callers tell apart with errors.Is:
//
//   - ErrRejected: the backend answered and refused the file. The concrete
//     value is a *BackendError whose Error() is the backend's reason.
//   - ErrUnavailable / ErrMalformedResponse: the exchange itself failed.
//
// Contexts
//
// Upload honors cancellation of the supplied context. HTTPClient applies an
// extra per-request timeout only when one is configured.
package client
