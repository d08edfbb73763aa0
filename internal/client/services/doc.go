// Package services contains the application services of the uploader client.
//
// # Overview
//
//   - StatusStore: the observable per-file status map plus the single batch
//     message. Every change is published as an immutable State.
//   - UploadService: the batch orchestrator. It uploads the selection one file
//     at a time through a client.TransferClient and records each transition
//     Pending -> InProgress -> Succeeded | Failed in the StatusStore.
//   - AuthGate: the local "authorized with Google Drive" flag, set by the
//     authorization redirect and cleared by Disconnect.
//   - SessionService: the identity the client acts as (custom token,
//     persisted, or anonymous).
//   - LoadImages: turns paths into image-only selected files.
//
// # Concurrency
//
// One batch runs at a time; overlapping RunBatch or Select calls are refused
// while a batch is in flight. StatusStore is safe for concurrent readers and
// delivers updates to subscribers synchronously, in order.
package services
