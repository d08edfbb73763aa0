package services

import "fmt"

// User-facing batch and authorization messages.
const (
	MsgAuthorizeFirst  = "Please authorize with Google Drive first."
	MsgSelectFiles     = "Please select files to upload."
	MsgStarting        = "Starting upload..."
	MsgAllProcessed    = "All selected files processed."
	MsgBatchInProgress = "An upload is already in progress."
	MsgAuthorized      = "Successfully authorized with Google Drive via backend!"
	MsgDisconnected    = "Disconnected from Google Drive (frontend only). You may need to clear browser cookies or re-authorize if you want to connect to a different Google account."
	ReasonUnknownError = "Unknown error"
	ReasonNetworkError = "Network error"
)

func msgUploaded(name string) string {
	return fmt.Sprintf("Successfully uploaded %s", name)
}

func msgRejected(name, reason string) string {
	return fmt.Sprintf("Failed to upload %s: %s", name, reason)
}

func msgTransportError(name, reason string) string {
	return fmt.Sprintf("Error uploading %s: %s", name, reason)
}
