package models

// UploadStatus is the lifecycle state of one selected file within a batch.
type UploadStatus int

const (
	StatusPending UploadStatus = iota
	StatusInProgress
	StatusSucceeded
	StatusFailed
)

func (s UploadStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusInProgress:
		return "in_progress"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// UploadRecord is the per-file status entry. RemoteID is set only for
// StatusSucceeded and Reason only for StatusFailed. Progress is 0 or 100;
// partial progress is never reported.
type UploadRecord struct {
	Status   UploadStatus
	Progress int
	RemoteID string
	Reason   string
}

func PendingRecord() UploadRecord {
	return UploadRecord{Status: StatusPending}
}

func InProgressRecord() UploadRecord {
	return UploadRecord{Status: StatusInProgress}
}

func SucceededRecord(remoteID string) UploadRecord {
	return UploadRecord{Status: StatusSucceeded, Progress: 100, RemoteID: remoteID}
}

func FailedRecord(reason string) UploadRecord {
	return UploadRecord{Status: StatusFailed, Reason: reason}
}

// Terminal reports whether the record can no longer change within its batch.
func (r UploadRecord) Terminal() bool {
	return r.Status == StatusSucceeded || r.Status == StatusFailed
}

// Label is the short line shown next to the file name.
func (r UploadRecord) Label() string {
	switch r.Status {
	case StatusInProgress:
		return "Uploading..."
	case StatusSucceeded:
		return "Uploaded!"
	case StatusFailed:
		return "Failed: " + r.Reason
	default:
		return "Pending"
	}
}
