package intake

import "time"

type Phase string

const (
	PhaseEmpty     Phase = "empty"
	PhaseSelected  Phase = "selected"
	PhaseUploading Phase = "uploading"
	PhaseUploaded  Phase = "uploaded"
)

// File is an accepted candidate.
type File struct {
	Name         string
	DeclaredType string
	SizeBytes    int64
}

type UploadReceipt struct {
	ID          string
	FileName    string
	SizeBytes   int64
	CompletedAt time.Time
}

type NoticeKind string

const (
	NoticeError   NoticeKind = "error"
	NoticeSuccess NoticeKind = "success"
)

// Notice is the user-facing message raised by the last rejection or
// completed upload.
type Notice struct {
	Kind        NoticeKind
	Title       string
	Description string
}

// State is an immutable snapshot of the controller. File is set in every
// phase but Empty; Receipt only in Uploaded.
type State struct {
	Phase   Phase
	File    *File
	Receipt *UploadReceipt
	Notice  *Notice
	Version uint64
}
