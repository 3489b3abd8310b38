package storage

import "context"

// URLPrefix is the public path resumes are served under, for both backends.
const URLPrefix = "/uploads/resumes/"

// ResumeStore persists resume blobs under caller-chosen names and hands
// back the public URL path. Remove is used only to unwind a failed
// submission; deleting an application never removes its blob.
type ResumeStore interface {
	Save(ctx context.Context, name, contentType string, data []byte) (string, error)
	Remove(ctx context.Context, name string) error
}
