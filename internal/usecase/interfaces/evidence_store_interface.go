package interfaces

import "context"

// IEvidenceStore checks the external OTDR evidence storage.
type IEvidenceStore interface {
	HasRequiredFiles(ctx context.Context, ordenID int64) (bool, error)
}
