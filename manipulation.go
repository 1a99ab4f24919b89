package rustenberg

import (
	"context"
	"io"

	"github.com/GriffinCanCode/rustenberg/internal/form"
)

const (
	fieldDocuments = "documents"

	opMerge = "merge"
)

// MergeRequest lists the PDFs to merge, in output order.
type MergeRequest struct {
	Documents []File
}

// ManipulationService edits existing PDF documents
type ManipulationService struct {
	resource
}

// Merge concatenates documents and returns the merged PDF.
func (s *ManipulationService) Merge(ctx context.Context, req *MergeRequest) ([]byte, error) {
	rc, err := s.StreamMerge(ctx, req)
	return s.collect(ctx, rc, err)
}

// StreamMerge concatenates documents and returns the response body unread.
// The caller must close it.
func (s *ManipulationService) StreamMerge(ctx context.Context, req *MergeRequest) (io.ReadCloser, error) {
	body := form.NewBody()
	if req != nil {
		addFiles(body, fieldDocuments, req.Documents)
	}
	return s.post(ctx, opMerge, body)
}
