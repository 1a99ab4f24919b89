package rustenberg

import (
	"context"
	"io"

	"github.com/GriffinCanCode/rustenberg/internal/form"
)

const (
	fieldFiles = "files"

	opConvertURL  = "url"
	opConvertHTML = "html"
)

// ConvertURLRequest renders the page at URL.
type ConvertURLRequest struct {
	URL string `form:"url"`
	PDFOptions
}

// ConvertHTMLRequest renders an HTML bundle. The service loads the file
// named index.html; other files are assets it may reference.
type ConvertHTMLRequest struct {
	Files []File `form:"files"`
	PDFOptions
}

// ConversionService converts web content to PDF
type ConversionService struct {
	resource
}

// ConvertURL renders a URL and returns the whole document.
func (s *ConversionService) ConvertURL(ctx context.Context, req *ConvertURLRequest) ([]byte, error) {
	rc, err := s.StreamConvertURL(ctx, req)
	return s.collect(ctx, rc, err)
}

// StreamConvertURL renders a URL and returns the response body unread. The
// caller must close it.
func (s *ConversionService) StreamConvertURL(ctx context.Context, req *ConvertURLRequest) (io.ReadCloser, error) {
	body, err := form.Encode(req)
	if err != nil {
		return nil, err
	}
	return s.post(ctx, opConvertURL, body)
}

// ConvertHTML renders an HTML bundle and returns the whole document.
func (s *ConversionService) ConvertHTML(ctx context.Context, req *ConvertHTMLRequest) ([]byte, error) {
	rc, err := s.StreamConvertHTML(ctx, req)
	return s.collect(ctx, rc, err)
}

// StreamConvertHTML renders an HTML bundle and returns the response body
// unread. The caller must close it.
func (s *ConversionService) StreamConvertHTML(ctx context.Context, req *ConvertHTMLRequest) (io.ReadCloser, error) {
	body, err := form.Encode(req, fieldFiles)
	if err != nil {
		return nil, err
	}
	if req != nil {
		addFiles(body, fieldFiles, req.Files)
	}
	return s.post(ctx, opConvertHTML, body)
}
