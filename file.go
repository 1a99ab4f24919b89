package rustenberg

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"sort"

	"github.com/GriffinCanCode/rustenberg/internal/form"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/gabriel-vasile/mimetype"
)

// File is an in-memory attachment.
type File struct {
	// Filename is sent as the part's file name. An empty name is replaced by
	// the form field name ("files" or "documents").
	Filename string
	Content  []byte
	// MediaType is sniffed from Content when empty.
	MediaType string
}

// NewFile returns a file attachment
func NewFile(filename string, content []byte, mediaType string) File {
	return File{Filename: filename, Content: content, MediaType: mediaType}
}

// NewFileFromPath reads the file at path. The attachment is named after the
// base name, extension included.
func NewFileFromPath(path string) (File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read attachment: %w", err)
	}
	return File{
		Filename:  filepath.Base(path),
		Content:   content,
		MediaType: mediaTypeOf(path, content),
	}, nil
}

// NewFilesFromGlob reads every regular file matching pattern, which may use
// "**" to cross directories. Files are returned sorted by path, so
// "chapters/*.pdf" merges in name order. No match yields an empty slice.
func NewFilesFromGlob(pattern string) ([]File, error) {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	sort.Strings(matches)

	files := make([]File, 0, len(matches))
	for _, path := range matches {
		f, err := NewFileFromPath(path)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// ContentType returns MediaType, or the sniffed type of Content.
func (f File) ContentType() string {
	if f.MediaType != "" {
		return f.MediaType
	}
	return mimetype.Detect(f.Content).String()
}

// mediaTypeOf prefers the extension, which tells HTML from CSS and scripts
// where sniffing sees only text.
func mediaTypeOf(path string, content []byte) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}
	return mimetype.Detect(content).String()
}

func addFiles(body *form.Body, name string, files []File) {
	for _, f := range files {
		body.AddFile(name, f.Filename, f.ContentType(), f.Content)
	}
}
