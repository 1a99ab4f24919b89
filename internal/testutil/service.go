package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// Service routes
const (
	RouteInfo          = "/"
	RouteConvertURL    = "/conversion/url"
	RouteConvertHTML   = "/conversion/html"
	RouteMergeDocument = "/manipulation/merge"
)

// Part is one received multipart section
type Part struct {
	Name        string
	FileName    string
	ContentType string
	Content     []byte
}

// Request is a recorded request
type Request struct {
	Method string
	Path   string
	Header http.Header
	Parts  []Part
}

// Field returns the content of the first part named name.
func (r Request) Field(name string) (string, bool) {
	for _, p := range r.Parts {
		if p.Name == name {
			return string(p.Content), true
		}
	}
	return "", false
}

// Names returns the part names in received order
func (r Request) Names() []string {
	names := make([]string, 0, len(r.Parts))
	for _, p := range r.Parts {
		names = append(names, p.Name)
	}
	return names
}

// Response is a canned reply for one route
type Response struct {
	Status      int
	ContentType string
	Body        []byte
	// Delay holds the reply back; the request context still aborts it.
	Delay time.Duration
}

// Service is an in-process stand-in for the conversion service.
type Service struct {
	Server  *httptest.Server
	Version string

	mu        sync.Mutex
	requests  []Request
	responses map[string]Response
}

// NewService starts a fake service with routes at the server root.
func NewService(t *testing.T) *Service {
	return NewServiceAt(t, "")
}

// NewServiceAt starts a fake service with routes under prefix, for clients
// configured with a base path such as "http://host/api".
func NewServiceAt(t *testing.T, prefix string) *Service {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Service{
		Version:   "0.1.0-test",
		responses: make(map[string]Response),
	}

	router := gin.New()
	group := router.Group(strings.TrimSuffix(prefix, "/"))
	group.GET("", s.handle(RouteInfo))
	group.POST(RouteConvertURL, s.handle(RouteConvertURL))
	group.POST(RouteConvertHTML, s.handle(RouteConvertHTML))
	group.POST(RouteMergeDocument, s.handle(RouteMergeDocument))
	router.NoRoute(func(c *gin.Context) {
		s.record(c)
		c.String(http.StatusNotFound, "no route %s", c.Request.URL.Path)
	})

	s.Server = httptest.NewServer(router)
	t.Cleanup(s.Server.Close)
	return s
}

// URL returns the service base URL
func (s *Service) URL() string {
	return s.Server.URL
}

// Respond overrides the reply for route.
func (s *Service) Respond(route string, resp Response) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[route] = resp
}

// Requests returns all recorded requests in arrival order
func (s *Service) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent request.
func (s *Service) LastRequest(t *testing.T) Request {
	t.Helper()
	requests := s.Requests()
	if len(requests) == 0 {
		t.Fatal("no request recorded")
	}
	return requests[len(requests)-1]
}

// PDF returns the default document body served for route
func PDF(route string) []byte {
	return []byte("%PDF-1.7\n% " + route + "\n%%EOF\n")
}

func (s *Service) handle(route string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.record(c); err != nil {
			c.String(http.StatusBadRequest, "bad multipart body: %v", err)
			return
		}

		resp := s.response(route)
		if resp.Delay > 0 {
			select {
			case <-time.After(resp.Delay):
			case <-c.Request.Context().Done():
				return
			}
		}
		c.Data(resp.Status, resp.ContentType, resp.Body)
	}
}

func (s *Service) response(route string) Response {
	s.mu.Lock()
	resp, ok := s.responses[route]
	s.mu.Unlock()
	if ok {
		return resp
	}

	if route == RouteInfo {
		return Response{
			Status:      http.StatusOK,
			ContentType: "application/json",
			Body:        []byte(`{"version":"` + s.Version + `"}`),
		}
	}
	return Response{
		Status:      http.StatusOK,
		ContentType: "application/pdf",
		Body:        PDF(route),
	}
}

func (s *Service) record(c *gin.Context) error {
	req := Request{
		Method: c.Request.Method,
		Path:   c.Request.URL.Path,
		Header: c.Request.Header.Clone(),
	}

	var parseErr error
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		req.Parts, parseErr = readParts(c.Request)
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()
	return parseErr
}

func readParts(r *http.Request) ([]Part, error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return nil, err
	}

	var parts []Part
	for {
		p, err := reader.NextPart()
		if err == io.EOF {
			return parts, nil
		}
		if err != nil {
			return parts, err
		}
		content, err := io.ReadAll(p)
		if err != nil {
			return parts, err
		}
		parts = append(parts, Part{
			Name:        p.FormName(),
			FileName:    p.FileName(),
			ContentType: p.Header.Get("Content-Type"),
			Content:     content,
		})
	}
}
