// Package rustenberg is a client for the Rustenberg document conversion
// service.
//
// The service renders web pages and HTML bundles to PDF and merges PDF
// documents. The client builds the multipart requests, sends them and hands
// back the rendered document either fully buffered or as a live stream.
//
// Operations are grouped by resource:
//   - Conversions: URL to PDF, HTML to PDF
//   - Manipulations: PDF merge
//
// Each operation comes in two variants. The buffered variant (ConvertURL,
// ConvertHTML, Merge) returns the whole document as a byte slice. The
// streamed variant (StreamConvertURL, StreamConvertHTML, StreamMerge) returns
// the response body as soon as headers arrive; the caller must close it.
//
// Responses with a status of 400 or above are returned as *HTTPError. The
// client never retries; cancel the context to abort a call.
//
// Example Usage:
//
//	client, err := rustenberg.NewClient(rustenberg.Options{
//	    ServiceURL: "http://localhost:8000",
//	})
//	if err != nil {
//	    return err
//	}
//
//	pdf, err := client.Conversions().ConvertURL(ctx, &rustenberg.ConvertURLRequest{
//	    URL: "https://example.com",
//	    PDFOptions: rustenberg.PDFOptions{
//	        Landscape: rustenberg.Ptr(true),
//	    },
//	})
package rustenberg
