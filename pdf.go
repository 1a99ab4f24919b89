package rustenberg

// PDFOptions control how a page is printed. Nil fields are not sent and the
// service default applies.
type PDFOptions struct {
	Landscape           *bool    `form:"landscape"`
	DisplayHeaderFooter *bool    `form:"displayHeaderFooter"`
	PrintBackground     *bool    `form:"printBackground"`
	Scale               *float64 `form:"scale"`

	// Paper size and margins in inches.
	PaperWidth   *float64 `form:"paperWidth"`
	PaperHeight  *float64 `form:"paperHeight"`
	MarginTop    *float64 `form:"marginTop"`
	MarginBottom *float64 `form:"marginBottom"`
	MarginLeft   *float64 `form:"marginLeft"`
	MarginRight  *float64 `form:"marginRight"`

	// PageRange selects pages to print, e.g. "1-5, 8".
	PageRange      *string `form:"pageRange"`
	HeaderTemplate *string `form:"headerTemplate"`
	FooterTemplate *string `form:"footerTemplate"`

	PreferCSSPageSize *bool `form:"preferCssPageSize"`

	// Page load wait bounds in milliseconds, enforced by the service.
	MinPageLoadTimeMs *uint `form:"minPageLoadTimeMs"`
	MaxPageLoadTimeMs *uint `form:"maxPageLoadTimeMs"`
}

// Ptr returns a pointer to v, for filling optional fields inline.
func Ptr[T any](v T) *T {
	return &v
}
