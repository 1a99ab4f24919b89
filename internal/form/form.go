package form

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// ErrUnsupportedType is returned when Encode is given something other than a
// struct or a pointer to one.
var ErrUnsupportedType = errors.New("form: unsupported type")

const tagName = "form"

// Part is one multipart section. Text fields have an empty FileName.
type Part struct {
	Name        string
	FileName    string
	ContentType string
	Content     []byte
}

// IsFile reports whether the part carries a file attachment
func (p Part) IsFile() bool {
	return p.FileName != ""
}

// Body is an ordered, append-only list of form parts.
type Body struct {
	parts []Part
}

// NewBody returns an empty body
func NewBody() *Body {
	return &Body{}
}

// Encode converts the fields of v into a body with one text part per
// present field, in field declaration order. Fields whose name appears in
// ignore are left out.
func Encode(v any, ignore ...string) (*Body, error) {
	body := NewBody()
	if v == nil {
		return body, nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return body, nil
		}
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}

	body.encodeStruct(rv, ignore)
	return body, nil
}

// AddField appends a text part
func (b *Body) AddField(name, value string) {
	b.parts = append(b.parts, Part{Name: name, Content: []byte(value)})
}

// AddFile appends a file part. The content is referenced, not copied. An
// empty fileName falls back to name so the part still travels as a file.
func (b *Body) AddFile(name, fileName, contentType string, content []byte) {
	if fileName == "" {
		fileName = name
	}
	b.parts = append(b.parts, Part{
		Name:        name,
		FileName:    fileName,
		ContentType: contentType,
		Content:     content,
	})
}

// Parts returns a copy of the parts in append order.
func (b *Body) Parts() []Part {
	return slices.Clone(b.parts)
}

func (b *Body) encodeStruct(rv reflect.Value, ignore []string) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		value := rv.Field(i)

		name := parseTag(field.Tag.Get(tagName))
		if name == "-" {
			continue
		}

		if field.Anonymous && name == "" {
			if inner, ok := embeddedStruct(value); ok {
				b.encodeStruct(inner, ignore)
				continue
			}
		}

		if !field.IsExported() {
			continue
		}

		if name == "" {
			name = field.Name
		}

		if slices.Contains(ignore, name) || absent(value) {
			continue
		}

		b.AddField(name, formatValue(value))
	}
}

func parseTag(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	return name
}

func embeddedStruct(v reflect.Value) (reflect.Value, bool) {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() || !v.CanInterface() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	return v, v.Kind() == reflect.Struct
}

// absent reports whether v has no value worth sending.
func absent(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

func formatValue(v reflect.Value) string {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}

	if v.CanInterface() {
		if s, ok := v.Interface().(fmt.Stringer); ok {
			return s.String()
		}
	}

	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	default:
		// Composite values are passed through unvalidated.
		return fmt.Sprint(v.Interface())
	}
}
