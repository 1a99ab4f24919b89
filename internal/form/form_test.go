package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fields(t *testing.T, b *Body) [][2]string {
	t.Helper()
	out := [][2]string{}
	for _, p := range b.Parts() {
		require.False(t, p.IsFile(), "unexpected file part %q", p.Name)
		out = append(out, [2]string{p.Name, string(p.Content)})
	}
	return out
}

func TestEncodeSkipsAbsentValues(t *testing.T) {
	one := 1
	data := &struct {
		A *int         `form:"a"`
		B *string      `form:"b"`
		C func()       `form:"c"`
		D string       `form:"d"`
		E any          `form:"e"`
		F []string     `form:"f"`
		G map[int]bool `form:"g"`
		H chan int     `form:"h"`
	}{
		A: &one,
		C: func() {},
		D: "x",
		H: make(chan int),
	}

	body, err := Encode(data)
	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"a", "1"}, {"d", "x"}}, fields(t, body))
}

func TestEncodeIgnoreList(t *testing.T) {
	data := struct {
		URL   string   `form:"url"`
		Files []string `form:"files"`
		Scale float64  `form:"scale"`
	}{
		URL:   "http://example.com",
		Files: []string{"index.html"},
		Scale: 1.5,
	}

	body, err := Encode(data, "files", "scale")
	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"url", "http://example.com"}}, fields(t, body))
}

func TestEncodeFieldOrderAndNames(t *testing.T) {
	data := struct {
		Zeta   string `form:"zeta"`
		Alpha  bool   `form:"Alpha"`
		Middle float64
		hidden string
		Skip   string `form:"-"`
	}{
		Zeta:   "z",
		Alpha:  true,
		Middle: 42.123456789,
		hidden: "never",
		Skip:   "never",
	}

	body, err := Encode(&data)
	require.NoError(t, err)
	assert.Equal(t, [][2]string{
		{"zeta", "z"},
		{"Alpha", "true"},
		{"Middle", "42.123456789"},
	}, fields(t, body))
}

func TestEncodeIgnoresTagOptions(t *testing.T) {
	data := &struct {
		One string `form:"one"`
		Two string `form:"two,omitempty"`
		Off *bool  `form:"off"`
	}{
		Off: new(bool),
	}

	body, err := Encode(data)
	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"one", ""}, {"two", ""}, {"off", "false"}}, fields(t, body))
}

type Shared struct {
	Landscape *bool    `form:"landscape"`
	Scale     *float64 `form:"scale"`
}

func TestEncodeFlattensEmbeddedStructs(t *testing.T) {
	yes := true
	scale := 0.0
	data := struct {
		URL string `form:"url"`
		Shared
		Tail uint `form:"tail"`
	}{
		URL:    "http://example.com",
		Shared: Shared{Landscape: &yes, Scale: &scale},
		Tail:   7,
	}

	body, err := Encode(data)
	require.NoError(t, err)
	assert.Equal(t, [][2]string{
		{"url", "http://example.com"},
		{"landscape", "true"},
		{"scale", "0"},
		{"tail", "7"},
	}, fields(t, body))
}

func TestEncodeFormatting(t *testing.T) {
	big := 1e21
	data := struct {
		Big      *float64      `form:"big"`
		Small    float32       `form:"small"`
		Negative int64         `form:"negative"`
		Duration time.Duration `form:"duration"`
		Nested   []int         `form:"nested"`
	}{
		Big:      &big,
		Small:    0.25,
		Negative: -3,
		Duration: 1500 * time.Millisecond,
		Nested:   []int{1, 2},
	}

	body, err := Encode(data)
	require.NoError(t, err)
	assert.Equal(t, [][2]string{
		{"big", "1000000000000000000000"},
		{"small", "0.25"},
		{"negative", "-3"},
		{"duration", "1.5s"},
		{"nested", "[1 2]"},
	}, fields(t, body))
}

func TestEncodeNilAndUnsupported(t *testing.T) {
	t.Run("nil input yields empty body", func(t *testing.T) {
		body, err := Encode(nil)
		require.NoError(t, err)
		assert.Empty(t, body.Parts())
	})

	t.Run("nil struct pointer yields empty body", func(t *testing.T) {
		var data *Shared
		body, err := Encode(data)
		require.NoError(t, err)
		assert.Empty(t, body.Parts())
	})

	t.Run("non struct is rejected", func(t *testing.T) {
		_, err := Encode(map[string]string{"a": "b"})
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})
}

func TestBodyFilesKeepAppendOrder(t *testing.T) {
	body, err := Encode(struct {
		Landscape bool `form:"landscape"`
	}{Landscape: true})
	require.NoError(t, err)

	body.AddFile("documents", "a.pdf", "application/pdf", []byte("A"))
	body.AddFile("documents", "b.pdf", "application/pdf", []byte("B"))
	body.AddFile("documents", "c.pdf", "application/pdf", []byte("C"))

	parts := body.Parts()
	require.Len(t, parts, 4)
	assert.False(t, parts[0].IsFile())

	var names []string
	for _, p := range parts[1:] {
		assert.True(t, p.IsFile())
		assert.Equal(t, "documents", p.Name)
		assert.Equal(t, "application/pdf", p.ContentType)
		names = append(names, p.FileName+"="+string(p.Content))
	}
	assert.Equal(t, []string{"a.pdf=A", "b.pdf=B", "c.pdf=C"}, names)
}

func TestAddFileDefaultsFileName(t *testing.T) {
	body := NewBody()
	body.AddFile("documents", "", "application/pdf", []byte("%PDF"))

	parts := body.Parts()
	require.Len(t, parts, 1)
	assert.True(t, parts[0].IsFile())
	assert.Equal(t, "documents", parts[0].FileName)
}

func TestPartsReturnsCopy(t *testing.T) {
	body := NewBody()
	body.AddField("a", "1")

	parts := body.Parts()
	parts[0].Name = "changed"

	assert.Equal(t, "a", body.Parts()[0].Name)
}
