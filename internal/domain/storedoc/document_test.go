package storedoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayload = `{
	"name": "Acme Bakery",
	"rating": 4.5,
	"reviews": {"total": "120"},
	"geometry": {"type": "Point", "coordinates": [51.39, 35.70]},
	"fields": [{"type": "phone", "value": "021"}, {"type": "text", "value": "تهران، ونک"}],
	"seo_details": {"schemas": [{"geo": {"addressLocality": "تهران"}}]},
	"nested": {"deep": {"value": null}}
}`

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantEmpty bool
	}{
		{name: "object", raw: samplePayload},
		{name: "empty input", raw: "", wantEmpty: true},
		{name: "malformed", raw: `{"name": `, wantEmpty: true},
		{name: "array root", raw: `[1,2,3]`, wantEmpty: true},
		{name: "null", raw: `null`, wantEmpty: true},
		{name: "double encoded", raw: `"{\"name\":\"Acme\"}"`},
		{name: "plain string", raw: `"hello"`, wantEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse([]byte(tt.raw))
			assert.Equal(t, tt.wantEmpty, doc.IsEmpty())
		})
	}
}

func TestDocument_Accessors(t *testing.T) {
	doc := Parse([]byte(samplePayload))
	require.False(t, doc.IsEmpty())

	name, ok := doc.String("name")
	assert.True(t, ok)
	assert.Equal(t, "Acme Bakery", name)

	rating, ok := doc.Number("rating")
	assert.True(t, ok)
	assert.InDelta(t, 4.5, rating, 1e-9)

	total, ok := doc.Number("reviews", "total")
	assert.True(t, ok)
	assert.InDelta(t, 120.0, total, 1e-9)

	_, ok = doc.Number("reviews")
	assert.False(t, ok, "objects are not numbers")

	_, ok = doc.String("rating")
	assert.False(t, ok, "numbers are not strings")

	lng, ok := doc.Number("geometry", "coordinates", "0")
	assert.True(t, ok)
	assert.InDelta(t, 51.39, lng, 1e-9)

	_, ok = doc.Number("geometry", "coordinates", "5")
	assert.False(t, ok)

	city, ok := doc.String("seo_details", "schemas", "0", "geo", "addressLocality")
	assert.True(t, ok)
	assert.Equal(t, "تهران", city)

	assert.False(t, doc.Has("nested", "deep", "value"))
	assert.True(t, doc.Has("nested", "deep"))

	fields, ok := doc.List("fields")
	require.True(t, ok)
	second, ok := Index(fields, 1)
	require.True(t, ok)
	value, _ := second.String("value")
	assert.Equal(t, "تهران، ونک", value)

	_, ok = Index(fields, 2)
	assert.False(t, ok)
}

func TestDocument_ZeroValue(t *testing.T) {
	var doc Document

	_, ok := doc.String("name")
	assert.False(t, ok)
	_, ok = doc.Document("seo_details")
	assert.False(t, ok)
	_, ok = doc.List("fields")
	assert.False(t, ok)

	out, err := doc.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   float64
		wantOK bool
	}{
		{name: "float", in: 3.5, want: 3.5, wantOK: true},
		{name: "numeric string", in: " 35.70 ", want: 35.70, wantOK: true},
		{name: "garbage string", in: "abc", wantOK: false},
		{name: "object", in: map[string]any{"v": 1}, wantOK: false},
		{name: "array", in: []any{1.0}, wantOK: false},
		{name: "bool", in: true, wantOK: false},
		{name: "nil", in: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToNumber(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}
