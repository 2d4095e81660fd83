package catalog

import (
	"testing"

	"storeradar/internal/domain/constants"
	"storeradar/internal/domain/storedoc"

	"github.com/stretchr/testify/assert"
)

func TestResolveNeighborhood(t *testing.T) {
	seo := func(raw string) storedoc.Document { return storedoc.Parse([]byte(raw)) }

	tests := []struct {
		name     string
		address  string
		city     string
		metadata storedoc.Document
		want     string
	}{
		{
			name:    "address second segment",
			address: "ایران، ولنجک، تهران",
			city:    "تهران",
			want:    "ولنجک",
		},
		{
			name: "address absent falls back to city",
			city: "تهران",
			want: "تهران",
		},
		{
			name: "everything absent",
			want: constants.UnknownLabel,
		},
		{
			name:     "metadata locality with prefix",
			address:  "ایران، ولنجک، تهران",
			city:     "تهران",
			metadata: seo(`{"schemas":[{"address":{"addressLocality":"محله تجریش"}}]}`),
			want:     "تجریش",
		},
		{
			name:     "metadata locality equal to city is skipped",
			address:  "ایران، ونک، تهران",
			city:     "تهران",
			metadata: seo(`{"schemas":[{"address":{"addressLocality":"تهران"}}]}`),
			want:     "ونک",
		},
		{
			name:     "empty schema list",
			address:  "تهران، خیابان ولیعصر",
			city:     "تهران",
			metadata: seo(`{"schemas":[]}`),
			want:     "ولیعصر",
		},
		{
			name:    "unavailable sentinel",
			address: constants.AddressUnavailable,
			city:    "شیراز",
			want:    "شیراز",
		},
		{
			name:    "single segment address",
			address: "ولنجک",
			city:    "",
			want:    constants.UnknownLabel,
		},
		{
			name:    "segment equal to city",
			address: "ایران، تهران",
			city:    "تهران",
			want:    "تهران",
		},
		{
			name:    "segment made only of locality words",
			address: "ایران، کوچه",
			city:    "کرج",
			want:    "کرج",
		},
		{
			name:     "malformed metadata",
			address:  "ایران، ولنجک",
			city:     "تهران",
			metadata: seo(`{"schemas":`),
			want:     "ولنجک",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveNeighborhood(tt.address, tt.city, tt.metadata)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got)
		})
	}
}

func TestCityFromAddress(t *testing.T) {
	assert.Equal(t, "تهران", CityFromAddress("ایران، ولنجک، تهران"))
	assert.Equal(t, "ولنجک", CityFromAddress(" ولنجک "))
	assert.Equal(t, "", CityFromAddress(""))
}
