package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Date string  `validate:"required,isodate"`
	Time *string `validate:"omitempty,clock"`
	Lat  float64 `validate:"latitude"`
}

func TestCustomValidator(t *testing.T) {
	v := New()
	clock := "09:45"
	badClock := "24:10"

	tests := []struct {
		name    string
		in      sample
		wantErr bool
	}{
		{name: "valid", in: sample{Date: "2024-05-01", Time: &clock, Lat: 35.7}},
		{name: "no time", in: sample{Date: "2024-05-01"}},
		{name: "bad date", in: sample{Date: "01/05/2024"}, wantErr: true},
		{name: "missing date", in: sample{}, wantErr: true},
		{name: "bad clock", in: sample{Date: "2024-05-01", Time: &badClock}, wantErr: true},
		{name: "bad latitude", in: sample{Date: "2024-05-01", Lat: 91}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
