package qrcode

import (
	"testing"

	"storeradar/config"

	goqrcode "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(size int, level string) *qrcodeService {
	return NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: size, ErrorCorrectionLevel: level}}).(*qrcodeService)
}

func TestNewQRCodeService_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  goqrcode.RecoveryLevel
	}{
		{"L", goqrcode.Low},
		{"M", goqrcode.Medium},
		{"q", goqrcode.High},
		{"H", goqrcode.Highest},
		{"invalid", goqrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, newService(256, tt.level).errorCorrectionLevel)
		})
	}
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	svc := NewQRCodeService(nil).(*qrcodeService)
	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, goqrcode.Medium, svc.errorCorrectionLevel)
}

func TestQRCodeService_GenerateStoreQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		pngBytes, err := newService(size, "M").GenerateStoreQR("store_1700000000000_abcdefghijkl")
		require.NoError(t, err)
		require.Greater(t, len(pngBytes), 4)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, pngBytes[:4])
	}

	_, err := newService(256, "M").GenerateStoreQR("")
	assert.Error(t, err)
}

func TestQRCodeService_ParseStoreQR(t *testing.T) {
	svc := newService(256, "M")

	tests := []struct {
		name    string
		data    string
		want    string
		wantErr bool
	}{
		{name: "json payload", data: `{"store_token":"store_1_abc","type":"store"}`, want: "store_1_abc"},
		{name: "bare token", data: " store_1_abc ", want: "store_1_abc"},
		{name: "wrong type", data: `{"store_token":"store_1_abc","type":"subscription"}`, wantErr: true},
		{name: "missing token", data: `{"type":"store"}`, wantErr: true},
		{name: "garbage", data: "not-a-qr", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ParseStoreQR(tt.data)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
