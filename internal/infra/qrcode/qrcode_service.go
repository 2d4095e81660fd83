// Package qrcode renders and reads the QR codes printed on store plates.
package qrcode

import (
	"encoding/json"
	"strings"

	"storeradar/config"
	"storeradar/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize  = 256
	qrTypeStore  = "store"
	tokenPrefix  = "store_"
	maxTokenSize = 255
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// StoreQRData is the payload encoded in a store QR code.
type StoreQRData struct {
	StoreToken string `json:"store_token"`
	Type       string `json:"type"`
}

// NewQRCodeService creates the service from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := defaultSize, ""
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(level),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateStoreQR renders a PNG QR code that encodes the store token.
func (s *qrcodeService) GenerateStoreQR(storeToken string) ([]byte, error) {
	if storeToken == "" {
		return nil, errors.New("store token is required")
	}

	payload, err := json.Marshal(StoreQRData{StoreToken: storeToken, Type: qrTypeStore})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(payload), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseStoreQR extracts the store token from scanned content. Plates printed
// before the JSON payload carry the bare token, which is accepted as well.
func (s *qrcodeService) ParseStoreQR(qrData string) (string, error) {
	qrData = strings.TrimSpace(qrData)

	if strings.HasPrefix(qrData, tokenPrefix) && len(qrData) <= maxTokenSize {
		return qrData, nil
	}

	var data StoreQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}
	if data.Type != qrTypeStore {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.StoreToken == "" {
		return "", errors.New("QR code has no store token")
	}

	return data.StoreToken, nil
}
