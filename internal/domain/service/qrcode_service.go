package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateStoreQR renders a PNG QR code that encodes the store token.
	GenerateStoreQR(storeToken string) ([]byte, error)

	// ParseStoreQR extracts the store token from scanned QR content.
	ParseStoreQR(qrData string) (string, error)
}
