package service

// QRCodeService renders share links for ads as QR code images.
type QRCodeService interface {
	// GenerateAdQR returns a PNG that encodes the public link of the ad.
	GenerateAdQR(adID int64) ([]byte, error)

	// AdLink returns the URL encoded by GenerateAdQR.
	AdLink(adID int64) string
}
