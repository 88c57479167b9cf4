// Package qrcode renders PIX charges as scannable QR images.
package qrcode

import (
	"sabor/internal/domain/service"
	"sabor/internal/errors"

	"github.com/skip2/go-qrcode"
)

type pixQRService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewPixQRService creates a PIX QR renderer with the given image size in
// pixels and error correction level (L, M, Q or H).
func NewPixQRService(size int, errorCorrectionLevel string) service.PixQRService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &pixQRService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// RenderPixQR encodes the copia-e-cola payload as a PNG QR image. The payload
// goes in verbatim: banking apps expect the raw EMV string.
func (s *pixQRService) RenderPixQR(payload string) ([]byte, error) {
	if payload == "" {
		return nil, errors.New("empty pix payload")
	}

	code, err := qrcode.New(payload, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "create QR code")
	}

	pngBytes, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "render PNG")
	}

	return pngBytes, nil
}
