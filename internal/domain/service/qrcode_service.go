package service

// PixQRService renders a PIX copia-e-cola payload as a scannable QR image.
type PixQRService interface {
	// RenderPixQR returns a PNG image encoding the given payload.
	RenderPixQR(payload string) ([]byte, error)
}
