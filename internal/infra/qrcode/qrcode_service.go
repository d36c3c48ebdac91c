package qrcode

import (
	"encoding/json"
	"strings"

	"coffissimo/config"
	"coffissimo/internal/domain/entity"
	"coffissimo/internal/domain/service"
	"coffissimo/internal/errors"

	"github.com/skip2/go-qrcode"
)

// PassTypePickup marks a QR payload as an order pickup pass.
const PassTypePickup = "pickup"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance from the qrcode config section
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := 256, "M"
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(level),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
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

// GeneratePickupQR encodes the order's pickup pass as a PNG QR code
func (s *qrcodeService) GeneratePickupQR(order *entity.Order) ([]byte, error) {
	if order == nil || order.ID == "" {
		return nil, errors.New("order is required to generate a pickup QR code")
	}

	pass := service.PickupPass{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		BranchID:    order.BranchID,
		Type:        PassTypePickup,
	}

	payload, err := json.Marshal(pass)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal pickup pass")
	}

	pngBytes, err := qrcode.Encode(string(payload), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup QR code")
	}

	return pngBytes, nil
}

// ParsePickupQR decodes the text scanned from a pickup QR code
func (s *qrcodeService) ParsePickupQR(qrData string) (*service.PickupPass, error) {
	var pass service.PickupPass
	if err := json.Unmarshal([]byte(qrData), &pass); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal pickup pass")
	}

	if pass.Type != PassTypePickup {
		return nil, errors.Errorf("invalid QR code type: %s", pass.Type)
	}
	if pass.OrderID == "" || pass.OrderNumber == "" {
		return nil, errors.New("pickup pass is missing the order reference")
	}

	return &pass, nil
}
