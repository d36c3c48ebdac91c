package service

import (
	"coffissimo/internal/domain/entity"
)

// PickupPass is the payload encoded into an order's pickup QR code.
type PickupPass struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	BranchID    string `json:"branch_id"`
	Type        string `json:"type"`
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePickupQR generates a PNG QR code the customer shows at the counter
	GeneratePickupQR(order *entity.Order) ([]byte, error)

	// ParsePickupQR parses QR code data back into the pickup pass
	ParsePickupQR(qrData string) (*PickupPass, error)
}
