package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateInviteQR generates a QR code that encodes a workspace invitation
	GenerateInviteQR(workspaceID uuid.UUID) ([]byte, error)

	// ParseInviteQR parses QR code data and returns the workspace ID
	ParseInviteQR(qrData string) (uuid.UUID, error)
}
