package response

import "github.com/bolaohub/bolao-api/internal/domain"

type ChargeResponse struct {
	Payment   domain.Payment `json:"payment"`
	QRPayload string         `json:"qr_payload"`
	QRImage   string         `json:"qr_image"`
}
