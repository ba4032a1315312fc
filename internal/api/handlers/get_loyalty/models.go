package get_loyalty

import (
	"time"

	"github.com/m04kA/TableBookingService/internal/service/loyalty"
)

// LoyaltyResponse HTTP response model
type LoyaltyResponse struct {
	CustomerID     int64                 `json:"customerId"`
	PointsBalance  int                   `json:"pointsBalance"`
	Tier           string                `json:"tier"`
	TotalReferrals int                   `json:"totalReferrals"`
	Transactions   []TransactionResponse `json:"transactions"`
}

type TransactionResponse struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Points    int       `json:"points"`
	Reason    string    `json:"reason"`
	BookingID *int64    `json:"bookingId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromServiceStatus конвертирует состояние счёта в HTTP response
func FromServiceStatus(status *loyalty.Status) *LoyaltyResponse {
	resp := &LoyaltyResponse{
		CustomerID:     status.Account.CustomerID,
		PointsBalance:  status.Account.PointsBalance,
		Tier:           string(status.Account.Tier),
		TotalReferrals: status.Account.TotalReferrals,
		Transactions:   make([]TransactionResponse, 0, len(status.Transactions)),
	}

	for _, tx := range status.Transactions {
		resp.Transactions = append(resp.Transactions, TransactionResponse{
			ID:        tx.ID,
			Type:      string(tx.Type),
			Points:    tx.Points,
			Reason:    tx.Reason,
			BookingID: tx.BookingID,
			CreatedAt: tx.CreatedAt,
		})
	}

	return resp
}
