package entity

import "time"

// Claim is a receiver's claim against a food listing.
type Claim struct {
	ID         int64       `json:"claim_id"`
	FoodID     int64       `json:"food_id"`
	ReceiverID int64       `json:"receiver_id"`
	Status     ClaimStatus `json:"status"`
	Timestamp  time.Time   `json:"timestamp"`
}
