package entity

// Receiver is an individual or organisation that claims food.
type Receiver struct {
	ID      int64        `json:"receiver_id"`
	Name    string       `json:"name"`
	Type    ReceiverType `json:"type"`
	Contact string       `json:"contact"`
	City    string       `json:"city"`
}
