package entity

import "time"

// KPISummary holds the four headline figures of the dashboard.
type KPISummary struct {
	TotalProviders    int64     `json:"total_providers"`
	TotalReceivers    int64     `json:"total_receivers"`
	AvailableQuantity int64     `json:"available_quantity"`
	ClaimsInWindow    int64     `json:"claims_in_window"`
	From              time.Time `json:"from"`
	To                time.Time `json:"to"`
}
