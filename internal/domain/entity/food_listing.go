package entity

import "time"

// FoodListing is a donation offered by a provider.
// Quantity is a static attribute of the listing; claims never decrement it.
type FoodListing struct {
	ID           int64        `json:"food_id"`
	FoodName     string       `json:"food_name"`
	Quantity     int          `json:"quantity"`
	ExpiryDate   time.Time    `json:"expiry_date"`
	ProviderID   int64        `json:"provider_id"`
	ProviderType ProviderType `json:"provider_type"`
	Location     string       `json:"location"`
	FoodType     FoodType     `json:"food_type"`
	MealType     MealType     `json:"meal_type"`
}

// IsWasted reports whether the listing counts as wasted on the given day.
// A listing is wasted when its expiry date is strictly before today and it either has
// no completed claim or its earliest completed claim happened after the expiry date.
// The expiry date is compared as midnight, matching the store's date/timestamp comparison.
// A listing without an expiry date is never wasted.
func (l *FoodListing) IsWasted(firstCompletedAt *time.Time, today time.Time) bool {
	if l.ExpiryDate.IsZero() {
		return false
	}

	expiry := DateOf(l.ExpiryDate)
	if !expiry.Before(DateOf(today)) {
		return false
	}

	if firstCompletedAt == nil {
		return true
	}

	return wallClock(*firstCompletedAt).After(expiry)
}

// WastageStatus is the wastage classification of a single listing.
type WastageStatus struct {
	FoodID           int64      `json:"food_id"`
	ExpiryDate       time.Time  `json:"expiry_date"`
	FirstCompletedAt *time.Time `json:"first_completed_at"`
	EvaluatedOn      time.Time  `json:"evaluated_on"`
	Wasted           bool       `json:"wasted"`
	QuantityWasted   int        `json:"quantity_wasted"`
}

// DateOf returns the calendar date of t as midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// wallClock re-labels t's wall clock reading as UTC; timestamps are stored without zone.
func wallClock(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
