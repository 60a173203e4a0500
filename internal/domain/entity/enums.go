// Package entity contains the core business objects of the project.
package entity

// ProviderType is the kind of organisation donating food.
type ProviderType string

const (
	ProviderTypeRestaurant      ProviderType = "Restaurant"
	ProviderTypeSupermarket     ProviderType = "Supermarket"
	ProviderTypeGroceryStore    ProviderType = "Grocery Store"
	ProviderTypeCateringService ProviderType = "Catering Service"
)

// String returns the string representation of the ProviderType.
func (t ProviderType) String() string {
	return string(t)
}

// IsKnown reports whether t is one of the offered choices.
// Unknown values are still accepted by the CRUD layer.
func (t ProviderType) IsKnown() bool {
	switch t {
	case ProviderTypeRestaurant, ProviderTypeSupermarket, ProviderTypeGroceryStore, ProviderTypeCateringService:
		return true
	default:
		return false
	}
}

// ReceiverType is the kind of party claiming food.
type ReceiverType string

const (
	ReceiverTypeIndividual ReceiverType = "Individual"
	ReceiverTypeNGO        ReceiverType = "NGO"
	ReceiverTypeCharity    ReceiverType = "Charity"
	ReceiverTypeShelter    ReceiverType = "Shelter"
)

// String returns the string representation of the ReceiverType.
func (t ReceiverType) String() string {
	return string(t)
}

// IsKnown reports whether t is one of the offered choices.
func (t ReceiverType) IsKnown() bool {
	switch t {
	case ReceiverTypeIndividual, ReceiverTypeNGO, ReceiverTypeCharity, ReceiverTypeShelter:
		return true
	default:
		return false
	}
}

// FoodType is a free-form dietary category; these are the suggested values.
type FoodType string

const (
	FoodTypeVegetarian    FoodType = "Vegetarian"
	FoodTypeNonVegetarian FoodType = "Non-Vegetarian"
	FoodTypeVegan         FoodType = "Vegan"
)

// MealType is the meal a listing is intended for.
type MealType string

const (
	MealTypeBreakfast MealType = "Breakfast"
	MealTypeLunch     MealType = "Lunch"
	MealTypeDinner    MealType = "Dinner"
	MealTypeSnacks    MealType = "Snacks"
)

// String returns the string representation of the MealType.
func (t MealType) String() string {
	return string(t)
}

// IsKnown reports whether t is one of the offered choices.
func (t MealType) IsKnown() bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnacks:
		return true
	default:
		return false
	}
}

// ClaimStatus is the current state of a claim. History is not retained.
type ClaimStatus string

const (
	ClaimStatusPending   ClaimStatus = "Pending"
	ClaimStatusCompleted ClaimStatus = "Completed"
	ClaimStatusCancelled ClaimStatus = "Cancelled"
)

// String returns the string representation of the ClaimStatus.
func (s ClaimStatus) String() string {
	return string(s)
}

// IsKnown reports whether s is one of the offered choices.
func (s ClaimStatus) IsKnown() bool {
	switch s {
	case ClaimStatusPending, ClaimStatusCompleted, ClaimStatusCancelled:
		return true
	default:
		return false
	}
}

// Choices lists the constrained values offered to the presentation layer for each enum field.
type Choices struct {
	ProviderTypes []ProviderType `json:"provider_types"`
	ReceiverTypes []ReceiverType `json:"receiver_types"`
	FoodTypes     []FoodType     `json:"food_types"`
	MealTypes     []MealType     `json:"meal_types"`
	ClaimStatuses []ClaimStatus  `json:"claim_statuses"`
}

// DefaultChoices returns the built-in choice lists.
func DefaultChoices() Choices {
	return Choices{
		ProviderTypes: []ProviderType{ProviderTypeRestaurant, ProviderTypeSupermarket, ProviderTypeGroceryStore, ProviderTypeCateringService},
		ReceiverTypes: []ReceiverType{ReceiverTypeIndividual, ReceiverTypeNGO, ReceiverTypeCharity, ReceiverTypeShelter},
		FoodTypes:     []FoodType{FoodTypeVegetarian, FoodTypeNonVegetarian, FoodTypeVegan},
		MealTypes:     []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnacks},
		ClaimStatuses: []ClaimStatus{ClaimStatusPending, ClaimStatusCompleted, ClaimStatusCancelled},
	}
}
