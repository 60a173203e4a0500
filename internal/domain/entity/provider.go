package entity

// Provider is a food donor.
type Provider struct {
	ID      int64        `json:"provider_id"`
	Name    string       `json:"name"`
	Type    ProviderType `json:"type"`
	Contact string       `json:"contact"`
	Address string       `json:"address"`
	City    string       `json:"city"`
}

// Contact is a directory row. Address is empty for receivers.
type Contact struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address,omitempty"`
	City    string `json:"city"`
}

// FilterOptions are the distinct values the presentation layer offers as filter choices.
type FilterOptions struct {
	Cities         []string `json:"cities"`
	ProviderTypes  []string `json:"provider_types"`
	FoodTypes      []string `json:"food_types"`
	ReceiverCities []string `json:"receiver_cities"`
	Choices        Choices  `json:"choices"`
}
