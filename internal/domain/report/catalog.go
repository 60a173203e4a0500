package report

// ProvidersReceiversPerCity counts providers and receivers per provider city. No filter applies.
type ProvidersReceiversPerCity struct{ variant }

func (ProvidersReceiversPerCity) Describe() Descriptor {
	return Descriptor{
		Slug:   "providers-receivers-per-city",
		Title:  "Providers & Receivers per City",
		Inputs: []Input{},
		Chart:  ChartBar,
		X:      "city",
		Y:      "provider_count",
	}
}

func (r ProvidersReceiversPerCity) Accept(v Visitor) (Query, error) {
	return v.ProvidersReceiversPerCity(r)
}

// QuantityByProviderType sums listed quantity per provider type.
type QuantityByProviderType struct{ variant }

func (QuantityByProviderType) Describe() Descriptor {
	return Descriptor{
		Slug:   "quantity-by-provider-type",
		Title:  "Provider Type Contributing Most Food",
		Inputs: []Input{InputScope},
		Chart:  ChartBar,
		X:      "provider_type",
		Y:      "total_quantity",
	}
}

func (r QuantityByProviderType) Accept(v Visitor) (Query, error) {
	return v.QuantityByProviderType(r)
}

// TopClaimingReceivers sums the quantity of claimed listings per receiver.
type TopClaimingReceivers struct {
	variant
	Limit int
}

func (r TopClaimingReceivers) Describe() Descriptor {
	return Descriptor{
		Slug:   "top-claiming-receivers",
		Title:  "Receivers Who Claimed the Most Food",
		Inputs: []Input{InputWindow, InputScope},
		Chart:  ChartBar,
		X:      "name",
		Y:      "total_claimed",
		Limit:  r.Limit,
	}
}

func (r TopClaimingReceivers) Accept(v Visitor) (Query, error) {
	return v.TopClaimingReceivers(r)
}

// TotalAvailableQuantity is the scalar sum of listed quantity in scope.
type TotalAvailableQuantity struct{ variant }

func (TotalAvailableQuantity) Describe() Descriptor {
	return Descriptor{
		Slug:   "total-available-quantity",
		Title:  "Total Quantity of Food Available",
		Inputs: []Input{InputScope},
		Chart:  ChartNone,
	}
}

func (r TotalAvailableQuantity) Accept(v Visitor) (Query, error) {
	return v.TotalAvailableQuantity(r)
}

// ListingsByCity counts listings per location.
type ListingsByCity struct{ variant }

func (ListingsByCity) Describe() Descriptor {
	return Descriptor{
		Slug:   "listings-by-city",
		Title:  "City with Highest Number of Food Listings",
		Inputs: []Input{InputScope},
		Chart:  ChartBar,
		X:      "location",
		Y:      "listing_count",
	}
}

func (r ListingsByCity) Accept(v Visitor) (Query, error) {
	return v.ListingsByCity(r)
}

// ListingsByFoodType counts listings per food type.
type ListingsByFoodType struct{ variant }

func (ListingsByFoodType) Describe() Descriptor {
	return Descriptor{
		Slug:   "listings-by-food-type",
		Title:  "Most Commonly Available Food Types",
		Inputs: []Input{InputScope},
		Chart:  ChartBar,
		X:      "food_type",
		Y:      "count_available",
	}
}

func (r ListingsByFoodType) Accept(v Visitor) (Query, error) {
	return v.ListingsByFoodType(r)
}

// ClaimsPerFoodItem counts claims per listing.
type ClaimsPerFoodItem struct{ variant }

func (ClaimsPerFoodItem) Describe() Descriptor {
	return Descriptor{
		Slug:   "claims-per-food-item",
		Title:  "Number of Food Claims per Food Item",
		Inputs: []Input{InputWindow, InputScope},
		Chart:  ChartBar,
		X:      "food_name",
		Y:      "total_claims",
	}
}

func (r ClaimsPerFoodItem) Accept(v Visitor) (Query, error) {
	return v.ClaimsPerFoodItem(r)
}

// SuccessfulClaimsPerProvider counts completed claims per provider.
type SuccessfulClaimsPerProvider struct{ variant }

func (SuccessfulClaimsPerProvider) Describe() Descriptor {
	return Descriptor{
		Slug:   "successful-claims-per-provider",
		Title:  "Provider with Highest Number of Successful Food Claims",
		Inputs: []Input{InputWindow, InputScope},
		Chart:  ChartBar,
		X:      "donor",
		Y:      "successful_donated",
	}
}

func (r SuccessfulClaimsPerProvider) Accept(v Visitor) (Query, error) {
	return v.SuccessfulClaimsPerProvider(r)
}

// ClaimStatusShare is the percentage of claims in the window per status.
type ClaimStatusShare struct{ variant }

func (ClaimStatusShare) Describe() Descriptor {
	return Descriptor{
		Slug:   "claim-status-share",
		Title:  "Percentage of Food Claims by Status",
		Inputs: []Input{InputWindow},
		Chart:  ChartPie,
		X:      "status",
		Y:      "percentage",
	}
}

func (r ClaimStatusShare) Accept(v Visitor) (Query, error) {
	return v.ClaimStatusShare(r)
}

// AvgQuantityPerReceiver averages the quantity of claimed listings per receiver.
type AvgQuantityPerReceiver struct{ variant }

func (AvgQuantityPerReceiver) Describe() Descriptor {
	return Descriptor{
		Slug:   "avg-quantity-per-receiver",
		Title:  "Average Quantity Claimed per Receiver",
		Inputs: []Input{InputWindow, InputScope},
		Chart:  ChartBar,
		X:      "receiver_name",
		Y:      "avg_qty_claimed",
	}
}

func (r AvgQuantityPerReceiver) Accept(v Visitor) (Query, error) {
	return v.AvgQuantityPerReceiver(r)
}

// ClaimsPerMealType counts claims per meal type.
type ClaimsPerMealType struct{ variant }

func (ClaimsPerMealType) Describe() Descriptor {
	return Descriptor{
		Slug:   "claims-per-meal-type",
		Title:  "Most Claimed Meal Type",
		Inputs: []Input{InputWindow, InputScope},
		Chart:  ChartPie,
		X:      "meal_type",
		Y:      "total_claims",
	}
}

func (r ClaimsPerMealType) Accept(v Visitor) (Query, error) {
	return v.ClaimsPerMealType(r)
}

// QuantityPerProvider sums listed quantity per provider.
type QuantityPerProvider struct {
	variant
	Limit int
}

func (r QuantityPerProvider) Describe() Descriptor {
	return Descriptor{
		Slug:   "quantity-per-provider",
		Title:  "Total Quantity Donated by Each Provider",
		Inputs: []Input{InputScope},
		Chart:  ChartBar,
		X:      "provider_name",
		Y:      "total_qty_donated",
		Limit:  r.Limit,
	}
}

func (r QuantityPerProvider) Accept(v Visitor) (Query, error) {
	return v.QuantityPerProvider(r)
}

// DemandByCity counts completed claims per receiver city.
type DemandByCity struct {
	variant
	Limit int
}

func (r DemandByCity) Describe() Descriptor {
	return Descriptor{
		Slug:   "demand-by-city",
		Title:  "Highest Demand Locations Based on Claims",
		Inputs: []Input{InputWindow, InputScope},
		Chart:  ChartBar,
		X:      "city",
		Y:      "total_claims",
		Limit:  r.Limit,
	}
}

func (r DemandByCity) Accept(v Visitor) (Query, error) {
	return v.DemandByCity(r)
}

// WastageByLocation counts wasted listings and quantity per location.
type WastageByLocation struct{ variant }

func (WastageByLocation) Describe() Descriptor {
	return Descriptor{
		Slug:   "wastage-by-location",
		Title:  "Food Wastage by Location (Expired & Unclaimed)",
		Inputs: []Input{InputScope, InputExpiryWindow},
		Chart:  ChartBar,
		X:      "location",
		Y:      "qty_wasted",
	}
}

func (r WastageByLocation) Accept(v Visitor) (Query, error) {
	return v.WastageByLocation(r)
}

// WastageTrend buckets wasted listings by month of expiry.
type WastageTrend struct{ variant }

func (WastageTrend) Describe() Descriptor {
	return Descriptor{
		Slug:   "wastage-trend",
		Title:  "Wastage Trend (Expired & Unclaimed before Expiry)",
		Inputs: []Input{InputScope, InputExpiryWindow},
		Chart:  ChartLine,
		X:      "month",
		Y:      "qty_wasted",
	}
}

func (r WastageTrend) Accept(v Visitor) (Query, error) {
	return v.WastageTrend(r)
}

// Catalog returns every report in display order.
func Catalog() []Report {
	return []Report{
		ProvidersReceiversPerCity{},
		QuantityByProviderType{},
		TopClaimingReceivers{},
		TotalAvailableQuantity{},
		ListingsByCity{},
		ListingsByFoodType{},
		ClaimsPerFoodItem{},
		SuccessfulClaimsPerProvider{},
		ClaimStatusShare{},
		AvgQuantityPerReceiver{},
		ClaimsPerMealType{},
		QuantityPerProvider{},
		DemandByCity{},
		WastageByLocation{},
		WastageTrend{},
	}
}

// Lookup finds a catalog report by slug.
func Lookup(slug string) (Report, bool) {
	for _, r := range Catalog() {
		if r.Describe().Slug == slug {
			return r, true
		}
	}

	return nil, false
}

// Descriptors returns the descriptor of every catalog report.
func Descriptors() []Descriptor {
	reports := Catalog()
	descriptors := make([]Descriptor, 0, len(reports))
	for _, r := range reports {
		descriptors = append(descriptors, r.Describe())
	}

	return descriptors
}
