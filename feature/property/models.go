package property

// ListingType is whether a listing is for sale or for rent.
type ListingType string

const (
	TypeSale ListingType = "sale"
	TypeRent ListingType = "rent"
)

// Property is the canonical listing record. Every field group is always populated.
type Property struct {
	ID       string      `json:"id"`
	Slug     string      `json:"slug"`
	Type     ListingType `json:"type"`
	Category Category    `json:"category"`

	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`

	Location Location `json:"location"`
	Specs    Specs    `json:"specs"`

	InteriorFeatures InteriorFeatures `json:"interiorFeatures"`
	ExteriorFeatures ExteriorFeatures `json:"exteriorFeatures"`
	BuildingFeatures BuildingFeatures `json:"buildingFeatures"`
	PropertyDetails  PropertyDetails  `json:"propertyDetails"`

	Images          []string `json:"images"`
	VirtualTour     string   `json:"virtualTour,omitempty"`
	PanoramicImages []string `json:"panoramicImages,omitempty"`

	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
	ViewCount   int    `json:"viewCount"`
	IsFeatured  bool   `json:"isFeatured"`
	IsSponsored bool   `json:"isSponsored"`
	Status      string `json:"status"`

	Agent   Agent  `json:"agent"`
	StoreID string `json:"storeId,omitempty"`

	SahibindenLink    string `json:"sahibindenLink,omitempty"`
	HurriyetEmlakLink string `json:"hurriyetEmlakLink,omitempty"`
	EmlakJetLink      string `json:"emlakJetLink,omitempty"`
}

// Clone returns a deep copy so a memoized record cannot be mutated through a caller.
func (p Property) Clone() Property {
	out := p
	out.Images = append([]string{}, p.Images...)
	if p.PanoramicImages != nil {
		out.PanoramicImages = append([]string{}, p.PanoramicImages...)
	}
	if p.Location.Coordinates != nil {
		c := *p.Location.Coordinates
		out.Location.Coordinates = &c
	}
	out.Specs.Floor = cloneInt(p.Specs.Floor)
	out.Specs.TotalFloors = cloneInt(p.Specs.TotalFloors)
	out.Specs.BalconyCount = cloneInt(p.Specs.BalconyCount)
	return out
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Category classifies a listing.
type Category struct {
	Main MainCategory `json:"main"`
	Sub  string       `json:"sub"`
}

type Location struct {
	Country      string       `json:"country"`
	State        string       `json:"state"`
	City         string       `json:"city"`
	District     string       `json:"district"`
	Neighborhood string       `json:"neighborhood"`
	Address      string       `json:"address"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Specs holds the measurable attributes of a listing.
// Floor, TotalFloors and BalconyCount stay nil when the raw record omits them.
type Specs struct {
	NetSize      float64    `json:"netSize"`
	GrossSize    float64    `json:"grossSize"`
	Rooms        string     `json:"rooms"`
	Bathrooms    int        `json:"bathrooms"`
	Age          int        `json:"age"`
	Floor        *int       `json:"floor,omitempty"`
	TotalFloors  *int       `json:"totalFloors,omitempty"`
	Heating      string     `json:"heating"`
	Furnishing   Furnishing `json:"furnishing"`
	BalconyCount *int       `json:"balconyCount,omitempty"`
}

type InteriorFeatures struct {
	HasADSL            bool   `json:"hasADSL"`
	HasAlarm           bool   `json:"hasAlarm"`
	HasBalcony         bool   `json:"hasBalcony"`
	HasBuiltInKitchen  bool   `json:"hasBuiltInKitchen"`
	HasBuiltInWardrobe bool   `json:"hasBuiltInWardrobe"`
	HasAirConditioning bool   `json:"hasAirConditioning"`
	HasFiberInternet   bool   `json:"hasFiberInternet"`
	HasFireplace       bool   `json:"hasFireplace"`
	HasLaundryRoom     bool   `json:"hasLaundryRoom"`
	HasDressingRoom    bool   `json:"hasDressingRoom"`
	HasJacuzzi         bool   `json:"hasJacuzzi"`
	HasParquetFloor    bool   `json:"hasParquetFloor"`
	HasSteelDoor       bool   `json:"hasSteelDoor"`
	HasSmartHome       bool   `json:"hasSmartHome"`
	HasWhiteGoods      bool   `json:"hasWhiteGoods"`
	HasCentralVacuum   bool   `json:"hasCentralVacuum"`
	KitchenType        string `json:"kitchenType"`
}

type ExteriorFeatures struct {
	HasGarden       bool   `json:"hasGarden"`
	HasPool         bool   `json:"hasPool"`
	HasTerrace      bool   `json:"hasTerrace"`
	HasBarbecue     bool   `json:"hasBarbecue"`
	HasSeaView      bool   `json:"hasSeaView"`
	HasCityView     bool   `json:"hasCityView"`
	HasNatureView   bool   `json:"hasNatureView"`
	HasLakeView     bool   `json:"hasLakeView"`
	HasWinterGarden bool   `json:"hasWinterGarden"`
	Facade          string `json:"facade"`
}

type BuildingFeatures struct {
	HasElevator          bool `json:"hasElevator"`
	HasCarPark           bool `json:"hasCarPark"`
	HasOpenCarPark       bool `json:"hasOpenCarPark"`
	HasClosedCarPark     bool `json:"hasClosedCarPark"`
	HasSecurity          bool `json:"hasSecurity"`
	Has24HourSecurity    bool `json:"has24HourSecurity"`
	HasGenerator         bool `json:"hasGenerator"`
	HasDoorman           bool `json:"hasDoorman"`
	HasPlayground        bool `json:"hasPlayground"`
	HasSportsArea        bool `json:"hasSportsArea"`
	HasThermalInsulation bool `json:"hasThermalInsulation"`
	HasSwimmingPool      bool `json:"hasSwimmingPool"`
	HasSauna             bool `json:"hasSauna"`
	HasWaterTank         bool `json:"hasWaterTank"`
	HasFireEscape        bool `json:"hasFireEscape"`
}

type PropertyDetails struct {
	IsEligibleForCredit bool   `json:"isEligibleForCredit"`
	IsExchangeable      bool   `json:"isExchangeable"`
	IsInSite            bool   `json:"isInSite"`
	HasTitleDeed        bool   `json:"hasTitleDeed"`
	IsRentGuaranteed    bool   `json:"isRentGuaranteed"`
	UsageStatus         string `json:"usageStatus"`
	DeedStatus          string `json:"deedStatus"`
	FromWho             string `json:"fromWho"`
}

// Agent is the person responsible for a listing.
type Agent struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Photo   string `json:"photo,omitempty"`
	Company string `json:"company,omitempty"`
	IsOwner bool   `json:"isOwner"`
}
