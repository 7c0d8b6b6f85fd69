package property

// MainCategory is the closed set of top-level listing categories.
type MainCategory string

const (
	CategoryResidential MainCategory = "Konut"
	CategoryCommercial  MainCategory = "İş Yeri"
	CategoryLand        MainCategory = "Arsa"
	CategoryBuilding    MainCategory = "Bina"
	CategoryTourism     MainCategory = "Turistik Tesis"
	CategoryTimeshare   MainCategory = "Devremülk"
)

// MainCategories lists every MainCategory value.
var MainCategories = []MainCategory{
	CategoryResidential, CategoryCommercial, CategoryLand,
	CategoryBuilding, CategoryTourism, CategoryTimeshare,
}

// Furnishing is the closed set of furnishing states.
type Furnishing string

const (
	Furnished          Furnishing = "Furnished"
	Unfurnished        Furnishing = "Unfurnished"
	PartiallyFurnished Furnishing = "Partially Furnished"
)

// Heating values.
const (
	HeatingNone            = "Isıtma Yok"
	HeatingStove           = "Soba"
	HeatingGasStove        = "Doğalgaz Sobası"
	HeatingFloorRadiator   = "Kat Kaloriferi"
	HeatingCentral         = "Merkezi"
	HeatingCentralMetered  = "Merkezi (Pay Ölçer)"
	HeatingCombiGas        = "Kombi (Doğalgaz)"
	HeatingCombiElectric   = "Kombi (Elektrik)"
	HeatingUnderfloor      = "Yerden Isıtma"
	HeatingAirConditioning = "Klima"
	HeatingFancoil         = "Fancoil Ünitesi"
	HeatingSolar           = "Güneş Enerjisi"
	HeatingElectricRadiant = "Elektrikli Radyatör"
	HeatingGeothermal      = "Jeotermal"
	HeatingFireplace       = "Şömine"
	HeatingVRV             = "VRV"
	HeatingHeatPump        = "Isı Pompası"
)

// HeatingTypes lists every heating value.
var HeatingTypes = []string{
	HeatingNone, HeatingStove, HeatingGasStove, HeatingFloorRadiator, HeatingCentral,
	HeatingCentralMetered, HeatingCombiGas, HeatingCombiElectric, HeatingUnderfloor,
	HeatingAirConditioning, HeatingFancoil, HeatingSolar, HeatingElectricRadiant,
	HeatingGeothermal, HeatingFireplace, HeatingVRV, HeatingHeatPump,
}

// Room values outside the n+m pattern.
const (
	RoomsStudio  = "Stüdyo"
	RoomsSixPlus = "6+ Oda"
)

// Field defaults.
const (
	DefaultRooms       = "1+1"
	DefaultHeating     = HeatingNone
	DefaultFurnishing  = Unfurnished
	DefaultCategory    = CategoryResidential
	DefaultCountry     = "TR"
	DefaultCity        = "Belirtilmemiş"
	DefaultStatus      = "active"
	DefaultAgentName   = "Portföy Sorumlusu"
	DefaultAgentEmail  = "info@iremworld.com"
	DefaultSubSale     = "Satılık"
	DefaultSubRent     = "Kiralık"
	DefaultKitchenType = "Kapalı"
	DefaultFacade      = "Güney"
	DefaultUsageStatus = "Boş"
	DefaultDeedStatus  = "Kat Mülkiyeti"
	DefaultFromWho     = "Emlak Ofisinden"
)

// Group defaults. Booleans default to false through the zero value.

func defaultInteriorFeatures() InteriorFeatures {
	return InteriorFeatures{KitchenType: DefaultKitchenType}
}

func defaultExteriorFeatures() ExteriorFeatures {
	return ExteriorFeatures{Facade: DefaultFacade}
}

func defaultBuildingFeatures() BuildingFeatures {
	return BuildingFeatures{}
}

func defaultPropertyDetails() PropertyDetails {
	return PropertyDetails{
		UsageStatus: DefaultUsageStatus,
		DeedStatus:  DefaultDeedStatus,
		FromWho:     DefaultFromWho,
	}
}

// defaultSubCategory derives the sub category when the raw record has none.
func defaultSubCategory(t ListingType) string {
	if t == TypeRent {
		return DefaultSubRent
	}
	return DefaultSubSale
}
