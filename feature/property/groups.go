package property

import (
	"strings"

	"property-engine/core/utils"
)

// fieldSet binds the JSON keys of one feature group to the fields of a builder.
// Keys outside the set are ignored.
type fieldSet struct {
	bools map[string]*bool
	texts map[string]*string
}

// merge overwrites bound fields with every key present on raw.
// A present boolean key always wins, even when falsy. A string key wins only when it holds a non-empty string.
func (f fieldSet) merge(raw utils.Raw) {
	for key, val := range raw {
		if p, ok := f.bools[key]; ok {
			*p = utils.ToBool(val)
			continue
		}
		if p, ok := f.texts[key]; ok {
			if s, isString := val.(string); isString && strings.TrimSpace(s) != "" {
				*p = strings.TrimSpace(s)
			}
		}
	}
}

func interiorFields(g *InteriorFeatures) fieldSet {
	return fieldSet{
		bools: map[string]*bool{
			"hasADSL":            &g.HasADSL,
			"hasAlarm":           &g.HasAlarm,
			"hasBalcony":         &g.HasBalcony,
			"hasBuiltInKitchen":  &g.HasBuiltInKitchen,
			"hasBuiltInWardrobe": &g.HasBuiltInWardrobe,
			"hasAirConditioning": &g.HasAirConditioning,
			"hasFiberInternet":   &g.HasFiberInternet,
			"hasFireplace":       &g.HasFireplace,
			"hasLaundryRoom":     &g.HasLaundryRoom,
			"hasDressingRoom":    &g.HasDressingRoom,
			"hasJacuzzi":         &g.HasJacuzzi,
			"hasParquetFloor":    &g.HasParquetFloor,
			"hasSteelDoor":       &g.HasSteelDoor,
			"hasSmartHome":       &g.HasSmartHome,
			"hasWhiteGoods":      &g.HasWhiteGoods,
			"hasCentralVacuum":   &g.HasCentralVacuum,
		},
		texts: map[string]*string{
			"kitchenType": &g.KitchenType,
		},
	}
}

func exteriorFields(g *ExteriorFeatures) fieldSet {
	return fieldSet{
		bools: map[string]*bool{
			"hasGarden":       &g.HasGarden,
			"hasPool":         &g.HasPool,
			"hasTerrace":      &g.HasTerrace,
			"hasBarbecue":     &g.HasBarbecue,
			"hasSeaView":      &g.HasSeaView,
			"hasCityView":     &g.HasCityView,
			"hasNatureView":   &g.HasNatureView,
			"hasLakeView":     &g.HasLakeView,
			"hasWinterGarden": &g.HasWinterGarden,
		},
		texts: map[string]*string{
			"facade": &g.Facade,
		},
	}
}

func buildingFields(g *BuildingFeatures) fieldSet {
	return fieldSet{
		bools: map[string]*bool{
			"hasElevator":          &g.HasElevator,
			"hasCarPark":           &g.HasCarPark,
			"hasOpenCarPark":       &g.HasOpenCarPark,
			"hasClosedCarPark":     &g.HasClosedCarPark,
			"hasSecurity":          &g.HasSecurity,
			"has24HourSecurity":    &g.Has24HourSecurity,
			"hasGenerator":         &g.HasGenerator,
			"hasDoorman":           &g.HasDoorman,
			"hasPlayground":        &g.HasPlayground,
			"hasSportsArea":        &g.HasSportsArea,
			"hasThermalInsulation": &g.HasThermalInsulation,
			"hasSwimmingPool":      &g.HasSwimmingPool,
			"hasSauna":             &g.HasSauna,
			"hasWaterTank":         &g.HasWaterTank,
			"hasFireEscape":        &g.HasFireEscape,
		},
	}
}

func detailFields(g *PropertyDetails) fieldSet {
	return fieldSet{
		bools: map[string]*bool{
			"isEligibleForCredit": &g.IsEligibleForCredit,
			"isExchangeable":      &g.IsExchangeable,
			"isInSite":            &g.IsInSite,
			"hasTitleDeed":        &g.HasTitleDeed,
			"isRentGuaranteed":    &g.IsRentGuaranteed,
		},
		texts: map[string]*string{
			"usageStatus": &g.UsageStatus,
			"deedStatus":  &g.DeedStatus,
			"fromWho":     &g.FromWho,
		},
	}
}

// mergeGroups is the group-defaults pass: each group starts from its default
// record and takes whatever keys the raw record's matching group carries.
func mergeGroups(p *Property, raw utils.Raw) {
	p.InteriorFeatures = defaultInteriorFeatures()
	p.ExteriorFeatures = defaultExteriorFeatures()
	p.BuildingFeatures = defaultBuildingFeatures()
	p.PropertyDetails = defaultPropertyDetails()

	interiorFields(&p.InteriorFeatures).merge(utils.GetMap(raw, "interiorFeatures"))
	exteriorFields(&p.ExteriorFeatures).merge(utils.GetMap(raw, "exteriorFeatures"))
	buildingFields(&p.BuildingFeatures).merge(utils.GetMap(raw, "buildingFeatures"))
	detailFields(&p.PropertyDetails).merge(utils.GetMap(raw, "propertyDetails"))
}
