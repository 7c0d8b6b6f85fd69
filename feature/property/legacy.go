package property

import "property-engine/core/utils"

// legacyRule maps one key of the flat pre-groups "features" object onto the built record.
type legacyRule struct {
	key   string
	apply func(p *Property, v bool)
}

var legacyRules = []legacyRule{
	{"hasParking", func(p *Property, v bool) {
		p.BuildingFeatures.HasCarPark = v
		p.BuildingFeatures.HasOpenCarPark = v
	}},
	{"hasSecurity", func(p *Property, v bool) {
		p.BuildingFeatures.HasSecurity = v
		p.BuildingFeatures.Has24HourSecurity = v
	}},
	{"hasElevator", func(p *Property, v bool) { p.BuildingFeatures.HasElevator = v }},
	{"hasGenerator", func(p *Property, v bool) { p.BuildingFeatures.HasGenerator = v }},
	{"hasDoorman", func(p *Property, v bool) { p.BuildingFeatures.HasDoorman = v }},
	{"hasPool", setPool},
	{"hasSwimmingPool", setPool},
	{"hasGarden", func(p *Property, v bool) { p.ExteriorFeatures.HasGarden = v }},
	{"hasTerrace", func(p *Property, v bool) { p.ExteriorFeatures.HasTerrace = v }},
	{"hasSeaView", func(p *Property, v bool) { p.ExteriorFeatures.HasSeaView = v }},
	{"hasBalcony", func(p *Property, v bool) { p.InteriorFeatures.HasBalcony = v }},
	{"hasAirConditioning", func(p *Property, v bool) { p.InteriorFeatures.HasAirConditioning = v }},
	{"hasFireplace", func(p *Property, v bool) { p.InteriorFeatures.HasFireplace = v }},
	{"hasFurniture", setFurnished},
	{"isFurnished", setFurnished},
	{"creditEligible", func(p *Property, v bool) { p.PropertyDetails.IsEligibleForCredit = v }},
}

func setPool(p *Property, v bool) {
	p.ExteriorFeatures.HasPool = v
	p.BuildingFeatures.HasSwimmingPool = v
}

// setFurnished only upgrades; a false legacy flag carries less information than specs.furnishing.
func setFurnished(p *Property, v bool) {
	if v {
		p.Specs.Furnishing = Furnished
	}
}

// migrateLegacy is the legacy-overwrite pass. It runs after mergeGroups so a
// present legacy key wins over the grouped value.
func migrateLegacy(p *Property, raw utils.Raw) {
	features := utils.GetMap(raw, "features")
	if features == nil {
		return
	}
	for _, rule := range legacyRules {
		if utils.Has(features, rule.key) {
			rule.apply(p, utils.ToBool(features[rule.key]))
		}
	}
}
