package property

import (
	"regexp"
	"strings"
	"unicode"

	"property-engine/core/utils"
)

// Field normalizers are total: every input, including nil and wrong types,
// maps to a member of the field's closed set.

// NormalizeType returns rent when the lower-cased value contains "rent", sale otherwise.
func NormalizeType(raw any) ListingType {
	s, _ := raw.(string)
	if strings.Contains(strings.ToLower(s), "rent") {
		return TypeRent
	}
	return TypeSale
}

var categoryKeywords = foldKeys(map[string]MainCategory{
	"konut": CategoryResidential, "residential": CategoryResidential, "housing": CategoryResidential,
	"house": CategoryResidential, "home": CategoryResidential, "apartment": CategoryResidential,
	"flat": CategoryResidential, "villa": CategoryResidential, "daire": CategoryResidential,

	"iş yeri": CategoryCommercial, "işyeri": CategoryCommercial, "commercial": CategoryCommercial,
	"office": CategoryCommercial, "retail": CategoryCommercial, "industrial": CategoryCommercial,
	"government": CategoryCommercial, "shop": CategoryCommercial, "store": CategoryCommercial,
	"warehouse": CategoryCommercial, "ofis": CategoryCommercial, "dükkan": CategoryCommercial,

	"arsa": CategoryLand, "land": CategoryLand, "plot": CategoryLand, "field": CategoryLand,
	"tarla": CategoryLand,

	"bina": CategoryBuilding, "building": CategoryBuilding,

	"turistik tesis": CategoryTourism, "tourism": CategoryTourism, "touristic": CategoryTourism,
	"hotel": CategoryTourism, "otel": CategoryTourism, "resort": CategoryTourism,

	"devremülk": CategoryTimeshare, "devre mülk": CategoryTimeshare, "timeshare": CategoryTimeshare,
})

// NormalizeCategory maps a free-form category onto MainCategory.
// The whole folded value is looked up first, then each word in order; unmatched input is Konut.
func NormalizeCategory(raw any) MainCategory {
	s, _ := raw.(string)
	key := utils.Fold(s)
	if key == "" {
		return DefaultCategory
	}
	if cat, ok := categoryKeywords[key]; ok {
		return cat
	}
	words := strings.FieldsFunc(key, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, w := range words {
		if cat, ok := categoryKeywords[w]; ok {
			return cat
		}
	}
	return DefaultCategory
}

var roomsPattern = regexp.MustCompile(`^[1-6]\+[01]$`)

// NormalizeRooms accepts "n+m" (n in 1..6, m in 0..1), Stüdyo or "6+ Oda"; anything else is "1+1".
// Spaces around the plus sign are tolerated.
func NormalizeRooms(raw any) string {
	s, _ := raw.(string)
	s = strings.TrimSpace(s)
	if s == RoomsStudio || s == RoomsSixPlus {
		return s
	}
	switch utils.Fold(s) {
	case "studyo", "studio":
		return RoomsStudio
	case "6+ oda":
		return RoomsSixPlus
	}
	compact := strings.ReplaceAll(s, " ", "")
	if roomsPattern.MatchString(compact) {
		return compact
	}
	return DefaultRooms
}

type keywordRule struct {
	keyword string
	value   string
}

// heatingKeywords is searched in order; the first keyword contained in the value wins.
// More specific phrases precede the generic words they contain.
var heatingKeywords = foldRules([]keywordRule{
	{"yerden", HeatingUnderfloor},
	{"underfloor", HeatingUnderfloor},
	{"floor heating", HeatingUnderfloor},
	{"pay ölçer", HeatingCentralMetered},
	{"payölçer", HeatingCentralMetered},
	{"metered", HeatingCentralMetered},
	{"merkezi", HeatingCentral},
	{"central", HeatingCentral},
	{"doğalgaz sobası", HeatingGasStove},
	{"gas stove", HeatingGasStove},
	{"kombi (elektrik)", HeatingCombiElectric},
	{"elektrikli kombi", HeatingCombiElectric},
	{"electric combi", HeatingCombiElectric},
	{"electric boiler", HeatingCombiElectric},
	{"kombi", HeatingCombiGas},
	{"combi", HeatingCombiGas},
	{"boiler", HeatingCombiGas},
	{"doğalgaz", HeatingCombiGas},
	{"natural gas", HeatingCombiGas},
	{"kat kalorifer", HeatingFloorRadiator},
	{"kalorifer", HeatingFloorRadiator},
	{"klima", HeatingAirConditioning},
	{"air condition", HeatingAirConditioning},
	{"fancoil", HeatingFancoil},
	{"fan coil", HeatingFancoil},
	{"güneş", HeatingSolar},
	{"solar", HeatingSolar},
	{"radyatör", HeatingElectricRadiant},
	{"radiator", HeatingElectricRadiant},
	{"jeotermal", HeatingGeothermal},
	{"geothermal", HeatingGeothermal},
	{"şömine", HeatingFireplace},
	{"fireplace", HeatingFireplace},
	{"vrv", HeatingVRV},
	{"vrf", HeatingVRV},
	{"ısı pompası", HeatingHeatPump},
	{"heat pump", HeatingHeatPump},
	{"soba", HeatingStove},
	{"stove", HeatingStove},
	{"ısıtma yok", HeatingNone},
	{"none", HeatingNone},
})

var heatingExact = func() map[string]string {
	m := make(map[string]string, len(HeatingTypes))
	for _, h := range HeatingTypes {
		m[utils.Fold(h)] = h
	}
	return m
}()

// NormalizeHeating maps a heating description onto the heating set.
// An exact (folded) value wins; otherwise heatingKeywords is searched in order. Unmatched is "Isıtma Yok".
func NormalizeHeating(raw any) string {
	s, _ := raw.(string)
	key := utils.Fold(s)
	if key == "" {
		return DefaultHeating
	}
	if h, ok := heatingExact[key]; ok {
		return h
	}
	for _, rule := range heatingKeywords {
		if strings.Contains(key, rule.keyword) {
			return rule.value
		}
	}
	return DefaultHeating
}

// NormalizeFurnishing maps a furnishing description onto Furnishing.
// "semi"/"partial" means partially furnished; "furnished" means furnished unless prefixed by "un".
// Booleans map to Furnished/Unfurnished. Unmatched is Unfurnished.
func NormalizeFurnishing(raw any) Furnishing {
	switch v := raw.(type) {
	case bool:
		if v {
			return Furnished
		}
		return Unfurnished
	case string:
		key := utils.Fold(v)
		switch {
		case key == "":
			return DefaultFurnishing
		case strings.Contains(key, "semi"), strings.Contains(key, "partial"),
			strings.Contains(key, "yari esyali"), strings.Contains(key, "kismen"):
			return PartiallyFurnished
		}
		if i := strings.Index(key, "furnished"); i >= 0 {
			if i >= 2 && key[i-2:i] == "un" {
				return Unfurnished
			}
			return Furnished
		}
		switch {
		case strings.Contains(key, "esyasiz"):
			return Unfurnished
		case strings.Contains(key, "esyali"):
			return Furnished
		}
	}
	return DefaultFurnishing
}

func foldKeys[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		out[utils.Fold(k)] = v
	}
	return out
}

func foldRules(rules []keywordRule) []keywordRule {
	out := make([]keywordRule, len(rules))
	for i, r := range rules {
		out[i] = keywordRule{keyword: utils.Fold(r.keyword), value: r.value}
	}
	return out
}
