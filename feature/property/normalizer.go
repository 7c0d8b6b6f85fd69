package property

import (
	"context"
	"fmt"
	"time"

	"property-engine/core/logger"
	"property-engine/core/utils"
	"property-engine/feature/store"

	"go.uber.org/zap"
)

// Hints carries what the caller knew when it found a raw record.
type Hints struct {
	// CandidateID is used as id when the raw record has none.
	CandidateID string

	// Key is the resolution key the record was found by, the last id fallback.
	Key string

	// SlugCandidate fills the slug when the raw record has none.
	SlugCandidate string
}

// Normalizer converts raw shard records into canonical Property values.
// Normalize never fails: every field falls back to its documented default.
type Normalizer struct {
	stores store.Finder
	logger *zap.Logger
	now    func() time.Time
}

// NewNormalizer creates a Normalizer. stores may be nil, in which case no
// store cross-reference is attempted.
func NewNormalizer(stores store.Finder, log *zap.Logger) *Normalizer {
	return &Normalizer{
		stores: stores,
		logger: logger.OrNop(log),
		now:    time.Now,
	}
}

// WithClock replaces the clock used for the createdAt default.
func (n *Normalizer) WithClock(now func() time.Time) *Normalizer {
	n.now = now
	return n
}

// Normalize builds the canonical record for raw. Steps run in order and later
// steps may overwrite earlier ones; the legacy pass always follows the group merge.
func (n *Normalizer) Normalize(ctx context.Context, raw utils.Raw, hints Hints) Property {
	var p Property

	p.ID = utils.FirstString(raw, "", "id")
	if p.ID == "" {
		p.ID = hints.CandidateID
	}
	if p.ID == "" {
		p.ID = hints.Key
	}
	p.Slug = utils.GetString(raw, "slug", "")
	p.Type = NormalizeType(raw["type"])
	p.Category = normalizeCategory(raw, p.Type)

	p.Title = utils.GetString(raw, "title", "")
	p.Description = utils.GetString(raw, "description", "")
	p.Price = utils.GetFloat(raw, "price", 0)

	p.Location = normalizeLocation(utils.GetMap(raw, "location"))
	p.Specs = normalizeSpecs(raw)

	mergeGroups(&p, raw)
	migrateLegacy(&p, raw)

	fillMedia(&p, raw)
	n.fillBookkeeping(&p, raw)

	p.Agent = normalizeAgent(utils.GetMap(raw, "agent"))
	p.StoreID = n.crossReference(ctx, p.Agent)

	p.SahibindenLink = utils.GetString(raw, "sahibindenLink", "")
	p.HurriyetEmlakLink = utils.GetString(raw, "hurriyetEmlakLink", "")
	p.EmlakJetLink = utils.GetString(raw, "emlakJetLink", "")

	if p.Slug == "" && hints.SlugCandidate != "" {
		p.Slug = hints.SlugCandidate
	}
	return p
}

// normalizeCategory accepts either {"main","sub"} or a bare string with an optional sibling subCategory.
func normalizeCategory(raw utils.Raw, t ListingType) Category {
	var primary any
	var sub string
	if m := utils.GetMap(raw, "category"); m != nil {
		primary = m["main"]
		sub = utils.GetString(m, "sub", "")
	} else {
		primary = raw["category"]
		sub = utils.GetString(raw, "subCategory", "")
	}
	if primary == nil {
		primary = raw["propertyType"]
	}
	if sub == "" {
		sub = defaultSubCategory(t)
	}
	return Category{Main: NormalizeCategory(primary), Sub: sub}
}

func normalizeLocation(loc utils.Raw) Location {
	l := Location{
		Country:      utils.GetString(loc, "country", DefaultCountry),
		State:        utils.GetString(loc, "state", ""),
		City:         utils.GetString(loc, "city", DefaultCity),
		District:     utils.GetString(loc, "district", ""),
		Neighborhood: utils.GetString(loc, "neighborhood", ""),
		Address:      utils.GetString(loc, "address", ""),
	}
	coords := utils.GetMap(loc, "coordinates")
	if coords == nil {
		coords = loc
	}
	lat := utils.GetOptionalFloat(coords, "lat")
	lng := utils.GetOptionalFloat(coords, "lng")
	if lat != nil && lng != nil {
		l.Coordinates = &Coordinates{Lat: *lat, Lng: *lng}
	}
	return l
}

// normalizeSpecs reads each field from the raw specs group, falling back to a
// top-level key of the same name for flat records.
func normalizeSpecs(raw utils.Raw) Specs {
	specs := utils.GetMap(raw, "specs")
	field := func(key string) utils.Raw {
		if utils.Has(specs, key) {
			return specs
		}
		return raw
	}
	value := func(key string) any {
		return field(key)[key]
	}

	return Specs{
		NetSize:      utils.GetFloat(field("netSize"), "netSize", 0),
		GrossSize:    utils.GetFloat(field("grossSize"), "grossSize", 0),
		Rooms:        NormalizeRooms(value("rooms")),
		Bathrooms:    utils.ToInt(value("bathrooms")),
		Age:          utils.ToInt(value("age")),
		Floor:        utils.GetOptionalInt(field("floor"), "floor"),
		TotalFloors:  utils.GetOptionalInt(field("totalFloors"), "totalFloors"),
		Heating:      NormalizeHeating(value("heating")),
		Furnishing:   NormalizeFurnishing(value("furnishing")),
		BalconyCount: utils.GetOptionalInt(field("balconyCount"), "balconyCount"),
	}
}

func fillMedia(p *Property, raw utils.Raw) {
	p.Images = utils.GetStrings(raw, "images", "url", "src")
	if p.Images == nil {
		p.Images = []string{}
	}
	p.VirtualTour = utils.GetString(raw, "virtualTour", "")
	p.PanoramicImages = utils.GetStrings(raw, "panoramicImages", "url", "src")
	if len(p.PanoramicImages) == 0 {
		p.PanoramicImages = nil
	}
}

func (n *Normalizer) fillBookkeeping(p *Property, raw utils.Raw) {
	p.CreatedAt = utils.GetString(raw, "createdAt", n.now().UTC().Format(time.RFC3339))
	p.UpdatedAt = utils.GetString(raw, "updatedAt", p.CreatedAt)
	p.ViewCount = utils.ToInt(raw["viewCount"])
	p.IsFeatured = utils.GetBool(raw, "isFeatured", false)
	p.IsSponsored = utils.GetBool(raw, "isSponsored", false)
	p.Status = utils.GetString(raw, "status", DefaultStatus)
}

func normalizeAgent(a utils.Raw) Agent {
	return Agent{
		Name:    utils.GetString(a, "name", DefaultAgentName),
		Phone:   utils.GetString(a, "phone", ""),
		Email:   utils.GetString(a, "email", DefaultAgentEmail),
		Photo:   utils.GetString(a, "photo", ""),
		Company: utils.GetString(a, "company", ""),
		IsOwner: utils.GetBool(a, "isOwner", false),
	}
}

// crossReference asks the store directory for the agent's store. Errors and
// panics from the directory mean no match.
func (n *Normalizer) crossReference(ctx context.Context, a Agent) (storeID string) {
	if n.stores == nil {
		return ""
	}
	query := store.Agent{Name: a.Name, Company: a.Company, Email: a.Email, Phone: a.Phone}
	// placeholder identities match every unattributed listing
	if query.Name == DefaultAgentName {
		query.Name = ""
	}
	if query.Email == DefaultAgentEmail {
		query.Email = ""
	}
	if query.IsEmpty() {
		return ""
	}

	defer func() {
		if r := recover(); r != nil {
			n.logger.Debug("Store lookup panicked", zap.String("agent", a.Name), zap.Error(fmt.Errorf("%v", r)))
			storeID = ""
		}
	}()

	s, err := n.stores.FindByAgent(ctx, query)
	if err != nil {
		n.logger.Debug("Store lookup failed", zap.String("agent", a.Name), zap.Error(err))
		return ""
	}
	if s == nil {
		return ""
	}
	return s.ID
}
