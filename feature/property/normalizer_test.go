package property

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"property-engine/core/utils"
	"property-engine/feature/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func newTestNormalizer(stores store.Finder) *Normalizer {
	return NewNormalizer(stores, zap.NewNop()).WithClock(func() time.Time { return fixedNow })
}

type finderFunc func(ctx context.Context, a store.Agent) (*store.Store, error)

func (f finderFunc) FindByAgent(ctx context.Context, a store.Agent) (*store.Store, error) {
	return f(ctx, a)
}

func decodeRaw(t *testing.T, s string) utils.Raw {
	t.Helper()
	var raw utils.Raw
	require.NoError(t, json.Unmarshal([]byte(s), &raw))
	return raw
}

func TestNormalize_EmptyRecordIsFullyDefaulted(t *testing.T) {
	p := newTestNormalizer(nil).Normalize(context.Background(), utils.Raw{}, Hints{Key: "villa-x"})

	assert.Equal(t, "villa-x", p.ID)
	assert.Equal(t, "", p.Slug)
	assert.Equal(t, TypeSale, p.Type)
	assert.Equal(t, Category{Main: CategoryResidential, Sub: DefaultSubSale}, p.Category)
	assert.Equal(t, 0.0, p.Price)

	assert.Equal(t, DefaultCountry, p.Location.Country)
	assert.Equal(t, DefaultCity, p.Location.City)
	assert.Nil(t, p.Location.Coordinates)

	assert.Equal(t, DefaultRooms, p.Specs.Rooms)
	assert.Equal(t, DefaultHeating, p.Specs.Heating)
	assert.Equal(t, DefaultFurnishing, p.Specs.Furnishing)
	assert.Nil(t, p.Specs.Floor)
	assert.Nil(t, p.Specs.TotalFloors)
	assert.Nil(t, p.Specs.BalconyCount)

	assert.Equal(t, defaultInteriorFeatures(), p.InteriorFeatures)
	assert.Equal(t, defaultExteriorFeatures(), p.ExteriorFeatures)
	assert.Equal(t, defaultBuildingFeatures(), p.BuildingFeatures)
	assert.Equal(t, defaultPropertyDetails(), p.PropertyDetails)
	assert.Equal(t, "Kapalı", p.InteriorFeatures.KitchenType)
	assert.Equal(t, "Güney", p.ExteriorFeatures.Facade)
	assert.Equal(t, "Boş", p.PropertyDetails.UsageStatus)
	assert.Equal(t, "Kat Mülkiyeti", p.PropertyDetails.DeedStatus)
	assert.Equal(t, "Emlak Ofisinden", p.PropertyDetails.FromWho)

	assert.NotNil(t, p.Images)
	assert.Empty(t, p.Images)
	assert.Equal(t, "2024-03-01T09:30:00Z", p.CreatedAt)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
	assert.Equal(t, DefaultStatus, p.Status)
	assert.False(t, p.IsFeatured)

	assert.Equal(t, DefaultAgentName, p.Agent.Name)
	assert.Equal(t, DefaultAgentEmail, p.Agent.Email)
	assert.False(t, p.Agent.IsOwner)
	assert.Empty(t, p.StoreID)
}

func TestNormalize_FullRecord(t *testing.T) {
	raw := decodeRaw(t, `{
		"id": 42,
		"slug": "deniz-manzarali-villa",
		"type": "rent",
		"category": {"main": "residential", "sub": "Villa"},
		"title": "Deniz Manzaralı Villa",
		"price": "12500",
		"location": {"country": "TR", "city": "Muğla", "district": "Bodrum",
			"coordinates": {"lat": 37.03, "lng": "27.43"}},
		"specs": {"netSize": 180, "grossSize": "220", "rooms": "4+1", "bathrooms": 3,
			"floor": 0, "totalFloors": 2, "heating": "Yerden Isıtma Sistemi", "furnishing": "furnished"},
		"interiorFeatures": {"hasFireplace": true, "kitchenType": "Açık", "unknownKey": true},
		"exteriorFeatures": {"hasPool": "evet", "facade": ""},
		"propertyDetails": {"isEligibleForCredit": 1, "usageStatus": 5},
		"images": ["a.jpg", {"url": "b.jpg"}, {"src": "c.jpg"}, "", {"alt": "x"}],
		"createdAt": "2023-11-05T10:00:00Z",
		"viewCount": "17",
		"isFeatured": true,
		"agent": {"name": "Ayşe Demir", "phone": "+90 532 111 22 33", "isOwner": "true"},
		"sahibindenLink": "https://example.com/ilan/1"
	}`)

	p := newTestNormalizer(nil).Normalize(context.Background(), raw, Hints{})

	assert.Equal(t, "42", p.ID)
	assert.Equal(t, "deniz-manzarali-villa", p.Slug)
	assert.Equal(t, TypeRent, p.Type)
	assert.Equal(t, Category{Main: CategoryResidential, Sub: "Villa"}, p.Category)
	assert.Equal(t, 12500.0, p.Price)

	assert.Equal(t, "Muğla", p.Location.City)
	assert.Equal(t, "Bodrum", p.Location.District)
	require.NotNil(t, p.Location.Coordinates)
	assert.Equal(t, Coordinates{Lat: 37.03, Lng: 27.43}, *p.Location.Coordinates)

	assert.Equal(t, 180.0, p.Specs.NetSize)
	assert.Equal(t, 220.0, p.Specs.GrossSize)
	assert.Equal(t, "4+1", p.Specs.Rooms)
	assert.Equal(t, 3, p.Specs.Bathrooms)
	require.NotNil(t, p.Specs.Floor)
	assert.Equal(t, 0, *p.Specs.Floor)
	require.NotNil(t, p.Specs.TotalFloors)
	assert.Equal(t, 2, *p.Specs.TotalFloors)
	assert.Nil(t, p.Specs.BalconyCount)
	assert.Equal(t, HeatingUnderfloor, p.Specs.Heating)
	assert.Equal(t, Furnished, p.Specs.Furnishing)

	assert.True(t, p.InteriorFeatures.HasFireplace)
	assert.Equal(t, "Açık", p.InteriorFeatures.KitchenType)
	assert.True(t, p.ExteriorFeatures.HasPool)
	assert.Equal(t, DefaultFacade, p.ExteriorFeatures.Facade)
	assert.True(t, p.PropertyDetails.IsEligibleForCredit)
	assert.Equal(t, DefaultUsageStatus, p.PropertyDetails.UsageStatus)

	assert.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg"}, p.Images)
	assert.Equal(t, "2023-11-05T10:00:00Z", p.CreatedAt)
	assert.Equal(t, "2023-11-05T10:00:00Z", p.UpdatedAt)
	assert.Equal(t, 17, p.ViewCount)
	assert.True(t, p.IsFeatured)

	assert.Equal(t, "Ayşe Demir", p.Agent.Name)
	assert.Equal(t, DefaultAgentEmail, p.Agent.Email)
	assert.True(t, p.Agent.IsOwner)
	assert.Equal(t, "https://example.com/ilan/1", p.SahibindenLink)
}

func TestNormalize_FlatSpecFallbacks(t *testing.T) {
	n := newTestNormalizer(nil)

	t.Run("Unknown rooms and heating fall back", func(t *testing.T) {
		p := n.Normalize(context.Background(), utils.Raw{"rooms": "7+3", "heating": "unknown-xyz"}, Hints{})
		assert.Equal(t, "1+1", p.Specs.Rooms)
		assert.Equal(t, "Isıtma Yok", p.Specs.Heating)
	})

	t.Run("Heating keyword match", func(t *testing.T) {
		p := n.Normalize(context.Background(), utils.Raw{"heating": "Yerden Isıtma Sistemi"}, Hints{})
		assert.Equal(t, "Yerden Isıtma", p.Specs.Heating)
	})

	t.Run("Specs group wins over flat key", func(t *testing.T) {
		raw := utils.Raw{"rooms": "2+1", "specs": map[string]any{"rooms": "3+1"}}
		p := n.Normalize(context.Background(), raw, Hints{})
		assert.Equal(t, "3+1", p.Specs.Rooms)
	})
}

func TestNormalize_LegacyFeaturesWin(t *testing.T) {
	raw := decodeRaw(t, `{
		"buildingFeatures": {"hasCarPark": false, "hasSecurity": true, "hasSwimmingPool": false},
		"exteriorFeatures": {"hasPool": false},
		"features": {"hasParking": true, "hasSecurity": false, "hasPool": "1",
			"hasFurniture": true, "creditEligible": "evet", "hasElevator": 0}
	}`)

	p := newTestNormalizer(nil).Normalize(context.Background(), raw, Hints{})

	assert.True(t, p.BuildingFeatures.HasCarPark)
	assert.True(t, p.BuildingFeatures.HasOpenCarPark)
	assert.False(t, p.BuildingFeatures.HasSecurity)
	assert.False(t, p.BuildingFeatures.Has24HourSecurity)
	assert.True(t, p.ExteriorFeatures.HasPool)
	assert.True(t, p.BuildingFeatures.HasSwimmingPool)
	assert.False(t, p.BuildingFeatures.HasElevator)
	assert.Equal(t, Furnished, p.Specs.Furnishing)
	assert.True(t, p.PropertyDetails.IsEligibleForCredit)
}

func TestNormalize_LegacyFurnitureFalseKeepsSpecs(t *testing.T) {
	raw := utils.Raw{
		"specs":    map[string]any{"furnishing": "Semi furnished"},
		"features": map[string]any{"isFurnished": false},
	}
	p := newTestNormalizer(nil).Normalize(context.Background(), raw, Hints{})
	assert.Equal(t, PartiallyFurnished, p.Specs.Furnishing)
}

func TestNormalize_Identity(t *testing.T) {
	n := newTestNormalizer(nil)
	ctx := context.Background()

	assert.Equal(t, "7", n.Normalize(ctx, utils.Raw{"id": 7.0}, Hints{CandidateID: "9", Key: "k"}).ID)
	assert.Equal(t, "9", n.Normalize(ctx, utils.Raw{}, Hints{CandidateID: "9", Key: "k"}).ID)
	assert.Equal(t, "k", n.Normalize(ctx, utils.Raw{"id": ""}, Hints{Key: "k"}).ID)

	filled := n.Normalize(ctx, utils.Raw{"id": "1"}, Hints{SlugCandidate: "from-query"})
	assert.Equal(t, "from-query", filled.Slug)

	kept := n.Normalize(ctx, utils.Raw{"slug": "own-slug"}, Hints{SlugCandidate: "from-query"})
	assert.Equal(t, "own-slug", kept.Slug)
}

func TestNormalize_CategoryShapes(t *testing.T) {
	n := newTestNormalizer(nil)
	ctx := context.Background()

	flat := n.Normalize(ctx, utils.Raw{"category": "Office", "subCategory": "Dükkan"}, Hints{})
	assert.Equal(t, Category{Main: CategoryCommercial, Sub: "Dükkan"}, flat.Category)

	legacy := n.Normalize(ctx, utils.Raw{"propertyType": "land", "type": "for-rent"}, Hints{})
	assert.Equal(t, Category{Main: CategoryLand, Sub: DefaultSubRent}, legacy.Category)

	bad := n.Normalize(ctx, utils.Raw{"category": []any{"x"}}, Hints{})
	assert.Equal(t, CategoryResidential, bad.Category.Main)
}

func TestNormalize_IsIdempotent(t *testing.T) {
	raw := decodeRaw(t, `{"id": "5", "slug": "a", "rooms": "2+1", "features": {"hasParking": true},
		"images": ["x.jpg"], "location": {"lat": 41, "lng": 29}, "specs": {"floor": "3"}}`)
	n := newTestNormalizer(nil)

	first := n.Normalize(context.Background(), raw, Hints{})
	second := n.Normalize(context.Background(), raw, Hints{})
	assert.Equal(t, first, second)
}

func TestNormalize_StoreCrossReference(t *testing.T) {
	ctx := context.Background()
	raw := utils.Raw{"agent": map[string]any{"name": "Mehmet Yılmaz", "email": "mehmet@irememlak.com"}}

	t.Run("Match sets store id", func(t *testing.T) {
		var got store.Agent
		n := newTestNormalizer(finderFunc(func(ctx context.Context, a store.Agent) (*store.Store, error) {
			got = a
			return &store.Store{ID: "s-7"}, nil
		}))
		p := n.Normalize(ctx, raw, Hints{})
		assert.Equal(t, "s-7", p.StoreID)
		assert.Equal(t, "mehmet@irememlak.com", got.Email)
	})

	t.Run("No match leaves store id empty", func(t *testing.T) {
		n := newTestNormalizer(finderFunc(func(ctx context.Context, a store.Agent) (*store.Store, error) {
			return nil, nil
		}))
		assert.Empty(t, n.Normalize(ctx, raw, Hints{}).StoreID)
	})

	t.Run("Error is isolated", func(t *testing.T) {
		n := newTestNormalizer(finderFunc(func(ctx context.Context, a store.Agent) (*store.Store, error) {
			return nil, errors.New("directory unavailable")
		}))
		p := n.Normalize(ctx, raw, Hints{})
		assert.Empty(t, p.StoreID)
		assert.Equal(t, "Mehmet Yılmaz", p.Agent.Name)
	})

	t.Run("Panic is isolated", func(t *testing.T) {
		n := newTestNormalizer(finderFunc(func(ctx context.Context, a store.Agent) (*store.Store, error) {
			panic("boom")
		}))
		var p Property
		require.NotPanics(t, func() {
			p = n.Normalize(ctx, raw, Hints{Key: "k"})
		})
		assert.Empty(t, p.StoreID)
		assert.Equal(t, DefaultRooms, p.Specs.Rooms)
		assert.Equal(t, "k", p.ID)
	})

	t.Run("Placeholder agent is not looked up", func(t *testing.T) {
		calls := 0
		n := newTestNormalizer(finderFunc(func(ctx context.Context, a store.Agent) (*store.Store, error) {
			calls++
			return &store.Store{ID: "any"}, nil
		}))
		p := n.Normalize(ctx, utils.Raw{}, Hints{})
		assert.Empty(t, p.StoreID)
		assert.Zero(t, calls)
	})
}
