package checks

import (
	"context"
	"fmt"

	"property-engine/core/dataset"
	"property-engine/core/utils"
	"property-engine/feature/property"

	"github.com/gosimple/slug"
)

// DatasetReport summarizes the health of the listing dataset.
type DatasetReport struct {
	Source     string          `json:"source"`
	Records    int             `json:"records"`
	Matched    bool            `json:"matched"`
	Countries  []CountryReport `json:"countries"`
	Duplicates []DuplicateSlug `json:"duplicates"`
}

// CountryReport is the result for one country shard.
type CountryReport struct {
	Code         string      `json:"code"`
	Records      int         `json:"records"`
	MissingSlug  []string    `json:"missing_slug"`
	MissingID    []string    `json:"missing_id"`
	InvalidSlugs []SlugIssue `json:"invalid_slugs"`
	Status       string      `json:"status"` // "ok", "warning", "error"
	Error        string      `json:"error,omitempty"`
}

// SlugIssue is a slug that is not URL-safe, with a suggested replacement.
type SlugIssue struct {
	Slug       string `json:"slug"`
	Suggestion string `json:"suggestion"`
}

// DuplicateSlug is a slug carried by more than one record. Only Winner is
// reachable by slug; the resolver stops at the first match.
type DuplicateSlug struct {
	Slug     string   `json:"slug"`
	Winner   string   `json:"winner"`
	Shadowed []string `json:"shadowed"`
}

// CheckDataset walks every shard in index order and reports records the
// resolver cannot reach or serve under a clean URL.
func CheckDataset(ctx context.Context, source dataset.Source) (*DatasetReport, error) {
	data, err := source.ReadIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read country index: %w", err)
	}
	countries, err := property.ParseCountries(data)
	if err != nil {
		return nil, err
	}

	report := &DatasetReport{
		Source:     source.Describe(),
		Matched:    true,
		Countries:  []CountryReport{},
		Duplicates: []DuplicateSlug{},
	}

	// first owner of each normalized slug, as "<CODE>/<id>"
	owners := make(map[string]string)
	dupIndex := make(map[string]int)

	for _, country := range countries {
		cr := CountryReport{
			Code:         country.Code,
			MissingSlug:  []string{},
			MissingID:    []string{},
			InvalidSlugs: []SlugIssue{},
			Status:       "ok",
		}

		records, err := readShard(ctx, source, country.Code)
		if err != nil {
			cr.Status = "error"
			cr.Error = err.Error()
			report.Matched = false
			report.Countries = append(report.Countries, cr)
			continue
		}

		for i, raw := range records {
			id := utils.GetString(raw, "id", "")
			rawSlug := utils.GetString(raw, "slug", "")
			ref := fmt.Sprintf("%s/%s", country.Code, id)
			if id == "" {
				ref = fmt.Sprintf("%s/#%d", country.Code, i)
				cr.MissingID = append(cr.MissingID, firstNonEmpty(rawSlug, ref))
			}

			if rawSlug == "" {
				cr.MissingSlug = append(cr.MissingSlug, ref)
				continue
			}
			if !slug.IsSlug(rawSlug) {
				basis := utils.GetString(raw, "title", rawSlug)
				cr.InvalidSlugs = append(cr.InvalidSlugs, SlugIssue{
					Slug:       rawSlug,
					Suggestion: slug.MakeLang(basis, "tr"),
				})
			}

			key := property.NormalizeSlug(rawSlug)
			winner, taken := owners[key]
			if !taken {
				owners[key] = ref
				continue
			}
			idx, seen := dupIndex[key]
			if !seen {
				idx = len(report.Duplicates)
				dupIndex[key] = idx
				report.Duplicates = append(report.Duplicates, DuplicateSlug{Slug: key, Winner: winner})
			}
			report.Duplicates[idx].Shadowed = append(report.Duplicates[idx].Shadowed, ref)
		}

		cr.Records = len(records)
		report.Records += len(records)
		if len(cr.MissingSlug) > 0 || len(cr.MissingID) > 0 || len(cr.InvalidSlugs) > 0 {
			cr.Status = "warning"
			report.Matched = false
		}
		report.Countries = append(report.Countries, cr)
	}

	if len(report.Duplicates) > 0 {
		report.Matched = false
	}
	return report, nil
}

func readShard(ctx context.Context, source dataset.Source, code string) ([]utils.Raw, error) {
	data, err := source.ReadShard(ctx, code)
	if err != nil {
		return nil, err
	}
	return property.ParseShard(data)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
