package store

import (
	"strings"

	"property-engine/core/utils"
)

// FoldName folds a store, company or agent name for comparison.
func FoldName(s string) string {
	return utils.Fold(s)
}

// FoldEmail lower-cases and trims an email address.
func FoldEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// PhoneKey keeps the last ten digits of a phone number so that
// "+90 (532) 111 22 33" and "05321112233" share a key. Short numbers yield "".
func PhoneKey(s string) string {
	digits := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) < 7 {
		return ""
	}
	if len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}
	return string(digits)
}

// index answers agent lookups over an in-memory store list.
// Earlier stores win when two share a key.
type index struct {
	byEmail     map[string]*Store
	byPhone     map[string]*Store
	byName      map[string]*Store
	byAgentName map[string]*Store
}

func newIndex(stores []Store) *index {
	idx := &index{
		byEmail:     make(map[string]*Store),
		byPhone:     make(map[string]*Store),
		byName:      make(map[string]*Store),
		byAgentName: make(map[string]*Store),
	}
	put := func(m map[string]*Store, key string, s *Store) {
		if key == "" {
			return
		}
		if _, exists := m[key]; !exists {
			m[key] = s
		}
	}

	for i := range stores {
		s := &stores[i]
		put(idx.byEmail, FoldEmail(s.Email), s)
		put(idx.byPhone, PhoneKey(s.Phone), s)
		put(idx.byName, FoldName(s.Name), s)
		put(idx.byName, FoldName(s.Company), s)
		for _, m := range s.Agents {
			put(idx.byEmail, FoldEmail(m.Email), s)
			put(idx.byPhone, PhoneKey(m.Phone), s)
			put(idx.byAgentName, FoldName(m.Name), s)
		}
	}
	return idx
}

// match tries email, phone, company and agent name, in that order.
func (idx *index) match(a Agent) *Store {
	if s := idx.byEmail[FoldEmail(a.Email)]; s != nil && a.Email != "" {
		return s
	}
	if key := PhoneKey(a.Phone); key != "" {
		if s := idx.byPhone[key]; s != nil {
			return s
		}
	}
	if key := FoldName(a.Company); key != "" {
		if s := idx.byName[key]; s != nil {
			return s
		}
	}
	if key := FoldName(a.Name); key != "" {
		if s := idx.byAgentName[key]; s != nil {
			return s
		}
	}
	return nil
}
