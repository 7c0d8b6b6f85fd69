package store

import (
	"property-engine/core/utils"
)

// Store is one entry of the store (agency) directory.
type Store struct {
	ID      string   `json:"id" gorm:"column:id;primaryKey;type:varchar(64)"`
	Name    string   `json:"name" gorm:"column:name;type:varchar(255)"`
	Company string   `json:"company,omitempty" gorm:"column:company;type:varchar(255)"`
	Email   string   `json:"email,omitempty" gorm:"column:email;type:varchar(255)"`
	Phone   string   `json:"phone,omitempty" gorm:"column:phone;type:varchar(32)"`
	Agents  []Member `json:"agents,omitempty" gorm:"-"`
}

// TableName pins the gorm table name.
func (Store) TableName() string {
	return "stores"
}

// Member is an agent listed under a store.
type Member struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Agent is the identity a listing carries for its responsible agent.
type Agent struct {
	Name    string
	Company string
	Email   string
	Phone   string
}

// IsEmpty reports whether the agent carries nothing to match on.
func (a Agent) IsEmpty() bool {
	return a.Name == "" && a.Company == "" && a.Email == "" && a.Phone == ""
}

// storeFromRaw reads a loosely shaped directory entry. ok is false when it has no id.
func storeFromRaw(raw utils.Raw) (Store, bool) {
	s := Store{
		ID:      utils.GetString(raw, "id", ""),
		Name:    utils.FirstString(raw, "", "name", "storeName", "title"),
		Company: utils.FirstString(raw, "", "company", "companyName"),
		Email:   utils.GetString(raw, "email", ""),
		Phone:   utils.FirstString(raw, "", "phone", "phoneNumber", "mobile"),
	}
	if s.ID == "" {
		return Store{}, false
	}

	if items, ok := raw["agents"].([]any); ok {
		for _, item := range items {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			member := Member{
				Name:  utils.GetString(m, "name", ""),
				Email: utils.GetString(m, "email", ""),
				Phone: utils.GetString(m, "phone", ""),
			}
			if member.Name != "" || member.Email != "" || member.Phone != "" {
				s.Agents = append(s.Agents, member)
			}
		}
	}
	return s, true
}
