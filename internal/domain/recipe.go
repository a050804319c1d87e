package domain

// Recipe is one entry of the recipe document. Every field is optional.
type Recipe struct {
	Name          string   `json:"name"`
	Ingredients   string   `json:"ingredients"` // comma-separated
	Diet          string   `json:"diet"`
	FlavorProfile string   `json:"flavor_profile"`
	Course        string   `json:"course"`
	State         string   `json:"state"`
	Region        string   `json:"region"`
	PrepTime      *float64 `json:"prep_time"`
	CookTime      *float64 `json:"cook_time"`
}
