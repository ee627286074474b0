package transfer

type PersonaUpdate struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	VisualDescription string `json:"visual_description"`
}

// SettingsUpdate carries the legacy slider-based persona settings form.
type SettingsUpdate struct {
	Name             string `json:"name"`
	Voice            string `json:"voice"`
	SassLevel        int    `json:"sass_level"`
	EnergyLevel      int    `json:"energy_level"`
	NostalgiaLevel   int    `json:"nostalgia_level"`
	AutopilotEnabled bool   `json:"autopilot_enabled"`
	PostsPerDay      int    `json:"posts_per_day"`
	RequireApproval  bool   `json:"require_approval"`
}

type ProjectCreation struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	PersonaID        int64  `json:"persona_id"`
	AutopilotEnabled bool   `json:"autopilot_enabled"`
	PostsPerDay      int    `json:"posts_per_day"`
}

// ItemCreation takes features and steps as newline-separated text, the way
// the entry forms submit them.
type ItemCreation struct {
	ProjectID   int64  `json:"project_id"`
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Features    string `json:"features"`
	Steps       string `json:"steps"`
	Story       string `json:"story"`
}

type SocialMetrics struct {
	Views    int64 `json:"views"`
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
	Shares   int64 `json:"shares"`
}
