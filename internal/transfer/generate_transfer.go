package transfer

// PromptPair is the compiled (system, user) instruction pair handed to the
// completion service.
type PromptPair struct {
	System string `json:"system"`
	User   string `json:"user"`
}

type GenerateScriptRequest struct {
	ItemID    int64    `json:"item_id"`
	Platforms []string `json:"platforms"`
}

type GenerateMediaPromptRequest struct {
	ItemID    int64    `json:"item_id"`
	MediaType string   `json:"media_type"`
	Platforms []string `json:"platforms"`
}

type RenderImageRequest struct {
	Prompt      string `json:"prompt"`
	AspectRatio string `json:"aspect_ratio"`
}

type RenderVideoRequest struct {
	ItemID       int64  `json:"item_id"`
	Prompt       string `json:"prompt"`
	SeedImageURL string `json:"seed_image_url"`
}
