package transfer

type ImageSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type VideoJobInput struct {
	Prompt      string `json:"prompt"`
	AspectRatio string `json:"aspect_ratio"`
	Duration    int    `json:"duration"`
	ImageURL    string `json:"image_url,omitempty"`
}

type ImageJobInput struct {
	Prompt            string    `json:"prompt"`
	ImageSize         ImageSize `json:"image_size"`
	NumInferenceSteps int       `json:"num_inference_steps"`
	GuidanceScale     float64   `json:"guidance_scale"`
}

type QueueSubmitResponse struct {
	RequestID string `json:"request_id"`
}

type QueueStatusResponse struct {
	Status string `json:"status"`
}

type AssetRef struct {
	URL string `json:"url"`
}

// ResultEnvelope covers the response shapes the media service has been seen
// returning across model versions: the asset url at video.url, file.url or
// url, each optionally nested one level under data.
type ResultEnvelope struct {
	Video  *AssetRef   `json:"video"`
	File   *AssetRef   `json:"file"`
	URL    string      `json:"url"`
	Images []AssetRef  `json:"images"`
	Data   *ResultData `json:"data"`
}

type ResultData struct {
	Video  *AssetRef  `json:"video"`
	File   *AssetRef  `json:"file"`
	URL    string     `json:"url"`
	Images []AssetRef `json:"images"`
}

// AssetURL extracts the rendered asset url from whichever location the
// payload used, or "" when none is present.
func (e *ResultEnvelope) AssetURL() string {
	if e == nil {
		return ""
	}
	if e.Video != nil && e.Video.URL != "" {
		return e.Video.URL
	}
	if e.File != nil && e.File.URL != "" {
		return e.File.URL
	}
	if e.URL != "" {
		return e.URL
	}
	if e.Data != nil {
		if e.Data.Video != nil && e.Data.Video.URL != "" {
			return e.Data.Video.URL
		}
		if e.Data.File != nil && e.Data.File.URL != "" {
			return e.Data.File.URL
		}
		if e.Data.URL != "" {
			return e.Data.URL
		}
	}
	return ""
}

// ImageURL extracts the first generated image url, checking the nested data
// wrapper some endpoints use.
func (e *ResultEnvelope) ImageURL() string {
	if e == nil {
		return ""
	}
	if len(e.Images) > 0 && e.Images[0].URL != "" {
		return e.Images[0].URL
	}
	if e.Data != nil && len(e.Data.Images) > 0 {
		return e.Data.Images[0].URL
	}
	return ""
}

const (
	JobStateQueued     = "QUEUED"
	JobStateInProgress = "IN_PROGRESS"
	JobStateCompleted  = "COMPLETED"
	JobStateFailed     = "FAILED"
	JobStateCancelled  = "CANCELLED"
)

// RenderStatus is the orchestrator's normalized view of a job: its state and,
// once COMPLETED, the asset url.
type RenderStatus struct {
	State string `json:"state"`
	URL   string `json:"url,omitempty"`
}

func (s *RenderStatus) Terminal() bool {
	switch s.State {
	case JobStateCompleted, JobStateFailed, JobStateCancelled:
		return true
	}
	return false
}
