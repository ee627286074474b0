package transfer

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ResponseFormat struct {
	Type string `json:"type"`
}

type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

type ChatChoice struct {
	Message ChatMessage `json:"message"`
}

type CompletionError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

type ChatCompletionResponse struct {
	Choices []ChatChoice     `json:"choices"`
	Error   *CompletionError `json:"error"`
}

// MediaPrompt is the structured JSON the completion service returns in
// jsonMode: a visual prompt for the renderer plus a caption for the post.
type MediaPrompt struct {
	Prompt  string `json:"prompt"`
	Caption string `json:"caption"`
}

type CompletionOptions struct {
	JSONMode bool
}
