package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// newOpenAIImpl creates a new OpenAI implementation
func newOpenAIImpl(cfg Config) *openAIImpl {
	return &openAIImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// CreateChatCompletion sends a chat completion request to the OpenAI API.
// A single attempt: retries and backoff are the caller's concern.
func (o *openAIImpl) CreateChatCompletion(ctx context.Context, req *Request) (*Response, error) {
	wireReq := o.transformRequest(req)

	body, err := json.Marshal(wireReq)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, o.parseAPIError(resp)
	}

	var wireResp chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return nil, fmt.Errorf("openai: failed to decode response: %w", err)
	}

	return o.transformResponse(&wireResp), nil
}

// Model returns the model being used
func (o *openAIImpl) Model() string {
	return o.model
}

func (o *openAIImpl) transformRequest(req *Request) *chatCompletionRequest {
	wireReq := &chatCompletionRequest{
		Model:            o.model,
		MaxTokens:        req.MaxTokens,
		Temperature:      req.Temperature,
		PresencePenalty:  req.PresencePenalty,
		FrequencyPenalty: req.FrequencyPenalty,
		Messages:         make([]chatCompletionMessage, 0, len(req.Messages)),
	}

	for _, msg := range req.Messages {
		wireReq.Messages = append(wireReq.Messages, chatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	return wireReq
}

func (o *openAIImpl) transformResponse(resp *chatCompletionResponse) *Response {
	if resp == nil || len(resp.Choices) == 0 {
		return &Response{Usage: &Usage{}}
	}

	choice := resp.Choices[0]

	return &Response{
		Content:      choice.Message.Content,
		FinishReason: choice.FinishReason,
		Usage: &Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}
}

// parseAPIError reads the standard {"error": {...}} body into an *APIError.
// The raw body is preserved as the message when it does not parse.
func (o *openAIImpl) parseAPIError(resp *http.Response) error {
	bodyBytes, _ := io.ReadAll(resp.Body)

	apiErr := &APIError{StatusCode: resp.StatusCode}

	var errResp apiErrorResponse
	if err := json.Unmarshal(bodyBytes, &errResp); err == nil && errResp.Error.Message != "" {
		apiErr.Message = errResp.Error.Message
		apiErr.Type = errResp.Error.Type
		apiErr.Code = errResp.Error.Code
	} else {
		apiErr.Message = string(bodyBytes)
	}

	return apiErr
}
