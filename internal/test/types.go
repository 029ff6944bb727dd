package test

// TestRelayRequest represents a test relay request
type TestRelayRequest struct {
	Text string `json:"text" binding:"required"`
}

// TestRelayResponse represents a test relay response
type TestRelayResponse struct {
	Success bool   `json:"success"`
	Text    string `json:"text,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HealthCheckResponse represents a health check response
type HealthCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
