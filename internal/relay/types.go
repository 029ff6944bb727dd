package relay

// Reply is a successful completion result.
type Reply struct {
	Text  string
	Usage *Usage
}

// Usage tracks token consumption reported by the upstream model.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}
