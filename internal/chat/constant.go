package chat

const (
	// HistoryWindow bounds the recent-history slice sent to the model.
	HistoryWindow = 10

	// WelcomeText seeds every fresh conversation as the assistant's
	// opening turn.
	WelcomeText = "Hi! I'm your AI health assistant. I can help answer general health questions, but I'm not a substitute for professional medical advice. How can I help you today?"

	// ApologyText is the assistant turn appended when the relay fails,
	// whatever the failure class.
	ApologyText = "I'm sorry, I'm having trouble responding right now. Please try again in a moment."
)
