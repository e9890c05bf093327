package prompt

// GetSystemPrompt provides strict directions and the exact reply shape.
// The reply must be the JSON object alone; the parser rejects anything else.
func GetSystemPrompt() string {
	return `You are a helpful assistant analyzing patient feedback. You must produce one valid JSON object only (no markdown, no commentary, no code fences).

Requirements:
- Give each of the following a score from 1 (very bad) to 10 (excellent): doctor, nurse, hospital.
- Scores are integers. If an entity is not mentioned, give it a score of 5.
- Explain why you gave those scores in "notes".

Schema:
{"doctor": <int>, "nurse": <int>, "hospital": <int>, "notes": "<string>"}`
}

// GetUserPrompt returns the feedback text unchanged; the message is the whole user turn.
func GetUserPrompt(message string) string {
	return message
}
