package dto

// ChatRequest is the conversation the browser sends: the recent turns plus
// the new user message. The fixed system messages are never part of it.
type ChatRequest struct {
	Messages    []ChatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionChunk is the SSE frame envelope, shaped like the upstream
// API's chunk objects so the browser client can reuse its parser.
type ChatCompletionChunk struct {
	ID      string        `json:"id"`
	Object  string        `json:"object"`
	Choices []ChunkChoice `json:"choices"`
}

type ChunkChoice struct {
	Index        int        `json:"index"`
	Delta        ChunkDelta `json:"delta"`
	FinishReason *string    `json:"finish_reason"`
}

type ChunkDelta struct {
	Content string `json:"content"`
}

func ToChunk(content string) ChatCompletionChunk {
	return ChatCompletionChunk{
		ID:     "chatcmpl-stream",
		Object: "chat.completion.chunk",
		Choices: []ChunkChoice{
			{Index: 0, Delta: ChunkDelta{Content: content}, FinishReason: nil},
		},
	}
}
