package provider

import "context"

// MessageRole identifies which party produced a chat message.
type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleTool      MessageRole = "tool"
)

// ContentPart is one piece of a message's content: either text or an
// inline image.
type ContentPart struct {
	Text  string
	Image *ImageContent // nil unless this part is an image
}

// ImageContent is an inline image attachment.
type ImageContent struct {
	MimeType string
	Bytes    []byte
}

// TextPart builds a text-only content part.
func TextPart(text string) ContentPart {
	return ContentPart{Text: text}
}

// ImagePart builds an image content part.
func ImagePart(mimeType string, bytes []byte) ContentPart {
	return ContentPart{Image: &ImageContent{MimeType: mimeType, Bytes: bytes}}
}

// ToolCall is a model-requested invocation of a named tool.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string // JSON-encoded arguments
}

// ToolResult is the outcome of running a tool call, fed back as a Tool
// message.
type ToolResult struct {
	ToolCallID string
	Content    string
	IsError    bool
}

// Message is one turn in a conversation. Exactly one of the role-specific
// fields is meaningful, selected by Role.
type Message struct {
	Role        MessageRole
	Parts       []ContentPart // System, User, Assistant
	ToolCalls   []ToolCall    // Assistant only
	ToolResults []ToolResult  // Tool only
}

// Text concatenates the text parts of a message, rendering image parts as
// the literal "[image]" placeholder.
func (m Message) Text() string {
	var out string
	for _, p := range m.Parts {
		if p.Image != nil {
			out += "[image]"
			continue
		}
		out += p.Text
	}
	return out
}

// SystemMessage builds a System-role message from text parts.
func SystemMessage(parts ...ContentPart) Message {
	return Message{Role: RoleSystem, Parts: parts}
}

// UserMessage builds a User-role message from text parts.
func UserMessage(parts ...ContentPart) Message {
	return Message{Role: RoleUser, Parts: parts}
}

// AssistantMessage builds an Assistant-role message.
func AssistantMessage(parts []ContentPart, toolCalls []ToolCall) Message {
	return Message{Role: RoleAssistant, Parts: parts, ToolCalls: toolCalls}
}

// ToolMessage builds a Tool-role message carrying tool results.
func ToolMessage(results ...ToolResult) Message {
	return Message{Role: RoleTool, ToolResults: results}
}

// ToolChoiceMode selects how a ChatApi should use the tools offered to it.
type ToolChoiceMode string

const (
	ToolChoiceAuto     ToolChoiceMode = "auto"
	ToolChoiceNone     ToolChoiceMode = "none"
	ToolChoiceRequired ToolChoiceMode = "required"
	ToolChoiceTool     ToolChoiceMode = "tool"
)

// ToolChoice selects tool-use behavior for a single generate call.
type ToolChoice struct {
	Mode ToolChoiceMode
	Name string // only meaningful when Mode == ToolChoiceTool
}

// ToolSpec describes a tool the model may call.
type ToolSpec struct {
	Name        string
	Description string
	Parameters  map[string]any // JSON schema
}

// ChatOptions configures a single generate/generate-stream call.
type ChatOptions struct {
	ModelID       string
	Temperature   *float64
	MaxTokens     *int
	TopP          *float64
	StopSequences []string
	Tools         []ToolSpec
	ToolChoice    *ToolChoice
}

// FinishReason explains why a chat generation stopped.
type FinishReason string

const (
	FinishStop          FinishReason = "stop"
	FinishLength        FinishReason = "length"
	FinishToolCalls     FinishReason = "tool_calls"
	FinishContentFilter FinishReason = "content_filter"
	FinishCancelled     FinishReason = "cancelled"
	FinishOther         FinishReason = "other"
)

// Usage reports token accounting for a chat call.
type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

// ChatResponse is the result of a non-streaming generate call.
type ChatResponse struct {
	ContentParts []ContentPart
	ToolCalls    []ToolCall
	Usage        Usage
	FinishReason FinishReason
	ModelID      string
}

// ModelInfo describes one model a ChatApi can target.
type ModelInfo struct {
	ID          string
	DisplayName string
}

// ChatApi is a chat-completion capability exposed by an extension.
type ChatApi interface {
	Identified

	ListModels(ctx context.Context) ([]ModelInfo, error)
	Generate(ctx context.Context, messages []Message, options ChatOptions) (ChatResponse, error)
	// GenerateStream returns a channel of incremental text fragments. The
	// channel is closed when generation ends; a send of a non-nil error is
	// always the last value delivered.
	GenerateStream(ctx context.Context, messages []Message, options ChatOptions) (<-chan StreamChunk, error)
}

// StreamChunk is one increment of a streamed chat generation.
type StreamChunk struct {
	Text string
	Err  error
}
