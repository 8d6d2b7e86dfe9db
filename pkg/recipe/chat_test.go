package recipe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtrlanz/markhor-sub000/pkg/extension"
	"github.com/dtrlanz/markhor-sub000/pkg/provider"
	"github.com/dtrlanz/markhor-sub000/pkg/providertest"
)

func TestChatGeneratesOneReplyPerUserTurn(t *testing.T) {
	chatApi := &providertest.ChatApi{
		NameID: "m",
		Responses: []provider.ChatResponse{
			{ContentParts: []provider.ContentPart{provider.TextPart("hello back")}},
		},
	}
	prompter := &providertest.Prompter{NameID: "p", Cancel: true}
	ext := &providertest.Extension{
		Chats:     []provider.ChatApi{chatApi},
		PrompterS: []provider.Prompter{prompter},
	}

	var seen []provider.Message
	j := Chat([]provider.Message{provider.UserMessage(provider.TextPart("hi"))}, "", func(m provider.Message) {
		seen = append(seen, m)
	}).AddExtension(extension.New(ext))

	messages, err := j.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 2) // initial user, assistant reply; the canceled prompt ends the loop without adding another turn
	assert.Equal(t, provider.RoleAssistant, messages[1].Role)
	assert.Equal(t, "hello back", messages[1].Text())
	require.Len(t, seen, 1)
	assert.Equal(t, "hello back", seen[0].Text())
}

func TestChatPromptCancellationEndsGracefully(t *testing.T) {
	chatApi := &providertest.ChatApi{NameID: "m"}
	prompter := &providertest.Prompter{NameID: "p", Cancel: true}
	ext := &providertest.Extension{
		Chats:     []provider.ChatApi{chatApi},
		PrompterS: []provider.Prompter{prompter},
	}

	initial := []provider.Message{provider.SystemMessage(provider.TextPart("sys"))}
	j := Chat(initial, "", nil).AddExtension(extension.New(ext))

	messages, err := j.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, initial, messages)
}

func TestChatToolTurnReturnsToolNotAvailable(t *testing.T) {
	chatApi := &providertest.ChatApi{NameID: "m"}
	prompter := &providertest.Prompter{NameID: "p"}
	ext := &providertest.Extension{
		Chats:     []provider.ChatApi{chatApi},
		PrompterS: []provider.Prompter{prompter},
	}

	initial := []provider.Message{provider.ToolMessage(provider.ToolResult{ToolCallID: "1", Content: "ok"})}
	j := Chat(initial, "", nil).AddExtension(extension.New(ext))

	_, err := j.Run(context.Background())
	assert.ErrorIs(t, err, extension.ErrToolNotAvailable)
}
