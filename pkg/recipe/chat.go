package recipe

import (
	"context"
	"errors"

	"github.com/dtrlanz/markhor-sub000/pkg/extension"
	"github.com/dtrlanz/markhor-sub000/pkg/job"
	"github.com/dtrlanz/markhor-sub000/pkg/provider"
)

// promptMessage is shown to the user when the chat loop needs fresh input.
const promptMessage = "Your message:"

// Chat builds a Job that drives a conversation with the ChatApi matching
// modelID (empty string means "first available"), falling back to the
// first available Prompter whenever the conversation needs a new User
// turn. onMessage, if non-nil, is invoked with every message appended to
// the conversation (both Assistant replies and new User turns).
func Chat(messages []provider.Message, modelID string, onMessage func(provider.Message)) *job.Job[[]provider.Message] {
	var j *job.Job[[]provider.Message]
	j = job.New(func(ctx context.Context, assets *job.Assets) ([]provider.Message, error) {
		chatApi, err := assets.ChatModel(ctx, modelID)
		if err != nil {
			return messages, err
		}
		prompter, err := assets.FirstPrompter()
		if err != nil {
			return messages, err
		}

		for {
			var last provider.Message
			if len(messages) > 0 {
				last = messages[len(messages)-1]
			}

			switch last.Role {
			case provider.RoleUser:
				resp, err := chatApi.Generate(ctx, messages, provider.ChatOptions{ModelID: modelID})
				if err != nil {
					return messages, err
				}
				assistant := provider.AssistantMessage(resp.ContentParts, resp.ToolCalls)
				messages = append(messages, assistant)
				if onMessage != nil {
					onMessage(assistant)
				}

			case provider.RoleTool:
				return messages, extension.ErrToolNotAvailable

			default:
				input, err := promptFor(ctx, prompter, j.AssetSender())
				if errors.Is(err, provider.ErrCanceled) {
					return messages, nil
				}
				if err != nil {
					return messages, err
				}
				user := provider.UserMessage(provider.TextPart(input))
				messages = append(messages, user)
				if onMessage != nil {
					onMessage(user)
				}
			}
		}
	})
	return j
}

// promptFor asks the user via prompter, using the richer AssetAwarePrompter
// upgrade (which can inject assets mid-prompt, e.g. an attached file) if
// prompter implements it.
func promptFor(ctx context.Context, prompter provider.Prompter, sender job.Sender) (string, error) {
	if aware, ok := prompter.(job.AssetAwarePrompter); ok {
		return aware.PromptWithAssets(ctx, promptMessage, sender)
	}
	return prompter.Prompt(ctx, promptMessage)
}
