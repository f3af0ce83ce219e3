package chat

import (
	"errors"

	"github.com/fablebox/FableTalk/internal/conversation"
	"github.com/fablebox/FableTalk/internal/types"
)

// codeFor 把 edit engine 的拒绝原因映射成业务错误码；
// 被拒绝的操作不产生任何状态变更，调用方可以把 message 直接展示给用户。
func codeFor(err error) (int, string) {
	switch {
	case errors.Is(err, conversation.ErrInvalidIndex):
		return types.CodeInvalidIndex, "that message position is out of range or protected"
	case errors.Is(err, conversation.ErrInvalidRole):
		return types.CodeInvalidRole, "only your own messages can be edited"
	case errors.Is(err, conversation.ErrInvalidState):
		return types.CodeInvalidState, "the conversation is not in a state that allows this"
	case errors.Is(err, conversation.ErrNotFound):
		return types.CodeNotFound, "no such bot or conversation"
	case errors.Is(err, conversation.ErrVoiceDisabled):
		return types.CodeVoiceDisabled, "voice is not enabled for this bot"
	default:
		return types.CodeServiceError, err.Error()
	}
}
