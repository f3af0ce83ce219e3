package chat

import (
	"context"

	"github.com/fablebox/FableTalk/internal/svc"
	"github.com/fablebox/FableTalk/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ClearChatLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewClearChatLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ClearChatLogic {
	return &ClearChatLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// ClearChat 清空对话与关联的语音缓存，下一次拉取历史会重新发开场白。
func (l *ClearChatLogic) ClearChat(req *types.ChatRequest) (resp *types.BaseResponse, err error) {
	if err := l.svcCtx.Engine.ClearConversation(req.Bot); err != nil {
		code, msg := codeFor(err)
		return &types.BaseResponse{Code: code, Message: msg}, nil
	}

	return &types.BaseResponse{Code: types.CodeOK, Message: "success"}, nil
}
