package chat

import (
	"context"

	"github.com/fablebox/FableTalk/internal/svc"
	"github.com/fablebox/FableTalk/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type SendMessageLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSendMessageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SendMessageLogic {
	return &SendMessageLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SendMessage 只追加用户消息，不触发回复；空白内容也照常入库，
// 由 gateway 在生成阶段兜底处理。
func (l *SendMessageLogic) SendMessage(req *types.SendMessageRequest) (resp *types.BaseResponse, err error) {
	if err := l.svcCtx.Engine.EnsureGreeting(l.ctx, req.Bot); err != nil {
		code, msg := codeFor(err)
		return &types.BaseResponse{Code: code, Message: msg}, nil
	}

	if err := l.svcCtx.Engine.SendUserMessage(req.Bot, req.Content); err != nil {
		code, msg := codeFor(err)
		return &types.BaseResponse{Code: code, Message: msg}, nil
	}

	return &types.BaseResponse{Code: types.CodeOK, Message: "success"}, nil
}
