package chat

import (
	"context"

	"github.com/fablebox/FableTalk/internal/svc"
	"github.com/fablebox/FableTalk/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GenerateReplyLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGenerateReplyLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GenerateReplyLogic {
	return &GenerateReplyLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// GenerateReply 针对最后一条用户消息生成回复并追加到对话中。
func (l *GenerateReplyLogic) GenerateReply(req *types.ChatRequest) (resp *types.ReplyResponse, err error) {
	reply, err := l.svcCtx.Engine.GenerateAndAppendResponse(l.ctx, req.Bot)
	if err != nil {
		code, msg := codeFor(err)
		return &types.ReplyResponse{Code: code, Message: msg}, nil
	}

	return &types.ReplyResponse{
		Code:    types.CodeOK,
		Message: "success",
		Reply:   reply,
	}, nil
}
