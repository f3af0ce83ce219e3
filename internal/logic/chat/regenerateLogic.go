package chat

import (
	"context"

	"github.com/fablebox/FableTalk/internal/svc"
	"github.com/fablebox/FableTalk/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type RegenerateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRegenerateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RegenerateLogic {
	return &RegenerateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Regenerate 丢弃最后一条回复并基于相同的用户输入重新生成。
func (l *RegenerateLogic) Regenerate(req *types.ChatRequest) (resp *types.ReplyResponse, err error) {
	reply, err := l.svcCtx.Engine.RegenerateLast(l.ctx, req.Bot)
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
