package chat

import (
	"context"

	"github.com/fablebox/FableTalk/internal/svc"
	"github.com/fablebox/FableTalk/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetHistoryLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetHistoryLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetHistoryLogic {
	return &GetHistoryLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetHistoryLogic) GetHistory(req *types.ChatRequest) (resp *types.HistoryResponse, err error) {
	// 首次拉取历史时补发开场白，之后是幂等操作
	if err := l.svcCtx.Engine.EnsureGreeting(l.ctx, req.Bot); err != nil {
		code, msg := codeFor(err)
		return &types.HistoryResponse{Code: code, Message: msg}, nil
	}

	history, err := l.svcCtx.Engine.History(req.Bot)
	if err != nil {
		code, msg := codeFor(err)
		return &types.HistoryResponse{Code: code, Message: msg}, nil
	}

	return &types.HistoryResponse{
		Code:    types.CodeOK,
		Message: "success",
		Data:    history,
	}, nil
}
