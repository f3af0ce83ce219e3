package chat

import (
	"context"

	"github.com/fablebox/FableTalk/internal/svc"
	"github.com/fablebox/FableTalk/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type EditMessageLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewEditMessageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *EditMessageLogic {
	return &EditMessageLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// EditMessage 修改某条用户消息并截掉其后的所有轮次，
// 返回截断后的历史，前端据此整体刷新。
func (l *EditMessageLogic) EditMessage(req *types.EditMessageRequest) (resp *types.HistoryResponse, err error) {
	if err := l.svcCtx.Engine.EditUserMessage(req.Bot, req.Index, req.Content); err != nil {
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
