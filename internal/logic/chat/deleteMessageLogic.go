package chat

import (
	"context"

	"github.com/fablebox/FableTalk/internal/svc"
	"github.com/fablebox/FableTalk/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type DeleteMessageLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDeleteMessageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteMessageLogic {
	return &DeleteMessageLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// DeleteMessage 删除某条消息及其后的所有内容，开场白不可删除。
func (l *DeleteMessageLogic) DeleteMessage(req *types.MessageIndexRequest) (resp *types.HistoryResponse, err error) {
	if err := l.svcCtx.Engine.DeleteMessage(req.Bot, req.Index); err != nil {
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
