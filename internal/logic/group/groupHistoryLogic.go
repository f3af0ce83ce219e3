package group

import (
	"context"

	"github.com/fablebox/FableTalk/internal/svc"
	"github.com/fablebox/FableTalk/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GroupHistoryLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGroupHistoryLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GroupHistoryLogic {
	return &GroupHistoryLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GroupHistoryLogic) GroupHistory(req *types.GroupHistoryRequest) (resp *types.GroupHistoryResponse, err error) {
	history, err := l.svcCtx.Groups.History(req.ID)
	if err != nil {
		return &types.GroupHistoryResponse{Code: types.CodeNotFound, Message: "no such group"}, nil
	}

	return &types.GroupHistoryResponse{
		Code:    types.CodeOK,
		Message: "success",
		Data:    history,
	}, nil
}
