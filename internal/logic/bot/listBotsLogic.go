package bot

import (
	"context"

	"github.com/fablebox/FableTalk/internal/svc"
	"github.com/fablebox/FableTalk/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListBotsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListBotsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListBotsLogic {
	return &ListBotsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListBotsLogic) ListBots() (resp *types.BotListResponse, err error) {
	return &types.BotListResponse{
		Code:    types.CodeOK,
		Message: "success",
		Data:    l.svcCtx.Bots.List(),
	}, nil
}
