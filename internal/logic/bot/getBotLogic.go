package bot

import (
	"context"

	"github.com/fablebox/FableTalk/internal/svc"
	"github.com/fablebox/FableTalk/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetBotLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetBotLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetBotLogic {
	return &GetBotLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetBotLogic) GetBot(req *types.BotRequest) (resp *types.BotResponse, err error) {
	b, ok := l.svcCtx.Bots.Get(req.Name)
	if !ok {
		return &types.BotResponse{Code: types.CodeNotFound, Message: "no such bot"}, nil
	}

	return &types.BotResponse{
		Code:    types.CodeOK,
		Message: "success",
		Data:    b,
	}, nil
}
