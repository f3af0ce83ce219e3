package bot

import (
	"context"

	"github.com/fablebox/FableTalk/internal/svc"
	"github.com/fablebox/FableTalk/internal/types"
	"github.com/fablebox/FableTalk/pkg/model"

	"github.com/zeromicro/go-zero/core/logx"
)

type UpdateBotLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUpdateBotLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UpdateBotLogic {
	return &UpdateBotLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UpdateBotLogic) UpdateBot(req *types.UpdateBotRequest) (resp *types.BotResponse, err error) {
	b := model.FromRecord(req.Record)
	if err := validateVoice(l.svcCtx, b); err != nil {
		return &types.BotResponse{Code: types.CodeBadRequest, Message: err.Error()}, nil
	}

	updated, err := l.svcCtx.Bots.Update(req.Name, b)
	if err != nil {
		return &types.BotResponse{Code: types.CodeNotFound, Message: err.Error()}, nil
	}

	return &types.BotResponse{
		Code:    types.CodeOK,
		Message: "success",
		Data:    updated,
	}, nil
}
