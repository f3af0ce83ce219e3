package bot

import (
	"context"

	"github.com/fablebox/FableTalk/internal/svc"
	"github.com/fablebox/FableTalk/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type DeleteBotLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDeleteBotLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteBotLogic {
	return &DeleteBotLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// DeleteBot 删除 bot 及其全部会话状态和语音缓存。
func (l *DeleteBotLogic) DeleteBot(req *types.BotRequest) (resp *types.BaseResponse, err error) {
	if _, err := l.svcCtx.Bots.Remove(req.Name); err != nil {
		return &types.BaseResponse{Code: types.CodeNotFound, Message: err.Error()}, nil
	}

	l.svcCtx.Engine.DeleteBotState(req.Name)
	l.Infof("bot removed: %s", req.Name)
	return &types.BaseResponse{Code: types.CodeOK, Message: "success"}, nil
}
