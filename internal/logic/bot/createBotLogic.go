package bot

import (
	"context"

	"github.com/fablebox/FableTalk/internal/svc"
	"github.com/fablebox/FableTalk/internal/types"
	"github.com/fablebox/FableTalk/pkg/model"

	"github.com/zeromicro/go-zero/core/logx"
)

type CreateBotLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreateBotLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateBotLogic {
	return &CreateBotLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// CreateBot 接受宽松的记录格式，缺失字段走默认值，类型不对的字段忽略。
func (l *CreateBotLogic) CreateBot(req *types.CreateBotRequest) (resp *types.BotResponse, err error) {
	b := model.FromRecord(req.Record)
	if err := validateVoice(l.svcCtx, b); err != nil {
		return &types.BotResponse{Code: types.CodeBadRequest, Message: err.Error()}, nil
	}

	created, err := l.svcCtx.Bots.Add(b)
	if err != nil {
		return &types.BotResponse{Code: types.CodeBadRequest, Message: err.Error()}, nil
	}

	l.Infof("bot created: %s", created.Name)
	return &types.BotResponse{
		Code:    types.CodeOK,
		Message: "success",
		Data:    created,
	}, nil
}
