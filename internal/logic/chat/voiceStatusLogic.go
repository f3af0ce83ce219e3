package chat

import (
	"context"

	"github.com/fablebox/FableTalk/internal/svc"
	"github.com/fablebox/FableTalk/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type VoiceStatusLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewVoiceStatusLogic(ctx context.Context, svcCtx *svc.ServiceContext) *VoiceStatusLogic {
	return &VoiceStatusLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// VoiceStatus 查询某条回复的语音合成状态，供前端轮询。
func (l *VoiceStatusLogic) VoiceStatus(req *types.MessageIndexRequest) (resp *types.VoiceResponse, err error) {
	state, path := l.svcCtx.Engine.VoiceStatus(req.Bot, req.Index)
	return &types.VoiceResponse{
		Code:    types.CodeOK,
		Message: "success",
		Data: types.VoiceData{
			State: string(state),
			Path:  path,
		},
	}, nil
}
