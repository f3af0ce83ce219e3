package chat

import (
	"context"

	"github.com/fablebox/FableTalk/internal/svc"
	"github.com/fablebox/FableTalk/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type BeginVoiceLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewBeginVoiceLogic(ctx context.Context, svcCtx *svc.ServiceContext) *BeginVoiceLogic {
	return &BeginVoiceLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// BeginVoice 发起某条回复的语音合成；重复请求不会触发二次合成，
// 只返回当前状态。
func (l *BeginVoiceLogic) BeginVoice(req *types.MessageIndexRequest) (resp *types.VoiceResponse, err error) {
	state, err := l.svcCtx.Engine.BeginVoice(req.Bot, req.Index)
	if err != nil {
		code, msg := codeFor(err)
		return &types.VoiceResponse{Code: code, Message: msg}, nil
	}

	_, path := l.svcCtx.Engine.VoiceStatus(req.Bot, req.Index)
	return &types.VoiceResponse{
		Code:    types.CodeOK,
		Message: "success",
		Data: types.VoiceData{
			State: string(state),
			Path:  path,
		},
	}, nil
}
