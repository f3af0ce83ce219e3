package enhance

import (
	"context"

	"github.com/fablebox/FableTalk/internal/svc"
	"github.com/fablebox/FableTalk/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type EnhanceTextLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewEnhanceTextLogic(ctx context.Context, svcCtx *svc.ServiceContext) *EnhanceTextLogic {
	return &EnhanceTextLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// EnhanceText 用 LLM 润色 bot 编辑器里的单个字段文本。
func (l *EnhanceTextLogic) EnhanceText(req *types.EnhanceRequest) (resp *types.EnhanceResponse, err error) {
	improved, err := l.svcCtx.Gateway.EnhanceText(l.ctx, req.Text, req.Field, req.Context)
	if err != nil {
		l.Errorf("enhance failed: %v", err)
		return &types.EnhanceResponse{Code: types.CodeServiceError, Message: "enhancement failed, please try again"}, nil
	}

	return &types.EnhanceResponse{
		Code:    types.CodeOK,
		Message: "success",
		Text:    improved,
	}, nil
}
