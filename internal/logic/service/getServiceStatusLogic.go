package service

import (
	"context"

	"github.com/fablebox/FableTalk/internal/svc"
	"github.com/fablebox/FableTalk/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetServiceStatusLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetServiceStatusLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetServiceStatusLogic {
	return &GetServiceStatusLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetServiceStatusLogic) GetServiceStatus(req *types.ServiceStatusRequest) (resp *types.ServiceStatusResponse, err error) {
	// 获取特定 Provider 的信息
	providerInfo, err := l.svcCtx.Registry.GetProviderInfo(req.Type, req.Name)
	if err != nil {
		return &types.ServiceStatusResponse{
			Code:    types.CodeNotFound,
			Message: err.Error(),
		}, nil
	}

	return &types.ServiceStatusResponse{
		Code:    types.CodeOK,
		Message: "success",
		Data: &types.ProviderInfo{
			Name:         providerInfo.Name,
			Type:         providerInfo.Type,
			Status:       providerInfo.Status,
			Capabilities: providerInfo.Capabilities,
		},
	}, nil
}
