package image

import (
	"context"
	"encoding/base64"

	"github.com/fablebox/FableTalk/internal/svc"
	"github.com/fablebox/FableTalk/internal/types"
	"github.com/fablebox/FableTalk/pkg/provider"

	"github.com/zeromicro/go-zero/core/logx"
)

type GenerateImageLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGenerateImageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GenerateImageLogic {
	return &GenerateImageLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// GenerateImage 调用 Stable Diffusion WebUI 生成头像图片。
func (l *GenerateImageLogic) GenerateImage(req *types.GenerateImageRequest) (resp *types.GenerateImageResponse, err error) {
	if req.Prompt == "" {
		return &types.GenerateImageResponse{Code: types.CodeBadRequest, Message: "prompt required"}, nil
	}

	img, err := l.svcCtx.Registry.GetImage("sd-webui")
	if err != nil {
		return &types.GenerateImageResponse{Code: types.CodeServiceError, Message: "image generation is not available"}, nil
	}

	data, err := img.Txt2Img(l.ctx, &provider.ImageRequest{
		Prompt:         req.Prompt,
		NegativePrompt: req.NegativePrompt,
		Steps:          req.Steps,
		CfgScale:       req.CfgScale,
		Width:          req.Width,
		Height:         req.Height,
		Sampler:        req.Sampler,
	})
	if err != nil {
		l.Errorf("txt2img failed: %v", err)
		return &types.GenerateImageResponse{Code: types.CodeServiceError, Message: "image generation failed"}, nil
	}

	return &types.GenerateImageResponse{
		Code:    types.CodeOK,
		Message: "success",
		Image:   base64.StdEncoding.EncodeToString(data),
	}, nil
}
