package provider

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Stable Diffusion WebUI 的 txt2img Provider 实现
type SDWebUIProvider struct {
	baseURL string
	client  *http.Client
}

func NewSDWebUIProvider(baseURL string) *SDWebUIProvider {
	if baseURL == "" {
		baseURL = "http://127.0.0.1:7860"
	}
	return &SDWebUIProvider{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 300 * time.Second, // 出图可能很慢
		},
	}
}

func (p *SDWebUIProvider) Name() string {
	return "sd-webui"
}

// WebUI API 请求结构
type sdTxt2ImgRequest struct {
	Prompt         string  `json:"prompt"`
	NegativePrompt string  `json:"negative_prompt,omitempty"`
	Steps          int     `json:"steps"`
	CfgScale       float64 `json:"cfg_scale"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	SamplerName    string  `json:"sampler_name,omitempty"`
}

// WebUI API 响应结构
type sdTxt2ImgResponse struct {
	Images []string `json:"images"` // base64 编码的图片列表
	Info   string   `json:"info,omitempty"`
}

func (p *SDWebUIProvider) Txt2Img(ctx context.Context, req *ImageRequest) ([]byte, error) {
	sdReq := sdTxt2ImgRequest{
		Prompt:         req.Prompt,
		NegativePrompt: req.NegativePrompt,
		Steps:          req.Steps,
		CfgScale:       req.CfgScale,
		Width:          req.Width,
		Height:         req.Height,
		SamplerName:    req.Sampler,
	}

	// 填充默认参数
	if sdReq.Steps <= 0 {
		sdReq.Steps = 25
	}
	if sdReq.CfgScale <= 0 {
		sdReq.CfgScale = 7.0
	}
	if sdReq.Width <= 0 {
		sdReq.Width = 512
	}
	if sdReq.Height <= 0 {
		sdReq.Height = 512
	}

	reqBody, err := json.Marshal(sdReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", p.baseURL+"/sdapi/v1/txt2img", bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var sdResp sdTxt2ImgResponse
	if err := json.NewDecoder(resp.Body).Decode(&sdResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(sdResp.Images) == 0 {
		return nil, fmt.Errorf("no images in response")
	}

	imageData, err := base64.StdEncoding.DecodeString(sdResp.Images[0])
	if err != nil {
		return nil, fmt.Errorf("failed to decode image data: %w", err)
	}

	return imageData, nil
}
