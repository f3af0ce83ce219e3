package types

import "github.com/fablebox/FableTalk/pkg/model"

// 统一的业务错误码
const (
	CodeOK            = 0
	CodeInvalidIndex  = 1001
	CodeInvalidRole   = 1002
	CodeInvalidState  = 1003
	CodeNotFound      = 1004
	CodeVoiceDisabled = 1005
	CodeBadRequest    = 1006
	CodeServiceError  = 1500
)

type BaseResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// 健康检查

type HealthResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Bot 管理

type BotRequest struct {
	Name string `path:"name"`
}

type CreateBotRequest struct {
	Record map[string]interface{} `json:"bot"`
}

type UpdateBotRequest struct {
	Name   string                 `path:"name"`
	Record map[string]interface{} `json:"bot"`
}

type BotResponse struct {
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    *model.Bot `json:"data,omitempty"`
}

type BotListResponse struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Data    []*model.Bot `json:"data"`
}

// 对话

type ChatRequest struct {
	Bot string `path:"bot"`
}

type SendMessageRequest struct {
	Bot     string `path:"bot"`
	Content string `json:"content"`
}

type EditMessageRequest struct {
	Bot     string `path:"bot"`
	Index   int    `path:"index"`
	Content string `json:"content"`
}

type MessageIndexRequest struct {
	Bot   string `path:"bot"`
	Index int    `path:"index"`
}

type HistoryResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    []model.Message `json:"data"`
}

type ReplyResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Reply   string `json:"reply,omitempty"`
}

// 语音

type VoiceData struct {
	State string `json:"state"` // absent|generating|ready
	Path  string `json:"path,omitempty"`
}

type VoiceResponse struct {
	Code    int       `json:"code"`
	Message string    `json:"message"`
	Data    VoiceData `json:"data"`
}

// 群聊

type CreateGroupRequest struct {
	Participants []string `json:"participants"`
}

type GroupResponse struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	ID      string   `json:"id,omitempty"`
	Members []string `json:"members,omitempty"`
}

type GroupMessageRequest struct {
	ID      string `path:"id"`
	Content string `json:"content"`
	// Speaker 指定哪个 bot 回复；为空则所有成员依次回复
	Speaker string `json:"speaker,omitempty"`
}

type GroupMessageResponse struct {
	Code    int                  `json:"code"`
	Message string               `json:"message"`
	Replies []model.GroupMessage `json:"replies,omitempty"`
}

type GroupHistoryRequest struct {
	ID string `path:"id"`
}

type GroupHistoryResponse struct {
	Code    int                  `json:"code"`
	Message string               `json:"message"`
	Data    []model.GroupMessage `json:"data"`
}

// 图片生成

type GenerateImageRequest struct {
	Prompt         string  `json:"prompt"`
	NegativePrompt string  `json:"negativePrompt,omitempty"`
	Steps          int     `json:"steps,omitempty"`
	CfgScale       float64 `json:"cfgScale,omitempty"`
	Width          int     `json:"width,omitempty"`
	Height         int     `json:"height,omitempty"`
	Sampler        string  `json:"sampler,omitempty"`
}

type GenerateImageResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Image   string `json:"image,omitempty"` // base64 编码
}

// 文本润色

type EnhanceRequest struct {
	Text    string `json:"text"`
	Field   string `json:"field"`
	Context string `json:"context,omitempty"`
}

type EnhanceResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Text    string `json:"text,omitempty"`
}

// 服务发现

type ProviderInfo struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Status       string   `json:"status"`
	Capabilities []string `json:"capabilities,omitempty"`
}

type ServiceListResponse struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    []ProviderInfo `json:"data"`
}

type ServicesByTypeRequest struct {
	Type string `path:"type"`
}

type ServiceStatusRequest struct {
	Type string `path:"type"`
	Name string `path:"name"`
}

type ServiceStatusResponse struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Data    *ProviderInfo `json:"data,omitempty"`
}
