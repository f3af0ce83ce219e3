package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/fablebox/FableTalk/internal/svc"

	"github.com/gorilla/websocket"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	MessageTypeConfig   = "config"
	MessageTypeText     = "text"
	MessageTypeVoice    = "voice"
	MessageTypeHistory  = "history"
	MessageTypeResponse = "response"
	MessageTypeError    = "error"
)

type ChatStreamLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
	// WebSocket写入互斥锁 - 每个连接一个
	wsWriteMutex sync.Mutex
}

func NewChatStreamLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChatStreamLogic {
	return &ChatStreamLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// WebSocket 消息结构
type WSMessage struct {
	Type      string      `json:"type"`
	Content   interface{} `json:"content,omitempty"`
	Timestamp int64       `json:"timestamp,omitempty"`
}

// 配置消息：选择会话使用的 bot
type ConfigMessage struct {
	Bot string `json:"bot"`
}

// 错误消息
type ErrorMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (l *ChatStreamLogic) HandleWebSocket(conn *websocket.Conn) {
	defer conn.Close()

	// 会话状态
	var config ConfigMessage

	// 发送欢迎消息
	l.sendMessage(conn, &WSMessage{
		Type:      "welcome",
		Content:   "WebSocket connection established. Send config to start.",
		Timestamp: time.Now().Unix(),
	})

	// 主消息循环
	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logx.Errorf("WebSocket error: %v", err)
			}
			break
		}

		if messageType != websocket.TextMessage {
			l.sendError(conn, 400, "Unsupported message type")
			continue
		}

		var msg WSMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			l.sendError(conn, 400, "Invalid JSON message: "+err.Error())
			continue
		}

		switch msg.Type {
		case MessageTypeConfig:
			if err := l.handleConfig(&msg, &config); err != nil {
				l.sendError(conn, 400, err.Error())
				continue
			}
			l.sendMessage(conn, &WSMessage{
				Type:      "config_updated",
				Content:   "Configuration updated successfully",
				Timestamp: time.Now().Unix(),
			})
			// 选定 bot 后立即推送当前历史（含开场白）
			l.pushHistory(&config, conn)

		case MessageTypeText:
			l.handleTextInput(&msg, &config, conn)

		case MessageTypeVoice:
			l.handleVoiceRequest(&msg, &config, conn)

		default:
			l.sendError(conn, 400, "Unknown message type: "+msg.Type)
		}
	}
}

// 处理配置消息
func (l *ChatStreamLogic) handleConfig(msg *WSMessage, config *ConfigMessage) error {
	configData, ok := msg.Content.(map[string]interface{})
	if !ok {
		return fmt.Errorf("invalid config format")
	}

	// 将 map 转换为 ConfigMessage
	configBytes, err := json.Marshal(configData)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(configBytes, config); err != nil {
		return err
	}

	if config.Bot == "" {
		return fmt.Errorf("missing bot name in config")
	}
	if _, ok := l.svcCtx.Bots.Get(config.Bot); !ok {
		return fmt.Errorf("unknown bot: %s", config.Bot)
	}
	return nil
}

// 推送当前对话历史
func (l *ChatStreamLogic) pushHistory(config *ConfigMessage, conn *websocket.Conn) {
	if err := l.svcCtx.Engine.EnsureGreeting(l.ctx, config.Bot); err != nil {
		l.sendError(conn, 500, err.Error())
		return
	}
	history, err := l.svcCtx.Engine.History(config.Bot)
	if err != nil {
		l.sendError(conn, 500, err.Error())
		return
	}
	l.sendMessage(conn, &WSMessage{
		Type:      MessageTypeHistory,
		Content:   history,
		Timestamp: time.Now().Unix(),
	})
}

// 处理文本输入：记录用户消息并生成回复
func (l *ChatStreamLogic) handleTextInput(msg *WSMessage, config *ConfigMessage, conn *websocket.Conn) {
	if config.Bot == "" {
		l.sendError(conn, 400, "Send config with a bot name first")
		return
	}

	textData, ok := msg.Content.(map[string]interface{})
	if !ok {
		l.sendError(conn, 400, "Invalid text format")
		return
	}

	text, ok := textData["content"].(string)
	if !ok {
		l.sendError(conn, 400, "Missing text content")
		return
	}

	if err := l.svcCtx.Engine.EnsureGreeting(l.ctx, config.Bot); err != nil {
		l.sendError(conn, 500, err.Error())
		return
	}
	if err := l.svcCtx.Engine.SendUserMessage(config.Bot, text); err != nil {
		l.sendError(conn, 500, err.Error())
		return
	}

	// 发送处理状态
	l.sendMessage(conn, &WSMessage{
		Type:      "status",
		Content:   map[string]interface{}{"status": "processing_llm", "message": "正在生成回复..."},
		Timestamp: time.Now().Unix(),
	})

	reply, err := l.svcCtx.Engine.GenerateAndAppendResponse(l.ctx, config.Bot)
	if err != nil {
		l.sendError(conn, 500, err.Error())
		return
	}

	l.sendMessage(conn, &WSMessage{
		Type: MessageTypeResponse,
		Content: map[string]interface{}{
			"bot":  config.Bot,
			"text": reply,
		},
		Timestamp: time.Now().Unix(),
	})
}

// 处理语音请求：发起合成并返回当前状态，客户端自行轮询
func (l *ChatStreamLogic) handleVoiceRequest(msg *WSMessage, config *ConfigMessage, conn *websocket.Conn) {
	if config.Bot == "" {
		l.sendError(conn, 400, "Send config with a bot name first")
		return
	}

	voiceData, ok := msg.Content.(map[string]interface{})
	if !ok {
		l.sendError(conn, 400, "Invalid voice request format")
		return
	}

	indexVal, ok := voiceData["index"].(float64)
	if !ok {
		l.sendError(conn, 400, "Missing message index")
		return
	}

	state, err := l.svcCtx.Engine.BeginVoice(config.Bot, int(indexVal))
	if err != nil {
		l.sendError(conn, 500, err.Error())
		return
	}

	_, path := l.svcCtx.Engine.VoiceStatus(config.Bot, int(indexVal))
	l.sendMessage(conn, &WSMessage{
		Type: MessageTypeVoice,
		Content: map[string]interface{}{
			"index": int(indexVal),
			"state": string(state),
			"path":  path,
		},
		Timestamp: time.Now().Unix(),
	})
}

// 发送消息 - 使用互斥锁确保线程安全
func (l *ChatStreamLogic) sendMessage(conn *websocket.Conn, msg *WSMessage) {
	l.wsWriteMutex.Lock()
	defer l.wsWriteMutex.Unlock()

	if err := conn.WriteJSON(msg); err != nil {
		logx.Errorf("Failed to send WebSocket message: %v", err)
	}
}

// 发送错误消息
func (l *ChatStreamLogic) sendError(conn *websocket.Conn, code int, message string) {
	l.sendMessage(conn, &WSMessage{
		Type: MessageTypeError,
		Content: ErrorMessage{
			Code:    code,
			Message: message,
		},
		Timestamp: time.Now().Unix(),
	})
}
