package handler

import (
	"net/http"

	"github.com/fablebox/FableTalk/internal/handler/bot"
	"github.com/fablebox/FableTalk/internal/handler/chat"
	"github.com/fablebox/FableTalk/internal/handler/enhance"
	"github.com/fablebox/FableTalk/internal/handler/group"
	"github.com/fablebox/FableTalk/internal/handler/health"
	"github.com/fablebox/FableTalk/internal/handler/image"
	"github.com/fablebox/FableTalk/internal/handler/service"
	"github.com/fablebox/FableTalk/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/api/health",
				Handler: health.HealthHandler(serverCtx),
			},
		},
	)

	// Bot 管理
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/api/bots",
				Handler: bot.ListBotsHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/bots",
				Handler: bot.CreateBotHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/bots/:name",
				Handler: bot.GetBotHandler(serverCtx),
			},
			{
				Method:  http.MethodPut,
				Path:    "/api/bots/:name",
				Handler: bot.UpdateBotHandler(serverCtx),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/api/bots/:name",
				Handler: bot.DeleteBotHandler(serverCtx),
			},
		},
	)

	// 单聊
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/api/chat/:bot/history",
				Handler: chat.GetHistoryHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/chat/:bot/messages",
				Handler: chat.SendMessageHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/chat/:bot/reply",
				Handler: chat.GenerateReplyHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/chat/:bot/regenerate",
				Handler: chat.RegenerateHandler(serverCtx),
			},
			{
				Method:  http.MethodPut,
				Path:    "/api/chat/:bot/messages/:index",
				Handler: chat.EditMessageHandler(serverCtx),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/api/chat/:bot/messages/:index",
				Handler: chat.DeleteMessageHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/chat/:bot/clear",
				Handler: chat.ClearChatHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/chat/:bot/messages/:index/voice",
				Handler: chat.BeginVoiceHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/chat/:bot/messages/:index/voice",
				Handler: chat.VoiceStatusHandler(serverCtx),
			},
		},
	)

	// 群聊
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/api/groups",
				Handler: group.CreateGroupHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/groups/:id/messages",
				Handler: group.GroupMessageHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/groups/:id/history",
				Handler: group.GroupHistoryHandler(serverCtx),
			},
		},
	)

	// 服务发现
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/api/services",
				Handler: service.GetServicesHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/services/:type",
				Handler: service.GetServicesByTypeHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/services/:type/:name/status",
				Handler: service.GetServiceStatusHandler(serverCtx),
			},
		},
	)

	// 辅助能力
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/api/images/generate",
				Handler: image.GenerateImageHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/enhance",
				Handler: enhance.EnhanceTextHandler(serverCtx),
			},
		},
	)

	// WebSocket 实时聊天
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/ws/chat",
				Handler: chat.ChatStreamHandler(serverCtx),
			},
		},
	)
}
