package chat

import (
	"net/http"

	"github.com/fablebox/FableTalk/internal/logic/chat"
	"github.com/fablebox/FableTalk/internal/svc"
	"github.com/fablebox/FableTalk/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func BeginVoiceHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.MessageIndexRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := chat.NewBeginVoiceLogic(r.Context(), svcCtx)
		resp, err := l.BeginVoice(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
