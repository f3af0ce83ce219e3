package bot

import (
	"net/http"

	"github.com/fablebox/FableTalk/internal/logic/bot"
	"github.com/fablebox/FableTalk/internal/svc"
	"github.com/fablebox/FableTalk/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func DeleteBotHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.BotRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := bot.NewDeleteBotLogic(r.Context(), svcCtx)
		resp, err := l.DeleteBot(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
