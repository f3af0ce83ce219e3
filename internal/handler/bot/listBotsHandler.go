package bot

import (
	"net/http"

	"github.com/fablebox/FableTalk/internal/logic/bot"
	"github.com/fablebox/FableTalk/internal/svc"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func ListBotsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := bot.NewListBotsLogic(r.Context(), svcCtx)
		resp, err := l.ListBots()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
