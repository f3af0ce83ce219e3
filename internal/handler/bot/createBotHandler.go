package bot

import (
	"net/http"

	"github.com/fablebox/FableTalk/internal/logic/bot"
	"github.com/fablebox/FableTalk/internal/svc"
	"github.com/fablebox/FableTalk/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func CreateBotHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.CreateBotRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := bot.NewCreateBotLogic(r.Context(), svcCtx)
		resp, err := l.CreateBot(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
