package service

import (
	"net/http"

	"github.com/fablebox/FableTalk/internal/logic/service"
	"github.com/fablebox/FableTalk/internal/svc"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func GetServicesHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := service.NewGetServicesLogic(r.Context(), svcCtx)
		resp, err := l.GetServices()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
