package group

import (
	"context"

	"github.com/fablebox/FableTalk/internal/svc"
	"github.com/fablebox/FableTalk/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type CreateGroupLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCreateGroupLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateGroupLogic {
	return &CreateGroupLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// CreateGroup 创建群聊会话，所有成员必须是已注册的 bot。
func (l *CreateGroupLogic) CreateGroup(req *types.CreateGroupRequest) (resp *types.GroupResponse, err error) {
	if len(req.Participants) == 0 {
		return &types.GroupResponse{Code: types.CodeBadRequest, Message: "participants required"}, nil
	}
	for _, name := range req.Participants {
		if _, ok := l.svcCtx.Bots.Get(name); !ok {
			return &types.GroupResponse{Code: types.CodeNotFound, Message: "no such bot: " + name}, nil
		}
	}

	session := l.svcCtx.Groups.Create(req.Participants)
	l.Infof("group created: %s with %d participants", session.ID, len(req.Participants))
	return &types.GroupResponse{
		Code:    types.CodeOK,
		Message: "success",
		ID:      session.ID,
		Members: session.Participants,
	}, nil
}
