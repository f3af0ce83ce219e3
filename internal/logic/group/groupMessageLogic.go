package group

import (
	"context"

	"github.com/fablebox/FableTalk/internal/svc"
	"github.com/fablebox/FableTalk/internal/types"
	"github.com/fablebox/FableTalk/pkg/model"

	"github.com/zeromicro/go-zero/core/logx"
)

type GroupMessageLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGroupMessageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GroupMessageLogic {
	return &GroupMessageLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// GroupMessage 处理一条群聊用户消息。指定 speaker 时只有该成员回复，
// 否则所有成员按加入顺序依次回复；每个 bot 只依据自己的记忆窗口生成，
// 其他成员的发言以 "bot名: 内容" 的形式出现在它的记忆里。
func (l *GroupMessageLogic) GroupMessage(req *types.GroupMessageRequest) (resp *types.GroupMessageResponse, err error) {
	session, ok := l.svcCtx.Groups.Get(req.ID)
	if !ok {
		return &types.GroupMessageResponse{Code: types.CodeNotFound, Message: "no such group"}, nil
	}

	var responders []string
	if req.Speaker != "" {
		found := false
		for _, name := range session.Participants {
			if name == req.Speaker {
				found = true
				break
			}
		}
		if !found {
			return &types.GroupMessageResponse{Code: types.CodeBadRequest, Message: "speaker is not in this group"}, nil
		}
		responders = []string{req.Speaker}
	} else {
		responders = session.Participants
	}

	if err := l.svcCtx.Groups.AppendUser(req.ID, req.Content); err != nil {
		return &types.GroupMessageResponse{Code: types.CodeNotFound, Message: err.Error()}, nil
	}

	var replies []model.GroupMessage
	for _, name := range responders {
		b, ok := l.svcCtx.Bots.Get(name)
		if !ok {
			l.Errorf("group %s references unknown bot %s, skipping", req.ID, name)
			continue
		}

		input, _ := l.svcCtx.Groups.PendingFor(req.ID, name)
		memory, err := l.svcCtx.Groups.MemoryFor(req.ID, name)
		if err != nil {
			continue
		}

		// 生成调用在锁外，AppendBot 负责把回复同步进所有成员的记忆
		reply := l.svcCtx.Gateway.Generate(l.ctx, b, memory, input)
		if err := l.svcCtx.Groups.AppendBot(req.ID, name, reply); err != nil {
			continue
		}
		replies = append(replies, model.GroupMessage{
			Role:    model.RoleAssistant,
			Content: reply,
			Speaker: name,
		})
	}

	return &types.GroupMessageResponse{
		Code:    types.CodeOK,
		Message: "success",
		Replies: replies,
	}, nil
}
