package bot

import (
	"fmt"

	"github.com/fablebox/FableTalk/internal/svc"
	"github.com/fablebox/FableTalk/pkg/model"
)

// validateVoice 校验 bot 的语音配置；情绪必须是 TTS 服务支持的值。
// TTS 未注册或还没就绪时跳过校验，创建不应被语音服务阻塞。
func validateVoice(svcCtx *svc.ServiceContext, b *model.Bot) error {
	if !b.Voice.Enabled || b.Voice.Emotion == "" {
		return nil
	}

	tts, err := svcCtx.Registry.GetTTS("local")
	if err != nil {
		return nil
	}
	emotions := tts.AvailableEmotions()
	if len(emotions) == 0 {
		return nil
	}
	for _, e := range emotions {
		if e == b.Voice.Emotion {
			return nil
		}
	}
	return fmt.Errorf("unsupported voice emotion: %s", b.Voice.Emotion)
}
