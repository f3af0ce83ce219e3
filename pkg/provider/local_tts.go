package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
)

// 本地 TTS 服务 Provider。模型加载很慢，所以初始化放在后台线程，
// 其余组件只依赖 Uninitialized -> Initializing -> Ready | Failed 四个状态。
type LocalTTSProvider struct {
	baseURL  string
	audioDir string
	client   *http.Client

	mu       sync.Mutex
	status   Status
	initErr  error
	emotions []string
	readyCh  chan struct{}
}

func NewLocalTTSProvider(baseURL, audioDir string) *LocalTTSProvider {
	if baseURL == "" {
		baseURL = "http://127.0.0.1:5002"
	}
	if audioDir == "" {
		audioDir = os.TempDir()
	}
	return &LocalTTSProvider{
		baseURL:  baseURL,
		audioDir: audioDir,
		status:   StatusUninitialized,
		readyCh:  make(chan struct{}),
		client:   &http.Client{Timeout: 120 * time.Second},
	}
}

func (p *LocalTTSProvider) Name() string {
	return "local-tts"
}

// Initialize kicks off the background warm-up. Safe to call more than once;
// only the first call starts anything.
func (p *LocalTTSProvider) Initialize() {
	p.mu.Lock()
	if p.status != StatusUninitialized {
		p.mu.Unlock()
		return
	}
	p.status = StatusInitializing
	p.mu.Unlock()

	go p.warmUp()
}

func (p *LocalTTSProvider) warmUp() {
	emotions, err := p.fetchEmotions()

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		logx.Errorf("TTS warm-up failed: %v", err)
		p.status = StatusFailed
		p.initErr = err
		close(p.readyCh)
		return
	}
	p.emotions = emotions
	p.status = StatusReady
	close(p.readyCh)
}

// PollStatus reports the lifecycle state without blocking.
func (p *LocalTTSProvider) PollStatus() (Status, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status, p.initErr
}

// AwaitReady blocks until initialization finishes or the timeout elapses.
func (p *LocalTTSProvider) AwaitReady(timeout time.Duration) error {
	p.Initialize()

	select {
	case <-p.readyCh:
	case <-time.After(timeout):
		return fmt.Errorf("TTS not ready after %s", timeout)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.status == StatusFailed {
		return fmt.Errorf("TTS initialization failed: %w", p.initErr)
	}
	return nil
}

// AvailableEmotions lists the emotions the service reported at warm-up.
func (p *LocalTTSProvider) AvailableEmotions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.emotions))
	copy(out, p.emotions)
	return out
}

// 本地 TTS 服务的请求/响应结构
type localTTSRequest struct {
	Text    string `json:"text"`
	Emotion string `json:"emotion,omitempty"`
}

type localTTSEmotions struct {
	Emotions []string `json:"emotions"`
}

func (p *LocalTTSProvider) fetchEmotions() ([]string, error) {
	req, err := http.NewRequest("GET", p.baseURL+"/emotions", nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error: %d - %s", resp.StatusCode, string(body))
	}

	var out localTTSEmotions
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response failed: %w", err)
	}
	return out.Emotions, nil
}

// GenerateSpeech synthesizes text to a wav file and returns its path. With
// dialogueOnly set, narration outside double quotes is stripped first and an
// empty path is returned when no dialogue remains.
func (p *LocalTTSProvider) GenerateSpeech(ctx context.Context, text, emotion string, dialogueOnly bool) (string, error) {
	if status, _ := p.PollStatus(); status != StatusReady {
		return "", fmt.Errorf("TTS provider not ready (status: %s)", status)
	}

	if dialogueOnly {
		text = ExtractDialogue(text)
		if text == "" {
			// 没有可朗读的对白，不是错误
			return "", nil
		}
	}

	reqData := localTTSRequest{Text: text, Emotion: emotion}
	jsonData, err := json.Marshal(reqData)
	if err != nil {
		return "", fmt.Errorf("marshal request failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.baseURL+"/synthesize", bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error: %d - %s", resp.StatusCode, string(body))
	}

	audioData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read audio failed: %w", err)
	}
	if len(audioData) == 0 {
		return "", fmt.Errorf("empty audio response")
	}

	path := filepath.Join(p.audioDir, uuid.NewString()+".wav")
	if err := os.WriteFile(path, audioData, 0o644); err != nil {
		return "", fmt.Errorf("write audio file failed: %w", err)
	}

	logx.Infof("TTS synthesis completed: %d bytes -> %s", len(audioData), path)
	return path, nil
}
