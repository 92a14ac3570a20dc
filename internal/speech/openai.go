package speech

import (
	"context"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// slowSpeed is the playback rate used for the repeat-slowly utterance.
const slowSpeed = 0.75

// OpenAI synthesizes speech through the OpenAI audio endpoint. The models
// are multilingual, so the utterance language selects nothing beyond the
// cache key; the voice carries the accent.
type OpenAI struct {
	client *openai.Client
	model  openai.SpeechModel
	voice  openai.SpeechVoice
}

// NewOpenAI builds a synthesizer from an API key. Empty model or voice
// fall back to tts-1 with the alloy voice.
func NewOpenAI(apiKey string, model, voice string) *OpenAI {
	m := openai.SpeechModel(model)
	if model == "" {
		m = openai.TTSModel1
	}
	v := openai.SpeechVoice(voice)
	if voice == "" {
		v = openai.VoiceAlloy
	}
	return &OpenAI{
		client: openai.NewClient(apiKey),
		model:  m,
		voice:  v,
	}
}

// Synthesize renders text to MP3 bytes.
func (o *OpenAI) Synthesize(ctx context.Context, text, lang string, slow bool) ([]byte, error) {
	req := openai.CreateSpeechRequest{
		Model:          o.model,
		Input:          text,
		Voice:          o.voice,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	}
	if slow {
		req.Speed = slowSpeed
	}

	resp, err := o.client.CreateSpeech(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("speech request: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("read speech response: %w", err)
	}
	return audio, nil
}
