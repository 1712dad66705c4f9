// Package speech turns Sinhala tutor output into audio. Equations are
// rewritten into spoken Sinhala before synthesis so symbols like "+" are
// read as words.
package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// defaultEndpoint is the Google Translate TTS endpoint.
const defaultEndpoint = "https://translate.google.com/translate_tts"

// Synthesizer converts text to MP3 audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// GoogleTTS synthesizes speech through the Google Translate TTS endpoint.
type GoogleTTS struct {
	client   *http.Client
	endpoint string
	lang     string
	logger   *zap.Logger
}

// NewGoogleTTS creates a GoogleTTS synthesizer for the given language
// code, e.g. "si". A nil client falls back to http.DefaultClient.
func NewGoogleTTS(client *http.Client, lang string, logger *zap.Logger) *GoogleTTS {
	if client == nil {
		client = http.DefaultClient
	}
	if lang == "" {
		lang = "si"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GoogleTTS{
		client:   client,
		endpoint: defaultEndpoint,
		lang:     lang,
		logger:   logger,
	}
}

// SetEndpoint overrides the TTS endpoint. Used in tests.
func (g *GoogleTTS) SetEndpoint(endpoint string) { g.endpoint = endpoint }

// Synthesize fetches MP3 audio for the text.
func (g *GoogleTTS) Synthesize(ctx context.Context, text string) ([]byte, error) {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", g.lang)
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building TTS request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("TTS request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TTS endpoint returned %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading TTS response: %w", err)
	}

	g.logger.Debug("synthesized speech",
		zap.Int("text_len", len(text)),
		zap.Int("audio_bytes", len(audio)),
	)
	return audio, nil
}

// Speaker preprocesses tutor text and synthesizes it.
type Speaker struct {
	synth Synthesizer
	proc  *Processor
}

// NewSpeaker creates a Speaker around a Synthesizer.
func NewSpeaker(synth Synthesizer) *Speaker {
	return &Speaker{synth: synth, proc: NewProcessor()}
}

// Speak synthesizes text. When isEquation is set, the text is first
// rewritten so mathematical symbols are read as Sinhala words.
func (s *Speaker) Speak(ctx context.Context, text string, isEquation bool) ([]byte, error) {
	if isEquation {
		text = s.proc.EquationToSpeech(text, "si")
	}
	return s.synth.Synthesize(ctx, text)
}
