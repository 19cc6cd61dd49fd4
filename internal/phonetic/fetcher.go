package phonetic

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

// ErrNoAPIKey is returned when the fetcher has no OpenAI key
var ErrNoAPIKey = errors.New("OpenAI API key not configured")

// Config configures a Fetcher
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // optional, overrides the OpenAI endpoint
	Timeout time.Duration
}

// Fetcher fetches transcriptions for Russian words
type Fetcher struct {
	apiKey  string
	model   string
	timeout time.Duration
	client  *openai.Client
	breaker *gobreaker.CircuitBreaker
}

// NewFetcher creates a new transcription fetcher
func NewFetcher(cfg Config) *Fetcher {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	if cfg.Model == "" {
		cfg.Model = openai.GPT4oMini
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	return &Fetcher{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		client:  openai.NewClientWithConfig(clientConfig),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "openai-transcription",
			Timeout: time.Minute,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
		}),
	}
}

const systemPrompt = `You are a Russian phonetics expert. Reply with a narrow IPA transcription of the given Russian word and nothing else.
Use only these symbols: vowels u ʉ ø ɵ ə æ ɑ a ʌ ɐ e ɛ i ɪ ɨ o; consonants m n p b t d k g f v s z ʂ ɕ ʐ x ʦ ʨ l r j.
Mark palatalization with ʲ directly after the consonant and length with ː after it (after ʲ if both).
Write affricates as single ligatures (ʦ, ʨ). Do not use stress marks, tie bars, slashes or brackets.`

// FetchTranscription returns an IPA transcription for a Russian word
func (f *Fetcher) FetchTranscription(ctx context.Context, word string) (string, error) {
	if f.apiKey == "" {
		return "", ErrNoAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	result, err := f.breaker.Execute(func() (interface{}, error) {
		resp, err := f.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: f.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: word},
			},
			Temperature: 0,
			MaxTokens:   60,
		})
		if err != nil {
			return nil, err
		}
		if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
			return nil, errors.New("no response from OpenAI")
		}
		return resp.Choices[0].Message.Content, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to fetch transcription for %q: %w", word, err)
	}

	return Normalize(result.(string)), nil
}

// normalizer removes notation that the parser does not accept
var normalizer = strings.NewReplacer(
	"/", "", "[", "", "]", "",
	"ˈ", "", "ˌ", "", "'", "", ".", "",
	"͡", "", "͜", "",
)

var affricates = strings.NewReplacer("t͡s", "ʦ", "t͡ɕ", "ʨ", "t͡ʃ", "ʨ")

// Normalize strips delimiters, stress and syllable marks, tie bars and
// surrounding whitespace, keeping only the first line of s.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if line, _, found := strings.Cut(s, "\n"); found {
		s = line
	}
	// tied affricates become ligatures before the tie bars are dropped
	s = affricates.Replace(s)
	s = normalizer.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
