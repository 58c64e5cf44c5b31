package narrative

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"github.com/rs/zerolog"
)

const (
	defaultModel    = "gpt-4o-mini"
	requestTimeout  = 2 * time.Minute
	maxOutputTokens = 1200
)

const reflectionPrompt = `Write a heartfelt 2-3 paragraph reflection on my iMessage history across the years. Be specific - reference actual conversations, names, and patterns you see. Don't be generic. No markdown formatting, just raw text.`

const stylePrompt = `Write an in-depth, carefully considered 2-3 paragraph communication style profile about me. What patterns do you notice? Be specific to what you see in the messages. No markdown formatting, just raw text.`

// Generator produces narrative insights, caching responses on disk so
// repeated runs do not re-bill the same prompt.
type Generator struct {
	client    *openai.Client
	model     string
	cachePath string
	cache     map[string]string
	log       zerolog.Logger
}

// NewFromEnv builds a Generator from OPENAI_API_KEY. It returns nil
// when the key is unset, and callers treat a nil Generator as the
// narrative feature being disabled.
func NewFromEnv(cacheDir string, log zerolog.Logger) *Generator {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		log.Warn().Msg("OPENAI_API_KEY not set, narrative insights disabled")
		return nil
	}
	client := openai.NewClient(option.WithAPIKey(key))
	g := &Generator{
		client:    &client,
		model:     defaultModel,
		cachePath: filepath.Join(cacheDir, "narratives.json"),
		cache:     map[string]string{},
		log:       log,
	}
	g.loadCache()
	return g
}

// Insights is the narrative output set. Empty fields mean generation
// failed or was skipped.
type Insights struct {
	Reflection   string `json:"wrapped_reflection,omitempty"`
	StyleProfile string `json:"style_profile,omitempty"`
}

// Generate produces both narrative sections from the shared context
// document. Failures in one section do not abort the other.
func (g *Generator) Generate(ctx context.Context, dataContext string) Insights {
	var out Insights
	var err error

	out.Reflection, err = g.generate(ctx, "wrapped_reflection", dataContext, reflectionPrompt)
	if err != nil {
		g.log.Error().Err(err).Msg("reflection generation failed")
	}
	out.StyleProfile, err = g.generate(ctx, "style_profile", dataContext, stylePrompt)
	if err != nil {
		g.log.Error().Err(err).Msg("style profile generation failed")
	}
	return out
}

func (g *Generator) generate(ctx context.Context, cacheKey, dataContext, task string) (string, error) {
	if cached, ok := g.cache[cacheKey]; ok {
		g.log.Debug().Str("key", cacheKey).Msg("narrative cache hit")
		return cached, nil
	}

	prompt := fmt.Sprintf(`Here is my iMessage data - stats and my most substantive messages (longest messages from top relationships):

%s

%s`, dataContext, task)

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	params := responses.ResponseNewParams{
		Model:           g.model,
		MaxOutputTokens: openai.Int(maxOutputTokens),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(prompt, responses.EasyInputMessageRoleUser),
			},
		},
	}
	resp, err := g.client.Responses.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("generate %s: %w", cacheKey, err)
	}
	text := strings.TrimSpace(resp.OutputText())
	if text == "" {
		return "", errors.New("generate " + cacheKey + ": empty response")
	}

	g.cache[cacheKey] = text
	g.saveCache()
	return text, nil
}

// ClearCache drops cached narratives so the next run regenerates them.
func (g *Generator) ClearCache() error {
	g.cache = map[string]string{}
	err := os.Remove(g.cachePath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear narrative cache: %w", err)
	}
	return nil
}

func (g *Generator) loadCache() {
	data, err := os.ReadFile(g.cachePath)
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, &g.cache); err != nil {
		g.log.Warn().Err(err).Str("path", g.cachePath).Msg("ignoring corrupt narrative cache")
		g.cache = map[string]string{}
	}
}

func (g *Generator) saveCache() {
	data, err := json.MarshalIndent(g.cache, "", "  ")
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(g.cachePath), 0o755); err != nil {
		g.log.Warn().Err(err).Msg("cannot create narrative cache dir")
		return
	}
	if err := os.WriteFile(g.cachePath, data, 0o644); err != nil {
		g.log.Warn().Err(err).Str("path", g.cachePath).Msg("cannot write narrative cache")
	}
}
