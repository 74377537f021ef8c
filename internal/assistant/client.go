package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/psds-microservice/office-manager/internal/metrics"
	openai "github.com/sashabaranov/go-openai"
)

const (
	systemPrompt = "You are AI Office Manager."
	temperature  = 0.2

	DefaultModel   = "gpt-4o-mini"
	DefaultTimeout = 5 * time.Second
)

// Outcome labels how a response was produced.
type Outcome string

const (
	OutcomeExternal      Outcome = "external"
	OutcomeFallbackNoKey Outcome = "fallback_no_key"
	OutcomeFallbackError Outcome = "fallback_error"
	OutcomeFallbackEmpty Outcome = "fallback_empty"
)

var promptTemplates = map[string]string{
	"hr":      "You are an HR automation assistant. Task: %s",
	"analyst": "You are a data analyst assistant. Task: %s",
	"support": "You are a customer support assistant. Task: %s",
	"admin":   "You are an administrative assistant. Task: %s",
	"sales":   "You are a sales manager assistant. Task: %s",
}

const genericTemplate = "General task: %s"

// Responder produces a text response for a department and task. It never fails.
type Responder interface {
	Process(ctx context.Context, department, task string) string
}

type Options struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client отправляет запрос во внешний chat-completion API; при любой ошибке
// возвращает детерминированный ответ.
type Client struct {
	chat    *openai.Client
	model   string
	timeout time.Duration
	log     *slog.Logger
	metrics metrics.Recorder
}

// NewClient returns a client. With an empty APIKey, Process never touches the network.
func NewClient(opts Options, log *slog.Logger, rec metrics.Recorder) *Client {
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if rec == nil {
		rec = metrics.Nop{}
	}
	c := &Client{
		model:   opts.Model,
		timeout: opts.Timeout,
		log:     log.With("component", "assistant"),
		metrics: rec,
	}
	if opts.APIKey != "" {
		cfg := openai.DefaultConfig(opts.APIKey)
		if opts.BaseURL != "" {
			cfg.BaseURL = strings.TrimRight(opts.BaseURL, "/")
		}
		cfg.HTTPClient = &http.Client{Timeout: opts.Timeout}
		c.chat = openai.NewClientWithConfig(cfg)
	}
	return c
}

func (c *Client) Process(ctx context.Context, department, task string) string {
	text, outcome := c.generate(ctx, department, task)
	c.metrics.RecordAssistant(string(outcome))
	return text
}

// generate makes at most one external call. Every failure resolves to Fallback.
func (c *Client) generate(ctx context.Context, department, task string) (text string, outcome Outcome) {
	if c.chat == nil {
		return Fallback(department, task), OutcomeFallbackNoKey
	}
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("chat completion panicked", "panic", r)
			text, outcome = Fallback(department, task), OutcomeFallbackError
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	resp, err := c.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: Prompt(department, task)},
		},
		Temperature: temperature,
	})
	if err != nil {
		c.log.Warn("chat completion failed, using fallback", "department", department, "error", err)
		return Fallback(department, task), OutcomeFallbackError
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		c.log.Warn("chat completion returned no content, using fallback", "department", department)
		return Fallback(department, task), OutcomeFallbackEmpty
	}
	c.log.Debug("chat completion ok", "department", department, "model", c.model)
	return resp.Choices[0].Message.Content, OutcomeExternal
}

// Prompt is the department instruction sent to the external service.
// Unknown departments get the generic prefix.
func Prompt(department, task string) string {
	tmpl, ok := promptTemplates[department]
	if !ok {
		tmpl = genericTemplate
	}
	return fmt.Sprintf(tmpl, task)
}

// Fallback is the canned response. It is pure and cannot fail.
func Fallback(department, task string) string {
	return "[" + strings.ToUpper(department) + " AI MOCK] Processed request: '" + task + "'. " +
		"Recommendation: prioritize high-impact actions, automate repetitive workflows, " +
		"and track KPI movement weekly."
}
