// Package llm — клиент OpenAI для разбора упавших прогонов: собранный
// вывод упавших тестов отправляется модели, обратно приходит короткая
// сводка вероятных причин. Никогда не вызывается на пути самих тестов.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Logger получает копию запроса и ответа модели.
type Logger interface {
	LogRequest(prompt, response, model string, tokens int)
}

const triageSystemPrompt = `You are a senior QA engineer. You receive the raw output of failed ` +
	`end-to-end browser tests. Group the failures by likely root cause (selector drift, timeout, ` +
	`application bug, test bug) and answer with a short plain-text summary, at most ten lines.`

// Вывод упавших тестов обрезается, чтобы не выходить за контекст модели.
const maxFailureChars = 12000

type Client struct {
	client    *openai.Client
	model     string
	maxTokens int
	logger    Logger
}

func NewClient(apiKey, model string, maxTokens int, logger Logger) *Client {
	return &Client{
		client:    openai.NewClient(apiKey),
		model:     model,
		maxTokens: maxTokens,
		logger:    logger,
	}
}

// SummarizeFailures отправляет вывод упавших тестов модели и возвращает
// короткую сводку вероятных причин.
func (c *Client) SummarizeFailures(ctx context.Context, failures []string) (string, error) {
	if len(failures) == 0 {
		return "", nil
	}

	prompt := strings.Join(failures, "\n---\n")
	if len(prompt) > maxFailureChars {
		prompt = prompt[:maxFailureChars]
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: triageSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("ошибка запроса к модели: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("пустой ответ модели")
	}

	summary := resp.Choices[0].Message.Content
	if c.logger != nil {
		c.logger.LogRequest(prompt, summary, c.model, resp.Usage.TotalTokens)
	}
	return summary, nil
}
