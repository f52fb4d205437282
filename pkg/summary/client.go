// Package summary asks an OpenAI-compatible chat-completions endpoint for
// insight lines about a parsed spreadsheet.
package summary

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/excelytics/excelytics/config/configkey"
	"github.com/excelytics/excelytics/pkg/weberrors"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// rowPreviewLimit bounds how much sheet data is sent upstream.
const rowPreviewLimit = 10

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

type Client struct {
	http   *resty.Client
	apiURL string
	apiKey string
	model  string
}

func NewClient() *Client {
	return NewClientWithEndpoint(
		viper.GetString(configkey.SummaryAPIURL),
		viper.GetString(configkey.SummaryAPIKey),
		viper.GetString(configkey.SummaryModel),
	)
}

func NewClientWithEndpoint(apiURL, apiKey, model string) *Client {
	return &Client{
		http:   resty.New(),
		apiURL: apiURL,
		apiKey: apiKey,
		model:  model,
	}
}

// SummarizeRows sends a bounded prefix of the parsed rows upstream and
// returns the reply split into non-empty lines.
func (c *Client) SummarizeRows(rows []map[string]string) ([]string, error) {
	preview := rows
	if len(preview) > rowPreviewLimit {
		preview = preview[:rowPreviewLimit]
	}

	previewJSON, err := json.MarshalIndent(preview, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", weberrors.ErrSummarizationUnavailable, err)
	}

	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: "Summarize this Excel data : " + string(previewJSON)},
		},
	}

	var parsed chatResponse
	resp, err := c.http.R().
		SetHeader("Content-Type", "application/json").
		SetAuthToken(c.apiKey).
		SetBody(&body).
		SetResult(&parsed).
		// resty fills Result only on 2xx; the error body lands here
		SetError(&parsed).
		Post(c.apiURL)
	if err != nil {
		logrus.Error(err)
		return nil, fmt.Errorf("%w: %v", weberrors.ErrSummarizationUnavailable, err)
	}
	if !resp.IsSuccess() {
		logrus.Errorf("Summary API returned %s", resp.Status())
		if parsed.Error != nil {
			return nil, fmt.Errorf("%w: %s", weberrors.ErrSummarizationUnavailable, parsed.Error.Message)
		}
		return nil, fmt.Errorf("%w: %s", weberrors.ErrSummarizationUnavailable, resp.Status())
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty response", weberrors.ErrSummarizationUnavailable)
	}

	var insights []string
	for _, line := range strings.Split(parsed.Choices[0].Message.Content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			insights = append(insights, trimmed)
		}
	}

	return insights, nil
}
