// Package botapi implements the outbound NotificationDispatcher against a
// chat-transport HTTP API. Prompts, invoices and pre-checkout answers travel
// as JSON POSTs to token-scoped method endpoints.
package botapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"printery/internal/core/domain/model/kernel"
	"printery/internal/core/ports"
)

const requestTimeout = 10 * time.Second

// Client dispatches outbound notifications over the transport's HTTP API.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	providerToken  string
	operatorChatID int64
	logger         *slog.Logger
}

// NewClient creates a transport client. baseURL is the API root without a
// trailing slash; providerToken identifies the payment provider on invoices;
// operatorChatID is the chat that receives operator alerts and paid orders.
func NewClient(baseURL, token, providerToken string, operatorChatID int64, logger *slog.Logger) *Client {
	return &Client{
		httpClient:     &http.Client{Timeout: requestTimeout},
		baseURL:        baseURL,
		token:          token,
		providerToken:  providerToken,
		operatorChatID: operatorChatID,
		logger:         logger.With("component", "botapi.Client"),
	}
}

type replyKeyboard struct {
	Keyboard       [][]string `json:"keyboard"`
	ResizeKeyboard bool       `json:"resize_keyboard"`
}

type sendMessageRequest struct {
	ChatID      int64          `json:"chat_id"`
	Text        string         `json:"text"`
	ReplyMarkup *replyKeyboard `json:"reply_markup,omitempty"`
}

type labeledPrice struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

type sendInvoiceRequest struct {
	ChatID          int64          `json:"chat_id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Payload         string         `json:"payload"`
	ProviderToken   string         `json:"provider_token"`
	Currency        string         `json:"currency"`
	Prices          []labeledPrice `json:"prices"`
	NeedEmail       bool           `json:"need_email"`
	NeedPhoneNumber bool           `json:"need_phone_number"`
}

type answerPreCheckoutRequest struct {
	QueryID      string `json:"pre_checkout_query_id"`
	OK           bool   `json:"ok"`
	ErrorMessage string `json:"error_message,omitempty"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendPrompt sends a question with a one-row reply keyboard.
// An empty choices slice sends the text without a keyboard.
func (c *Client) SendPrompt(ctx context.Context, sessionID kernel.SessionID, text string, choices []string) error {
	req := sendMessageRequest{ChatID: sessionID.Int64(), Text: text}
	if len(choices) > 0 {
		req.ReplyMarkup = &replyKeyboard{
			Keyboard:       [][]string{choices},
			ResizeKeyboard: true,
		}
	}
	return c.post(ctx, "sendMessage", req)
}

// SendMessage sends a plain text message.
func (c *Client) SendMessage(ctx context.Context, sessionID kernel.SessionID, text string) error {
	return c.post(ctx, "sendMessage", sendMessageRequest{ChatID: sessionID.Int64(), Text: text})
}

// SendInvoice presents a payment invoice to the session.
func (c *Client) SendInvoice(ctx context.Context, sessionID kernel.SessionID, invoice ports.InvoiceSpec) error {
	return c.post(ctx, "sendInvoice", sendInvoiceRequest{
		ChatID:          sessionID.Int64(),
		Title:           invoice.Title,
		Description:     invoice.Description,
		Payload:         invoice.Payload,
		ProviderToken:   c.providerToken,
		Currency:        invoice.Currency,
		Prices:          []labeledPrice{{Label: "Print", Amount: invoice.AmountMinor}},
		NeedEmail:       invoice.NeedEmail,
		NeedPhoneNumber: invoice.NeedPhone,
	})
}

// AnswerPreCheckout answers the provider's pre-checkout query.
func (c *Client) AnswerPreCheckout(ctx context.Context, queryID string, ok bool, reason string) error {
	return c.post(ctx, "answerPreCheckoutQuery", answerPreCheckoutRequest{
		QueryID:      queryID,
		OK:           ok,
		ErrorMessage: reason,
	})
}

// NotifyOperator sends a plain message to the operator chat.
func (c *Client) NotifyOperator(ctx context.Context, text string) error {
	return c.post(ctx, "sendMessage", sendMessageRequest{ChatID: c.operatorChatID, Text: text})
}

func (c *Client) post(ctx context.Context, method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("transport request %s failed: %w", method, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("error closing response body", "error", closeErr)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("transport response %s unreadable: %w", method, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("transport request %s answered with status code %d", method, resp.StatusCode)
	}

	var answer apiResponse
	if err = json.Unmarshal(raw, &answer); err != nil {
		return fmt.Errorf("transport response %s undecodable: %w", method, err)
	}
	if !answer.OK {
		return fmt.Errorf("transport rejected %s: %s", method, answer.Description)
	}

	return nil
}
