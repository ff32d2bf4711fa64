package botapi_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"printery/internal/adapters/out/botapi"
	"printery/internal/core/domain/model/kernel"
	"printery/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	path string
	body map[string]any
}

func newTestServer(t *testing.T, status int, response string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var recorded []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		recorded = append(recorded, recordedRequest{path: r.URL.Path, body: body})
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)
	return server, &recorded
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sessionID(t *testing.T) kernel.SessionID {
	t.Helper()
	id, err := kernel.NewSessionID(77)
	require.NoError(t, err)
	return id
}

func TestClient_SendPrompt_WithChoices(t *testing.T) {
	server, recorded := newTestServer(t, http.StatusOK, `{"ok":true}`)
	client := botapi.NewClient(server.URL, "token-1", "prov-1", 500, testLogger())

	err := client.SendPrompt(t.Context(), sessionID(t), "Choose the print color:", []string{"Black & white", "Color"})
	require.NoError(t, err)

	require.Len(t, *recorded, 1)
	req := (*recorded)[0]
	assert.Equal(t, "/bottoken-1/sendMessage", req.path)
	assert.Equal(t, float64(77), req.body["chat_id"])
	assert.Equal(t, "Choose the print color:", req.body["text"])
	markup := req.body["reply_markup"].(map[string]any)
	assert.Equal(t, true, markup["resize_keyboard"])
}

func TestClient_SendPrompt_NoChoicesOmitsKeyboard(t *testing.T) {
	server, recorded := newTestServer(t, http.StatusOK, `{"ok":true}`)
	client := botapi.NewClient(server.URL, "token-1", "prov-1", 500, testLogger())

	require.NoError(t, client.SendPrompt(t.Context(), sessionID(t), "Enter the number of pages:", nil))

	require.Len(t, *recorded, 1)
	_, hasMarkup := (*recorded)[0].body["reply_markup"]
	assert.False(t, hasMarkup)
}

func TestClient_SendInvoice(t *testing.T) {
	server, recorded := newTestServer(t, http.StatusOK, `{"ok":true}`)
	client := botapi.NewClient(server.URL, "token-1", "prov-1", 500, testLogger())

	err := client.SendInvoice(t.Context(), sessionID(t), ports.InvoiceSpec{
		Title:       "Print payment",
		Description: "Color print, A3",
		Payload:     "order_77",
		Currency:    "RUB",
		AmountMinor: 30000,
		NeedEmail:   true,
		NeedPhone:   true,
	})
	require.NoError(t, err)

	require.Len(t, *recorded, 1)
	req := (*recorded)[0]
	assert.Equal(t, "/bottoken-1/sendInvoice", req.path)
	assert.Equal(t, "order_77", req.body["payload"])
	assert.Equal(t, true, req.body["need_email"])
	prices := req.body["prices"].([]any)
	require.Len(t, prices, 1)
	assert.Equal(t, float64(30000), prices[0].(map[string]any)["amount"])
}

func TestClient_AnswerPreCheckout_Rejection(t *testing.T) {
	server, recorded := newTestServer(t, http.StatusOK, `{"ok":true}`)
	client := botapi.NewClient(server.URL, "token-1", "prov-1", 500, testLogger())

	err := client.AnswerPreCheckout(t.Context(), "query-9", false, "Order not found or no longer valid")
	require.NoError(t, err)

	require.Len(t, *recorded, 1)
	req := (*recorded)[0]
	assert.Equal(t, "/bottoken-1/answerPreCheckoutQuery", req.path)
	assert.Equal(t, "query-9", req.body["pre_checkout_query_id"])
	assert.Equal(t, false, req.body["ok"])
	assert.Equal(t, "Order not found or no longer valid", req.body["error_message"])
}

func TestClient_NotifyOperator_UsesOperatorChat(t *testing.T) {
	server, recorded := newTestServer(t, http.StatusOK, `{"ok":true}`)
	client := botapi.NewClient(server.URL, "token-1", "prov-1", 500, testLogger())

	require.NoError(t, client.NotifyOperator(t.Context(), "💰 New paid order!"))

	require.Len(t, *recorded, 1)
	assert.Equal(t, float64(500), (*recorded)[0].body["chat_id"])
}

func TestClient_NonOKStatusCode(t *testing.T) {
	server, _ := newTestServer(t, http.StatusBadGateway, `{"ok":false}`)
	client := botapi.NewClient(server.URL, "token-1", "prov-1", 500, testLogger())

	err := client.SendMessage(t.Context(), sessionID(t), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status code 502")
}

func TestClient_APILevelRejection(t *testing.T) {
	server, _ := newTestServer(t, http.StatusOK, `{"ok":false,"description":"chat not found"}`)
	client := botapi.NewClient(server.URL, "token-1", "prov-1", 500, testLogger())

	err := client.SendMessage(t.Context(), sessionID(t), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}
