// Package http exposes the inbound HTTP surface: the transport webhook that
// feeds the order workflow, a health probe, and the operator's pending-order
// view when the durable store is configured.
package http

import (
	"log/slog"
	"net/http"

	"printery/internal/core/application/usecases/commands"
	"printery/internal/core/application/usecases/queries"
	"printery/internal/core/domain/model/kernel"
	"printery/internal/core/ports"
	"printery/internal/pkg/sessions"

	"github.com/labstack/echo/v4"
)

const startCommand = "/start"

// Server decodes transport updates into workflow commands.
// Every mutation for a session runs under that session's lock, so concurrent
// updates for one chat are applied one at a time while other chats proceed
// in parallel.
type Server struct {
	startHandler       commands.StartOrderCommandHandler
	advanceHandler     commands.AdvanceOrderCommandHandler
	attachHandler      commands.AttachFileCommandHandler
	cancelHandler      commands.CancelOrderCommandHandler
	editHandler        commands.EditOrderCommandHandler
	confirmHandler     commands.ConfirmOrderCommandHandler
	preCheckoutHandler commands.AnswerPreCheckoutCommandHandler
	completeHandler    commands.CompletePaymentCommandHandler

	// pendingOrdersHandler is nil when only the volatile store is configured.
	pendingOrdersHandler *queries.GetPendingOrdersQueryHandler

	notifier ports.NotificationDispatcher
	keeper   *sessions.Keeper
	logger   *slog.Logger
}

// NewServer creates the webhook server over the full command set.
func NewServer(
	startHandler commands.StartOrderCommandHandler,
	advanceHandler commands.AdvanceOrderCommandHandler,
	attachHandler commands.AttachFileCommandHandler,
	cancelHandler commands.CancelOrderCommandHandler,
	editHandler commands.EditOrderCommandHandler,
	confirmHandler commands.ConfirmOrderCommandHandler,
	preCheckoutHandler commands.AnswerPreCheckoutCommandHandler,
	completeHandler commands.CompletePaymentCommandHandler,
	pendingOrdersHandler *queries.GetPendingOrdersQueryHandler,
	notifier ports.NotificationDispatcher,
	keeper *sessions.Keeper,
	logger *slog.Logger,
) *Server {
	return &Server{
		startHandler:         startHandler,
		advanceHandler:       advanceHandler,
		attachHandler:        attachHandler,
		cancelHandler:        cancelHandler,
		editHandler:          editHandler,
		confirmHandler:       confirmHandler,
		preCheckoutHandler:   preCheckoutHandler,
		completeHandler:      completeHandler,
		pendingOrdersHandler: pendingOrdersHandler,
		notifier:             notifier,
		keeper:               keeper,
		logger:               logger.With("component", "http.Server"),
	}
}

// RegisterRoutes attaches the server's routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/webhook", s.Webhook)
	if s.pendingOrdersHandler != nil {
		e.GET("/orders", s.PendingOrders)
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// PendingOrders handles GET /orders - the operator's view of in-flight orders.
func (s *Server) PendingOrders(ctx echo.Context) error {
	result, err := s.pendingOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetPendingOrdersQuery())
	if err != nil {
		s.logger.Error("pending orders query failed", "error", err)
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to retrieve orders",
		})
	}
	return ctx.JSON(http.StatusOK, result)
}

// Webhook handles POST /webhook - one transport update per request.
// Updates with no workflow meaning are acknowledged and dropped.
func (s *Server) Webhook(ctx echo.Context) error {
	var update Update
	if err := ctx.Bind(&update); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}

	if err := s.dispatch(ctx, update); err != nil {
		s.logger.Error("update dispatch failed", "update", update.UpdateID, "error", err)
		return ctx.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to process update"})
	}

	return ctx.NoContent(http.StatusOK)
}

func (s *Server) dispatch(ctx echo.Context, update Update) error {
	switch {
	case update.PreCheckoutQuery != nil:
		return s.dispatchPreCheckout(ctx, *update.PreCheckoutQuery)
	case update.Message != nil:
		return s.dispatchMessage(ctx, *update.Message)
	default:
		return nil
	}
}

func (s *Server) dispatchPreCheckout(ctx echo.Context, query PreCheckoutQuery) error {
	sessionID, err := kernel.NewSessionID(query.From.ID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAnswerPreCheckoutCommand(sessionID, query.ID)
	if err != nil {
		return err
	}

	return s.keeper.Do(sessionID.Int64(), func() error {
		return s.preCheckoutHandler.Handle(ctx.Request().Context(), cmd)
	})
}

func (s *Server) dispatchMessage(ctx echo.Context, message Message) error {
	sessionID, err := kernel.NewSessionID(message.Chat.ID)
	if err != nil {
		return err
	}

	requestCtx := ctx.Request().Context()

	switch {
	case message.SuccessfulPayment != nil:
		payment := message.SuccessfulPayment
		var email, phone string
		if payment.OrderInfo != nil {
			email = payment.OrderInfo.Email
			phone = payment.OrderInfo.PhoneNumber
		}
		cmd, cmdErr := commands.NewCompletePaymentCommand(sessionID, email, phone, payment.ProviderPaymentChargeID)
		if cmdErr != nil {
			return cmdErr
		}
		return s.keeper.Do(sessionID.Int64(), func() error {
			return s.completeHandler.Handle(requestCtx, cmd)
		})

	case message.Document != nil:
		cmd, cmdErr := commands.NewAttachFileCommand(sessionID, message.Document.FileID, message.Document.FileName)
		if cmdErr != nil {
			return cmdErr
		}
		return s.keeper.Do(sessionID.Int64(), func() error {
			return s.attachHandler.Handle(requestCtx, cmd)
		})

	case message.Text != "":
		return s.dispatchText(ctx, sessionID, message.Text)

	default:
		// sticker, photo, or similar: nothing the workflow consumes
		return nil
	}
}

// dispatchText routes the global sentinels first, then hands the text to the
// stage router. Sentinels work from any stage.
func (s *Server) dispatchText(ctx echo.Context, sessionID kernel.SessionID, text string) error {
	requestCtx := ctx.Request().Context()

	switch text {
	case startCommand:
		return s.notifier.SendPrompt(requestCtx, sessionID,
			"Welcome to the print service!", []string{commands.StartOrderSentinel})

	case commands.StartOrderSentinel:
		cmd, err := commands.NewStartOrderCommand(sessionID)
		if err != nil {
			return err
		}
		return s.keeper.Do(sessionID.Int64(), func() error {
			return s.startHandler.Handle(requestCtx, cmd)
		})

	case commands.ConfirmSentinel:
		cmd, err := commands.NewConfirmOrderCommand(sessionID)
		if err != nil {
			return err
		}
		return s.keeper.Do(sessionID.Int64(), func() error {
			return s.confirmHandler.Handle(requestCtx, cmd)
		})

	case commands.CancelSentinel:
		cmd, err := commands.NewCancelOrderCommand(sessionID)
		if err != nil {
			return err
		}
		return s.keeper.Do(sessionID.Int64(), func() error {
			return s.cancelHandler.Handle(requestCtx, cmd)
		})

	case commands.EditSentinel:
		cmd, err := commands.NewEditOrderCommand(sessionID)
		if err != nil {
			return err
		}
		return s.keeper.Do(sessionID.Int64(), func() error {
			return s.editHandler.Handle(requestCtx, cmd)
		})

	default:
		cmd, err := commands.NewAdvanceOrderCommand(sessionID, text)
		if err != nil {
			return err
		}
		return s.keeper.Do(sessionID.Int64(), func() error {
			return s.advanceHandler.Handle(requestCtx, cmd)
		})
	}
}
