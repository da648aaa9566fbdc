package tui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/killallgit/convo/pkg/config"
	"github.com/killallgit/convo/pkg/conversation"
	"github.com/killallgit/convo/pkg/logger"
	"github.com/rivo/tview"
)

// App runs the conversation screen on a tview application
type App struct {
	app       *tview.Application
	view      *ConversationView
	sessionID string
	log       *logger.ComponentLogger
}

// NewApp builds the application for identity. The view options are
// passed to NewConversationView.
func NewApp(identity conversation.Identity, opts ...ViewOption) (*App, error) {
	sessionID := uuid.NewString()
	log := logger.WithComponent("app").With("session_id", sessionID)

	opts = append([]ViewOption{WithLogger(logger.WithComponent("conversation_view").With("session_id", sessionID))}, opts...)
	view, err := NewConversationView(identity, opts...)
	if err != nil {
		return nil, err
	}

	a := &App{
		app:       tview.NewApplication(),
		view:      view,
		sessionID: sessionID,
		log:       log,
	}

	a.app.SetRoot(view, true).
		SetFocus(view).
		EnableMouse(true).
		SetInputCapture(a.captureInput)
	return a, nil
}

// NewAppWithScreen builds the application on an existing screen
func NewAppWithScreen(screen tcell.Screen, identity conversation.Identity, opts ...ViewOption) (*App, error) {
	a, err := NewApp(identity, opts...)
	if err != nil {
		return nil, err
	}
	a.app.SetScreen(screen)
	return a, nil
}

// View returns the conversation view
func (a *App) View() *ConversationView {
	return a.view
}

// SessionID identifies this run in the log
func (a *App) SessionID() string {
	return a.sessionID
}

// Stop ends Run
func (a *App) Stop() {
	a.app.Stop()
}

func (a *App) captureInput(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyRune && event.Rune() == 'q' && !a.view.MenuOpen() {
		a.log.Info("quit requested")
		a.app.Stop()
		return nil
	}
	return event
}

// Run blocks until the user quits or ctx is cancelled
func (a *App) Run(ctx context.Context) error {
	a.log.Info("starting conversation screen", "name", a.view.Identity().Name)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			a.app.Stop()
		case <-done:
		}
	}()

	if err := a.app.Run(); err != nil {
		return fmt.Errorf("TUI application error: %w", err)
	}

	a.log.Info("conversation screen closed")
	return nil
}

// StartApp runs the conversation screen described by cfg
func StartApp(ctx context.Context, cfg *config.Config) error {
	identity, err := conversation.NewIdentity(cfg.Conversation.Name, cfg.Conversation.LastMessage)
	if err != nil {
		return err
	}

	log := logger.WithComponent("actions")
	actions := Actions{
		OnVideoCall: func() { log.Debug("video call is not available") },
		OnCall:      func() { log.Debug("voice call is not available") },
		OnSearch:    func() { log.Debug("search is not available") },
	}

	app, err := NewApp(identity, WithTheme(ThemeFromConfig(cfg.Theme)), WithActions(actions))
	if err != nil {
		return err
	}
	return app.Run(ctx)
}
