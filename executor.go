package acceptor

import (
	"context"

	"github.com/ethereum/go-ethereum/log"

	"github.com/bdd-infra/bdd-acceptor/events"
	"github.com/bdd-infra/bdd-acceptor/replay"
)

// SessionExecutor is responsible for running one recorded session
// through a listener.
type SessionExecutor interface {
	Execute(ctx context.Context, listener events.Listener) error
}

// DefaultSessionExecutor implements the SessionExecutor interface by
// replaying an event file.
type DefaultSessionExecutor struct {
	player     *replay.Player
	eventsFile string
	logger     log.Logger
}

// NewDefaultSessionExecutor creates a new DefaultSessionExecutor.
func NewDefaultSessionExecutor(player *replay.Player, eventsFile string, logger log.Logger) *DefaultSessionExecutor {
	return &DefaultSessionExecutor{
		player:     player,
		eventsFile: eventsFile,
		logger:     logger,
	}
}

// Execute replays the configured session against the listener.
func (e *DefaultSessionExecutor) Execute(ctx context.Context, listener events.Listener) error {
	e.logger.Info("Replaying session...", "events", e.eventsFile)
	delivered, err := e.player.ReplayFile(ctx, e.eventsFile, listener)
	if err != nil {
		e.logger.Error("Error replaying session", "delivered", delivered, "error", err)
		return err
	}
	e.logger.Info("Session replay completed", "delivered", delivered)
	return nil
}
