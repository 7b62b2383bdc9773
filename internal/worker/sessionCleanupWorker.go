package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// SessionPruner удаляет истекшие сессии и возвращает их количество
type SessionPruner interface {
	DeleteExpired(ctx context.Context) (int, error)
}

// SessionCleanupWorker периодически вычищает истекшие сессии из
// хранилища в памяти. Для Redis-хранилища не нужен: там TTL
// обеспечивает сам Redis.
type SessionCleanupWorker struct {
	store    SessionPruner
	interval time.Duration
}

func NewSessionCleanupWorker(store SessionPruner, interval time.Duration) *SessionCleanupWorker {
	return &SessionCleanupWorker{
		store:    store,
		interval: interval,
	}
}

func (w *SessionCleanupWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logrus.Info("Session cleanup worker started")

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Session cleanup worker stopped")
			return
		case <-ticker.C:
			w.cleanup(ctx)
		}
	}
}

func (w *SessionCleanupWorker) cleanup(ctx context.Context) {
	removed, err := w.store.DeleteExpired(ctx)
	if err != nil {
		logrus.Errorf("Failed to prune expired sessions: %v", err)
		return
	}
	if removed > 0 {
		logrus.Infof("Pruned %d expired sessions", removed)
	}
}
