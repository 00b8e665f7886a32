package ingest

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/rogerio-castellano/retail-sales-api/internal/models"
	"github.com/rogerio-castellano/retail-sales-api/internal/repo"
)

type loadState int

const (
	stateUnloaded loadState = iota
	stateLoading
	stateReady
	stateFailed
)

// Loader coordinates the one-time ingestion of the dataset into the sale
// repository. Concurrent callers arriving before the first load completes
// all await the same in-flight attempt instead of triggering duplicate
// downloads. A failed attempt is not terminal: the next Ensure starts a
// fresh attempt.
type Loader struct {
	mu    sync.Mutex
	state loadState
	done  chan struct{}
	err   error

	source Source
	store  *repo.InMemorySaleRepository
}

func NewLoader(source Source, store *repo.InMemorySaleRepository) *Loader {
	return &Loader{source: source, store: store}
}

// Ensure makes sure the dataset is loaded, starting a load attempt if none
// is in flight. It blocks until the awaited attempt finishes or ctx is
// cancelled, and returns the attempt's outcome. After a successful load it
// returns immediately.
func (l *Loader) Ensure(ctx context.Context) error {
	l.mu.Lock()
	switch l.state {
	case stateReady:
		l.mu.Unlock()
		return nil
	case stateLoading:
		// fall through to wait on the in-flight attempt
	default: // unloaded or failed: start a fresh attempt
		l.state = stateLoading
		l.done = make(chan struct{})
		// The attempt is shared by every waiter, so it must not die with
		// the first request's context. The source's own timeout bounds it.
		go l.load(context.WithoutCancel(ctx))
	}
	done := l.done
	l.mu.Unlock()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == stateReady {
		return nil
	}
	return l.err
}

func (l *Loader) load(ctx context.Context) {
	sales, err := l.fetchAndParse(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.state = stateFailed
		l.err = err
		log.Printf("sales data load failed: %v", err)
	} else {
		l.store.SetSales(sales)
		l.state = stateReady
		l.err = nil
		log.Printf("Loaded %d sales records.", len(sales))
	}
	close(l.done)
}

func (l *Loader) fetchAndParse(ctx context.Context) ([]models.Sale, error) {
	body, err := l.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	sales, err := ParseSales(body)
	if err != nil {
		return nil, fmt.Errorf("parse sales data: %w", err)
	}
	return sales, nil
}
