package service

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alimikegami/point-of-sales/product-form-service/internal/dto"
	"github.com/alimikegami/point-of-sales/product-form-service/internal/store"
)

// formSession is one hosted form. The store serializes edits; the submit
// state has its own lock so edits never wait on a submission.
type formSession struct {
	id         string
	store      *store.Store
	createdAt  time.Time
	lastSeen   atomic.Int64
	submitting atomic.Bool

	mu         sync.Mutex
	lastResult json.RawMessage
	lastError  string
}

func newFormSession(id string, st *store.Store, now time.Time) *formSession {
	sess := &formSession{id: id, store: st, createdAt: now}
	sess.touch(now)
	return sess
}

func (sess *formSession) touch(now time.Time) {
	sess.lastSeen.Store(now.UnixNano())
}

func (sess *formSession) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, sess.lastSeen.Load()))
}

func (sess *formSession) setOutcome(result json.RawMessage, message string) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.lastResult = result
	sess.lastError = message
}

func (sess *formSession) response() dto.FormResponse {
	tree, version := sess.store.State()

	sess.mu.Lock()
	state := dto.SubmissionState{
		Submitting: sess.submitting.Load(),
		LastResult: sess.lastResult,
		LastError:  sess.lastError,
	}
	sess.mu.Unlock()

	return dto.FormResponse{
		ID:         sess.id,
		Version:    version,
		Form:       tree,
		Submission: state,
		CreatedAt:  sess.createdAt,
		LastSeenAt: time.Unix(0, sess.lastSeen.Load()).UTC(),
	}
}
