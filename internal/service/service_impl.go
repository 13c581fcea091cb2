package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/alimikegami/point-of-sales/product-form-service/config"
	"github.com/alimikegami/point-of-sales/product-form-service/internal/dto"
	"github.com/alimikegami/point-of-sales/product-form-service/internal/payload"
	"github.com/alimikegami/point-of-sales/product-form-service/internal/store"
	"github.com/alimikegami/point-of-sales/product-form-service/pkg/errs"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

var _ FormService = (*FormServiceImpl)(nil)

type FormServiceImpl struct {
	submitter AggregateSubmitter
	events    EventWriter
	config    *config.Config
	now       func() time.Time

	mu       sync.RWMutex
	sessions map[string]*formSession
}

// CreateFormService wires the form host. events may be nil, in which case no
// submission events are published.
func CreateFormService(submitter AggregateSubmitter, events EventWriter, config *config.Config) *FormServiceImpl {
	return &FormServiceImpl{
		submitter: submitter,
		events:    events,
		config:    config,
		now:       time.Now,
		sessions:  make(map[string]*formSession),
	}
}

func (s *FormServiceImpl) CreateForm(ctx context.Context, req dto.CreateFormRequest) (dto.FormResponse, error) {
	var st *store.Store

	switch strings.TrimSpace(req.Seed) {
	case "":
		st = store.New()
	case dto.SeedExample:
		st = store.NewWithTree(payload.Restore(payload.Example()))
	default:
		return dto.FormResponse{}, fmt.Errorf("%w: %q", errs.ErrInvalidSeed, req.Seed)
	}

	now := s.now()
	sess := newFormSession(ulid.Make().String(), st, now)

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	log.Ctx(ctx).Info().Str("form_id", sess.id).Str("seed", req.Seed).Msg("form created")

	return sess.response(), nil
}

func (s *FormServiceImpl) GetForm(ctx context.Context, id string) (dto.FormResponse, error) {
	sess, err := s.session(id)
	if err != nil {
		return dto.FormResponse{}, err
	}

	return sess.response(), nil
}

func (s *FormServiceImpl) DeleteForm(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return errs.ErrSessionNotFound
	}

	delete(s.sessions, id)
	return nil
}

func (s *FormServiceImpl) ApplyEdit(ctx context.Context, id string, req dto.EditRequest) (dto.EditResponse, error) {
	sess, err := s.session(id)
	if err != nil {
		return dto.EditResponse{}, err
	}

	index, err := applyEdit(sess.store, req)
	if err != nil {
		log.Ctx(ctx).Debug().Err(err).Str("component", "ApplyEdit").Str("op", req.Op).Msg("")
		return dto.EditResponse{}, err
	}

	return dto.EditResponse{FormResponse: sess.response(), Index: index}, nil
}

// PreviewPayload assembles the current tree without sending it.
func (s *FormServiceImpl) PreviewPayload(ctx context.Context, id string) (payload.SubmissionPayload, error) {
	sess, err := s.session(id)
	if err != nil {
		return payload.SubmissionPayload{}, err
	}

	return payload.Assemble(sess.store.Snapshot())
}

// SubmitForm assembles the current tree and sends it once. Only one
// submission per form is outstanding at a time; edits keep working while it
// runs. A payload that fails validation is never sent and leaves the last
// outcome untouched.
func (s *FormServiceImpl) SubmitForm(ctx context.Context, id string) (dto.SubmitResponse, error) {
	sess, err := s.session(id)
	if err != nil {
		return dto.SubmitResponse{}, err
	}

	if !sess.submitting.CompareAndSwap(false, true) {
		return dto.SubmitResponse{}, errs.ErrSubmissionInProgress
	}
	defer sess.submitting.Store(false)

	sp, err := payload.Assemble(sess.store.Snapshot())
	if err != nil {
		return dto.SubmitResponse{}, err
	}

	sess.setOutcome(nil, "")

	// The call runs to completion even if the client goes away.
	result, err := s.submitter.SubmitAggregate(context.WithoutCancel(ctx), sp)
	if err != nil {
		sess.setOutcome(nil, err.Error())
		return dto.SubmitResponse{}, err
	}

	sess.setOutcome(result, "")
	s.publishSubmitted(ctx, sess.id, sp, result)

	return dto.SubmitResponse{Result: result}, nil
}

// ExpireIdleForms drops forms that have not been used for the configured TTL.
// Forms with a submission in flight are kept.
func (s *FormServiceImpl) ExpireIdleForms() {
	ttl := s.config.SessionConfig.TTL
	if ttl <= 0 {
		return
	}

	now := s.now()

	s.mu.Lock()
	var expired int
	for id, sess := range s.sessions {
		if sess.idleSince(now) >= ttl && !sess.submitting.Load() {
			delete(s.sessions, id)
			expired++
		}
	}
	remaining := len(s.sessions)
	s.mu.Unlock()

	if expired > 0 {
		log.Info().Str("component", "ExpireIdleForms").Int("expired", expired).Int("remaining", remaining).Msg("")
	}
}

func (s *FormServiceImpl) session(id string) (*formSession, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, errs.ErrSessionNotFound
	}

	sess.touch(s.now())
	return sess, nil
}

func (s *FormServiceImpl) publishSubmitted(ctx context.Context, id string, sp payload.SubmissionPayload, result json.RawMessage) {
	if s.events == nil {
		return
	}

	kafkaMsg := dto.KafkaMessage{
		EventType: dto.EventProductAggregateSubmitted,
		Data: dto.AggregateSubmitted{
			FormID:      id,
			ProductName: sp.Product.ProductName,
			PackCount:   len(sp.ProductPacks),
			Result:      result,
			SubmittedAt: s.now().Unix(),
		},
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishSubmitted").Msg("")
		return
	}

	err = s.events.WriteMessages(context.WithoutCancel(ctx), kafka.Message{
		Key:   []byte(id),
		Value: jsonMsg,
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishSubmitted").Msg("")
	}
}
