package menu

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type Service struct {
	catalog  []MenuItem
	byID     map[int]MenuItem
	sessions *SessionStore
	log      *zap.Logger
}

// SessionView is a session together with its current evaluation.
type SessionView struct {
	Session
	Result EvaluationResult `json:"result"`
}

// NewService loads the catalog once. Items with an unreadable price are
// kept and reported as data-quality warnings.
func NewService(ctx context.Context, source CatalogSource, log *zap.Logger) (*Service, error) {
	items, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load menu catalog: %w", err)
	}
	if err := ValidateCatalog(items); err != nil {
		return nil, err
	}

	byID := make(map[int]MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	for _, id := range MalformedItems(items) {
		log.Warn("menu item has malformed price",
			zap.Int("item_id", id),
			zap.String("price_label", byID[id].PriceLabel),
		)
	}

	log.Info("menu catalog loaded", zap.Int("items", len(items)))

	return &Service{
		catalog:  items,
		byID:     byID,
		sessions: NewSessionStore(),
		log:      log,
	}, nil
}

// Catalog returns a copy of the loaded menu.
func (s *Service) Catalog() []MenuItem {
	out := make([]MenuItem, len(s.catalog))
	copy(out, s.catalog)
	return out
}

func (s *Service) Item(id int) (MenuItem, bool) {
	item, ok := s.byID[id]
	return item, ok
}

func (s *Service) Filter(sel FilterSelection) EvaluationResult {
	return Evaluate(s.catalog, sel)
}

// --------------------------------------------------
// Filter sessions
// --------------------------------------------------

func (s *Service) CreateSession() SessionView {
	sess := s.sessions.Create()
	return s.view(sess)
}

func (s *Service) GetSession(id string) (SessionView, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return SessionView{}, err
	}
	return s.view(sess), nil
}

// UpdateSession is the only write path for a session's selection. Every
// accepted change is evaluated immediately.
func (s *Service) UpdateSession(id string, dim Dimension, value string) (SessionView, error) {
	sess, err := s.sessions.Update(id, dim, value)
	if err != nil {
		return SessionView{}, err
	}

	s.log.Info("menu interaction",
		zap.String("event", "filter"),
		zap.String("session_id", id),
		zap.String("dimension", string(dim)),
		zap.String("value", value),
	)

	return s.view(sess), nil
}

func (s *Service) DeleteSession(id string) error {
	return s.sessions.Delete(id)
}

// RunSessionSweeper expires idle sessions until ctx is done.
func (s *Service) RunSessionSweeper(ctx context.Context, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.sessions.Sweep(ttl); n > 0 {
				s.log.Debug("expired filter sessions", zap.Int("count", n))
			}
		}
	}
}

func (s *Service) view(sess Session) SessionView {
	return SessionView{
		Session: sess,
		Result:  Evaluate(s.catalog, sess.Selection),
	}
}
