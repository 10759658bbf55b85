package inventory

import (
	"errors"

	"go.uber.org/zap"

	"MiniStock/pkg/kit"
)

const (
	outcomeOK        = "ok"
	outcomeDuplicate = "duplicate"
	outcomeNotFound  = "not_found"
	outcomeEmpty     = "empty"
	outcomeNoMatch   = "no_match"
	outcomeError     = "error"
)

// Instrumented logs and counts every call to Next without changing results.
type Instrumented struct {
	Next    Store
	Log     *zap.Logger
	Metrics *kit.Metrics
}

func NewInstrumented(next Store, log *zap.Logger, m *kit.Metrics) *Instrumented {
	if log == nil {
		log = zap.NewNop()
	}
	return &Instrumented{Next: next, Log: log, Metrics: m}
}

func (s *Instrumented) Len() int { return s.Next.Len() }

func (s *Instrumented) IsIDUnique(id string) bool {
	return s.Next.IsIDUnique(id)
}

func (s *Instrumented) Add(r Record) error {
	err := s.Next.Add(r)
	s.observe("add", err, zap.String("id", r.ID), zap.Stringer("record", r))
	return err
}

func (s *Instrumented) Remove(id string) error {
	err := s.Next.Remove(id)
	s.observe("remove", err, zap.String("id", id))
	return err
}

func (s *Instrumented) Update(id string, p Patch) error {
	err := s.Next.Update(id, p)

	fields := []zap.Field{zap.String("id", id)}
	if p.Quantity != nil {
		fields = append(fields, zap.Int("quantity", *p.Quantity))
	}
	if p.Price != nil {
		fields = append(fields, zap.Float64("price", *p.Price))
	}
	s.observe("update", err, fields...)
	return err
}

func (s *Instrumented) ListAll() ([]Record, error) {
	out, err := s.Next.ListAll()
	s.observe("list_all", err, zap.Int("results", len(out)))
	return out, err
}

func (s *Instrumented) ListIDs() ([]IDName, error) {
	out, err := s.Next.ListIDs()
	s.observe("list_ids", err, zap.Int("results", len(out)))
	return out, err
}

func (s *Instrumented) FindByName(sub string) ([]Record, error) {
	out, err := s.Next.FindByName(sub)
	s.observe("find_by_name", err, zap.String("query", sub), zap.Int("results", len(out)))
	return out, err
}

func (s *Instrumented) observe(op string, err error, fields ...zap.Field) {
	outcome := Outcome(err)
	size := s.Next.Len()
	s.Metrics.Observe(op, outcome, size)

	fields = append(fields,
		zap.String("op", op),
		zap.String("outcome", outcome),
		zap.Int("size", size),
	)

	switch outcome {
	case outcomeOK:
		s.Log.Debug("store op", fields...)
	case outcomeError:
		s.Log.Error("store op failed", append(fields, zap.Error(err))...)
	default:
		s.Log.Info("store op rejected", fields...)
	}
}

// Outcome maps a store error to a short label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, ErrDuplicateID):
		return outcomeDuplicate
	case errors.Is(err, ErrNotFound):
		return outcomeNotFound
	case errors.Is(err, ErrEmpty):
		return outcomeEmpty
	case errors.Is(err, ErrNoMatch):
		return outcomeNoMatch
	default:
		return outcomeError
	}
}
