package render

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded is returned by a render abandoned for a newer request.
var ErrSuperseded = errors.New("render superseded by a newer request")

// A Session renders one request at a time. Starting a request abandons the
// request in progress instead of waiting for it.
type Session struct {
	Config Config

	mu         sync.Mutex
	cancel     context.CancelFunc
	generation uint64
}

func NewSession(cfg Config) *Session {
	return &Session{Config: cfg}
}

// Request parses the text from src and renders it onto canvas, waiting for
// the render to finish.
func (s *Session) Request(ctx context.Context, src InputSource, canvas Canvas) error {
	return <-s.Go(ctx, src, canvas)
}

// Go starts rendering the text from src onto canvas in the background and
// returns a channel receiving the result. Text that fails to parse does not
// interrupt the render in progress.
func (s *Session) Go(ctx context.Context, src InputSource, canvas Canvas) <-chan error {
	result := make(chan error, 1)

	p, err := s.Config.Parse(src.PolynomialText())
	if err != nil {
		result <- err
		return result
	}

	ctx, cancel := context.WithCancel(ctx)
	gen := s.start(cancel)

	go func() {
		defer cancel()
		defer s.finish(gen)

		err := Render(ctx, canvas, p, s.Config)
		if err != nil && s.superseded(gen) {
			err = ErrSuperseded
		}

		result <- err
	}()

	return result
}

// Cancel abandons the render in progress, if any. Its Request returns
// ErrSuperseded.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.generation++
}

func (s *Session) start(cancel context.CancelFunc) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	s.generation++

	return s.generation
}

func (s *Session) finish(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation == gen {
		s.cancel = nil
	}
}

func (s *Session) superseded(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.generation != gen
}
