package advice

import (
	"context"
	"sync"
)

// Service runs advice generations and remembers the most recent result.
//
// Every generation gets a monotonically increasing token. A completion whose
// token is no longer the latest issued one is returned to its caller but
// never overwrites the cached result, so a slow early response cannot
// clobber a newer one.
type Service struct {
	generator Generator

	mu          sync.Mutex
	latestToken uint64
	cachedToken uint64
	cached      string
}

// NewService returns a Service that generates advice with g.
func NewService(g Generator) *Service {
	return &Service{generator: g}
}

// Generate builds advice for the prompt and returns it.
func (s *Service) Generate(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	s.latestToken++
	token := s.latestToken
	s.mu.Unlock()

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	if token == s.latestToken {
		s.cached = text
		s.cachedToken = token
	}
	s.mu.Unlock()

	return text, nil
}

// Latest returns the most recently cached advice. The second return value
// is false when no advice has been generated yet.
func (s *Service) Latest() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cached, s.cachedToken != 0
}
