// Package testutil provides fakes for detectors and change sources.
package testutil

import (
	"context"
	"errors"
	"sync"

	"github.com/Veraticus/dark-light/pkg/interfaces"
	"github.com/Veraticus/dark-light/pkg/types"
)

// MockDetector is a thread-safe detector simulating an OS setting that tests can flip
type MockDetector struct {
	mu    sync.Mutex
	mode  types.Mode
	calls int
}

// NewMockDetector creates a detector reporting mode until Set is called
func NewMockDetector(mode types.Mode) *MockDetector {
	return &MockDetector{mode: mode}
}

// Detect implements interfaces.Detector
func (m *MockDetector) Detect() types.Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.mode
}

// Set changes the simulated OS setting
func (m *MockDetector) Set(mode types.Mode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mode = mode
}

// Calls returns how many times Detect was called
func (m *MockDetector) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// SequenceDetector returns scripted modes in order, repeating the last one forever
type SequenceDetector struct {
	mu    sync.Mutex
	modes []types.Mode
	next  int
}

// NewSequenceDetector creates a detector that replays modes
func NewSequenceDetector(modes ...types.Mode) *SequenceDetector {
	return &SequenceDetector{modes: modes}
}

// Detect implements interfaces.Detector
func (s *SequenceDetector) Detect() types.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.modes) == 0 {
		return types.Light
	}

	i := s.next
	if i >= len(s.modes) {
		i = len(s.modes) - 1
	} else {
		s.next++
	}
	return s.modes[i]
}

// ErrSourceUnavailable is returned by a ManualChangeSource built with NewFailingChangeSource
var ErrSourceUnavailable = errors.New("change source unavailable")

// ManualChangeSource emits hints only when Trigger is called
type ManualChangeSource struct {
	mu            sync.Mutex
	ch            chan struct{}
	err           error
	subscriptions int
}

// NewManualChangeSource creates a change source driven by Trigger
func NewManualChangeSource() *ManualChangeSource {
	return &ManualChangeSource{}
}

// NewFailingChangeSource creates a change source whose Changes always fails
func NewFailingChangeSource() *ManualChangeSource {
	return &ManualChangeSource{err: ErrSourceUnavailable}
}

// Changes implements interfaces.ChangeSource
func (s *ManualChangeSource) Changes(ctx context.Context) (<-chan struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subscriptions++
	if s.err != nil {
		return nil, s.err
	}

	ch := make(chan struct{}, 1)
	s.ch = ch
	go func() {
		<-ctx.Done()
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.ch == ch {
			s.ch = nil
		}
		close(ch)
	}()

	return ch, nil
}

// Trigger sends a hint to the current subscriber. It returns false if nobody is subscribed.
func (s *ManualChangeSource) Trigger() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ch == nil {
		return false
	}
	select {
	case s.ch <- struct{}{}:
	default:
	}
	return true
}

// Subscribed reports whether a watcher currently holds the hint channel
func (s *ManualChangeSource) Subscribed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ch != nil
}

// Subscriptions returns how many times Changes was called
func (s *ManualChangeSource) Subscriptions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subscriptions
}

var (
	_ interfaces.Detector     = (*MockDetector)(nil)
	_ interfaces.Detector     = (*SequenceDetector)(nil)
	_ interfaces.ChangeSource = (*ManualChangeSource)(nil)
)
