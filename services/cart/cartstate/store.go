package cartstate

import (
	"context"
	"sync"

	"github.com/MarcGrol/cartsync/lib/myevents"
	"github.com/MarcGrol/cartsync/lib/mylog"
)

// Listener is called after every dispatch with the event and the state it produced
type Listener func(c context.Context, event myevents.Event, state State)

// Store owns the client side cart state. All changes go through Dispatch.
type Store struct {
	dispatchMutex sync.Mutex
	stateMutex    sync.RWMutex
	state         State
	listeners     map[int]Listener
	nextListener  int
	logger        mylog.Logger
}

func NewStore(logger mylog.Logger) *Store {
	return &Store{
		state:     InitialState(),
		listeners: map[int]Listener{},
		logger:    logger,
	}
}

func (s *Store) Dispatch(c context.Context, event myevents.Event) {
	s.dispatchMutex.Lock()
	defer s.dispatchMutex.Unlock()

	s.stateMutex.Lock()
	s.state = Reduce(s.state, event)
	newState := s.state
	listeners := make([]Listener, 0, len(s.listeners))
	for id := 0; id < s.nextListener; id++ {
		if l, found := s.listeners[id]; found {
			listeners = append(listeners, l)
		}
	}
	s.stateMutex.Unlock()

	s.logger.Log(c, event.GetAggregateName(), mylog.SeverityDebug, "Dispatched %s: loading=%v count=%d", event.GetEventTypeName(), newState.IsLoading, newState.CartCount)

	for _, l := range listeners {
		l(c, event, newState)
	}
}

func (s *Store) GetState() State {
	s.stateMutex.RLock()
	defer s.stateMutex.RUnlock()

	return s.state
}

// Subscribe registers l and returns the function that removes it again
func (s *Store) Subscribe(l Listener) func() {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	id := s.nextListener
	s.nextListener++
	s.listeners[id] = l

	return func() {
		s.stateMutex.Lock()
		defer s.stateMutex.Unlock()

		delete(s.listeners, id)
	}
}
