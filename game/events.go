package game

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-duel/model"
)

// EventKind says which kind of change produced an Event
type EventKind int

const (
	// EventGeneration follows every committed generation
	EventGeneration EventKind = iota
	// EventEdited follows a setup edit: toggle, stamp, clear or randomize
	EventEdited
	// EventPhase follows start, stop and player switches
	EventPhase
	// EventGameOver follows the transition into GameOver
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventGeneration:
		return "generation"
	case EventEdited:
		return "edited"
	case EventPhase:
		return "phase"
	case EventGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers after each state change
type Event struct {
	Kind     EventKind
	Snapshot Snapshot
}

// Snapshot is a read-only copy of the session state. It satisfies model.CellSource
// so renderers can draw it without touching the live grid.
type Snapshot struct {
	Width         int
	Height        int
	Cells         []model.CellState // row-major
	Player1       int
	Player2       int
	CurrentPlayer model.Player
	Phase         Phase
	Outcome       Outcome
	Reason        EndReason
	Generation    int
	GridVisible   bool
	Hash          string
}

var _ model.CellSource = Snapshot{}

func (s Snapshot) GetWidth() int {
	return s.Width
}

func (s Snapshot) GetHeight() int {
	return s.Height
}

// Get returns the state of a single cell in the snapshot
func (s Snapshot) Get(x, y int) (model.CellState, error) {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return model.Dead, errors.Wrapf(model.ErrOutOfBounds, "[Get] (%d, %d) outside %dx%d snapshot", x, y, s.Width, s.Height)
	}
	return s.Cells[y*s.Width+x], nil
}

// Snapshot copies the current session state
func (s *Session) Snapshot() Snapshot {
	p1, p2 := s.Scores()
	return Snapshot{
		Width:         s.grid.GetWidth(),
		Height:        s.grid.GetHeight(),
		Cells:         s.grid.Flatten(nil),
		Player1:       p1,
		Player2:       p2,
		CurrentPlayer: s.currentPlayer,
		Phase:         s.Phase(),
		Outcome:       s.outcome,
		Reason:        s.reason,
		Generation:    s.generation,
		GridVisible:   s.showGrid,
		Hash:          s.grid.GetGridHash(),
	}
}

type listener struct {
	id int
	fn func(Event)
}

// Subscribe registers fn to receive an Event after every state change.
// Listeners run synchronously on the caller's goroutine. The returned func unsubscribes.
func (s *Session) Subscribe(fn func(Event)) func() {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	return func() {
		// listeners may unsubscribe while publish is ranging over the old slice
		s.listeners = slices.DeleteFunc(slices.Clone(s.listeners), func(l listener) bool {
			return l.id == id
		})
	}
}

func (s *Session) publish(kind EventKind) {
	if len(s.listeners) == 0 {
		return
	}
	ev := Event{Kind: kind, Snapshot: s.Snapshot()}
	for _, l := range slices.Clone(s.listeners) {
		l.fn(ev)
	}
}
