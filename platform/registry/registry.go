package registry

import (
	"errors"
	"sync"

	"github.com/Asabs18/Monopoly/app/models"
	"github.com/Asabs18/Monopoly/platform/engine"
)

var ErrNotFound = errors.New("game not found")

// Entry is one hosted table. Game stays nil until the host starts it; the
// lobby phase only collects seats. Mu serializes all engine access for the
// entry, keeping the engine itself single-threaded as required.
type Entry struct {
	Mu sync.Mutex

	Id     string
	Name   string
	Status string
	Seats  []engine.Seat
	Game   *engine.Game
}

// Registry is the in-memory table of running games. All game state lives
// in this process; there is no external store.
type Registry struct {
	mu    sync.RWMutex
	games map[string]*Entry
}

func New() *Registry {
	return &Registry{games: map[string]*Entry{}}
}

func (r *Registry) Create(id, name string) *Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry := &Entry{Id: id, Name: name, Status: "waiting"}
	r.games[id] = entry
	return entry
}

func (r *Registry) Get(id string) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	return entry, nil
}

func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.games, id)
}

// Available lists games still waiting for players.
func (r *Registry) Available() []models.Game {
	r.mu.RLock()
	defer r.mu.RUnlock()
	games := []models.Game{}
	for _, entry := range r.games {
		if entry.Status == "waiting" {
			games = append(games, models.Game{Id: entry.Id, Name: entry.Name, Status: entry.Status})
		}
	}
	return games
}
