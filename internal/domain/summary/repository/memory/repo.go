package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Conte777/tubedigest/internal/domain/summary/deps"
	"github.com/Conte777/tubedigest/internal/domain/summary/dto"
	"github.com/Conte777/tubedigest/internal/domain/summary/entities"
	sumerrors "github.com/Conte777/tubedigest/internal/domain/summary/errors"
	"github.com/google/uuid"
)

type videoKey struct {
	userID  string
	videoID string
}

// Repository is an in-memory SummaryRepository
type Repository struct {
	mu      sync.RWMutex
	rows    map[uuid.UUID]entities.VideoSummary
	byVideo map[videoKey]uuid.UUID
	writes  int
}

func NewRepository() *Repository {
	return &Repository{
		rows:    make(map[uuid.UUID]entities.VideoSummary),
		byVideo: make(map[videoKey]uuid.UUID),
	}
}

var _ deps.SummaryRepository = (*Repository)(nil)

func (r *Repository) Create(_ context.Context, s *entities.VideoSummary) (*entities.VideoSummary, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := videoKey{userID: s.UserID, videoID: s.VideoID}
	if id, ok := r.byVideo[key]; ok {
		existing := r.rows[id]
		return &existing, false, nil
	}

	stored := *s
	now := time.Now().UTC()
	stored.CreatedAt, stored.UpdatedAt = now, now
	r.rows[stored.ID] = stored
	r.byVideo[key] = stored.ID
	r.writes++
	return &stored, true, nil
}

func (r *Repository) Get(_ context.Context, id uuid.UUID, userID string) (*entities.VideoSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.rows[id]
	if !ok || s.UserID != userID {
		return nil, sumerrors.ErrSummaryNotFound
	}
	return &s, nil
}

func (r *Repository) ListForChannel(_ context.Context, channelID uuid.UUID, userID string) ([]entities.VideoSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.VideoSummary, 0)
	for _, s := range r.rows {
		if s.ChannelID == channelID && s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PublishedAt.Equal(out[j].PublishedAt) {
			return out[i].PublishedAt.After(out[j].PublishedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (r *Repository) SetRead(_ context.Context, id uuid.UUID, userID string, read bool) (dto.ReadResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.rows[id]
	if !ok || s.UserID != userID {
		return dto.ReadResult{}, nil
	}
	if s.IsRead == read {
		return dto.ReadResult{Found: true}, nil
	}
	s.IsRead = read
	s.UpdatedAt = time.Now().UTC()
	r.rows[id] = s
	r.writes++
	return dto.ReadResult{Found: true, Changed: true}, nil
}

// Writes counts inserts and state changes
func (r *Repository) Writes() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.writes
}

// Len returns the number of stored summaries
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows)
}
