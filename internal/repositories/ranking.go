package repositories

import (
	"fmt"
	"sort"

	"alfredoptarigan/resume-analyzer/internal/docstore"
	"alfredoptarigan/resume-analyzer/internal/models"
)

type RankingRepository interface {
	Create(entry *models.RankingEntry) error
	FindByID(id string) (*models.RankingEntry, error)
	// FindAllByScoreDesc returns every entry ordered by score, highest
	// first. Ties keep insertion order.
	FindAllByScoreDesc() ([]models.RankingEntry, error)
}

type rankingRepository struct {
	store *docstore.Store
}

func NewRankingRepository(store *docstore.Store) RankingRepository {
	return &rankingRepository{store: store}
}

// Create implements RankingRepository.
func (r *rankingRepository) Create(entry *models.RankingEntry) error {
	err := r.store.Update(func(d *docstore.Data) error {
		d.Rankings = append(d.Rankings, *entry)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create ranking entry: %w", err)
	}
	return nil
}

// FindByID implements RankingRepository.
func (r *rankingRepository) FindByID(id string) (*models.RankingEntry, error) {
	var found *models.RankingEntry
	r.store.View(func(d *docstore.Data) {
		for i := range d.Rankings {
			if d.Rankings[i].ID == id {
				entry := d.Rankings[i]
				found = &entry
				return
			}
		}
	})
	if found == nil {
		return nil, fmt.Errorf("ranking entry %s: %w", id, ErrNotFound)
	}
	return found, nil
}

// FindAllByScoreDesc implements RankingRepository.
func (r *rankingRepository) FindAllByScoreDesc() ([]models.RankingEntry, error) {
	var entries []models.RankingEntry
	r.store.View(func(d *docstore.Data) {
		entries = make([]models.RankingEntry, len(d.Rankings))
		copy(entries, d.Rankings)
	})

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries, nil
}
