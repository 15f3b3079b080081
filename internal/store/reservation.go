package store

import (
	"errors"

	"github.com/zonebook/zonebook/internal/models"
	"gorm.io/gorm"
)

// ReservationStore owns all reads and writes of reservation rows. Every
// write is a single-row insert, full replace, or delete; a write has
// been durably committed by the time any method returns nil.
type ReservationStore struct {
	db *gorm.DB
}

func NewReservationStore(db *gorm.DB) *ReservationStore {
	return &ReservationStore{db: db}
}

// List returns every reservation ordered by date, ties broken by start
// time. No server-side filtering or pagination, clients get the full set.
func (s *ReservationStore) List() ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.db.Order("date ASC, start_time ASC").Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// Create inserts the reservation and fills in the assigned id.
func (s *ReservationStore) Create(r *models.Reservation) error {
	return s.db.Create(r).Error
}

// Update replaces the stored record with r. Existence decides the
// outcome: if the id is present the write succeeds even when no column
// actually changes, only a missing id yields ErrNotFound.
func (s *ReservationStore) Update(id uint, in models.Input) (*models.Reservation, error) {
	var r models.Reservation
	if err := s.db.First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	in.Apply(&r)
	if err := s.db.Save(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// Delete removes the row for good. There is no soft delete: a deleted id
// is gone and deleting it again reports ErrNotFound.
func (s *ReservationStore) Delete(id uint) error {
	res := s.db.Delete(&models.Reservation{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
