package repository

import (
	"errors"

	"oficinapro/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *DefaultScheduleRepository {
	return &DefaultScheduleRepository{db: db}
}

func (s *DefaultScheduleRepository) FindByID(id int) (*entity.Schedule, error) {
	var sched entity.Schedule
	err := s.db.First(&sched, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sched, err
}

func (s *DefaultScheduleRepository) FindByUserID(userID int) ([]*entity.Schedule, error) {
	var scheds []*entity.Schedule
	err := s.db.Where("user_id = ?", userID).
		Order("date asc, time asc").
		Find(&scheds).Error
	return scheds, err
}

// FindByUserAndDate returns every schedule of one owner on one calendar
// day, cancelled ones included; the conflict checker decides what counts.
func (s *DefaultScheduleRepository) FindByUserAndDate(userID int, date string) ([]*entity.Schedule, error) {
	var scheds []*entity.Schedule
	err := s.db.Where("user_id = ? AND date = ?", userID, date).
		Order("time asc").
		Find(&scheds).Error
	return scheds, err
}

func (s *DefaultScheduleRepository) Save(sched *entity.Schedule) error {
	return s.db.Save(sched).Error
}

func (s *DefaultScheduleRepository) Delete(sched *entity.Schedule) error {
	return s.db.Delete(sched).Error
}
