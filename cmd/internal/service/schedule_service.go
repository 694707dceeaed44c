package service

import (
	"oficinapro/cmd/internal/domain/entity"
	"oficinapro/cmd/internal/domain/scheduling"
	"oficinapro/cmd/internal/utils"
	"oficinapro/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type ScheduleRepository interface {
	FindByID(id int) (*entity.Schedule, error)
	FindByUserID(userID int) ([]*entity.Schedule, error)
	FindByUserAndDate(userID int, date string) ([]*entity.Schedule, error)
	Save(sched *entity.Schedule) error
	Delete(sched *entity.Schedule) error
}

type ScheduleRequest struct {
	ClientID        int    `json:"client_id" validate:"required,gt=0"`
	Title           string `json:"title" validate:"required,min=3,max=128"`
	Description     string `json:"description" validate:"max=1000"`
	Date            string `json:"date" validate:"required,ymd"`
	Time            string `json:"time" validate:"required,hhmm"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,min=15,max=480"`
	Status          string `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`

	// Force is the "create anyway" confirmation: a conflicting slot is
	// rejected with 409 unless the caller explicitly sets it.
	Force bool `json:"force"`
}

type ScheduleResponse struct {
	ID              int    `json:"id"`
	ClientID        int    `json:"client_id"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
	DurationDisplay string `json:"duration_display"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type DefaultScheduleService struct {
	ScheduleRepo ScheduleRepository
	ClientRepo   ClientRepository
	UserRepo     UserRepository
	Validate     *validator.Validate

	locks *ownerLocks
}

func NewScheduleService(scheduleRepo ScheduleRepository, clientRepo ClientRepository, userRepo UserRepository, validate *validator.Validate) *DefaultScheduleService {
	return &DefaultScheduleService{
		ScheduleRepo: scheduleRepo,
		ClientRepo:   clientRepo,
		UserRepo:     userRepo,
		Validate:     validate,
		locks:        newOwnerLocks(),
	}
}

func (s *DefaultScheduleService) GetSchedules(sub, date string) ([]*ScheduleResponse, apierror.ErrorResponse) {
	caller, apierr := resolveOwner(s.UserRepo, sub)
	if apierr != nil {
		return nil, apierr
	}

	var scheds []*entity.Schedule
	var err error
	if date != "" {
		scheds, err = s.ScheduleRepo.FindByUserAndDate(caller.ID, date)
	} else {
		scheds, err = s.ScheduleRepo.FindByUserID(caller.ID)
	}
	if err != nil {
		log.Errorf("failed to fetch schedules for user %d: %v", caller.ID, err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*ScheduleResponse, len(scheds))
	for i, sched := range scheds {
		resp[i] = toScheduleResponse(sched)
	}
	return resp, nil
}

func (s *DefaultScheduleService) CreateSchedule(req *ScheduleRequest, sub string) (*ScheduleResponse, apierror.ErrorResponse) {
	caller, apierr := resolveOwner(s.UserRepo, sub)
	if apierr != nil {
		return nil, apierr
	}

	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	if req.Date < utils.Today() {
		return nil, apierror.DateInPastError
	}

	if apierr := s.checkClientOwned(req.ClientID, caller.ID); apierr != nil {
		return nil, apierr
	}

	status := req.Status
	if status == "" {
		status = entity.ScheduleStatusPending
	}

	// Hold the owner lock across read-check-write so two concurrent
	// requests cannot both pass the conflict check for the same slot.
	unlock := s.locks.lock(caller.ID)
	defer unlock()

	if apierr := s.checkSlotFree(caller.ID, req, 0); apierr != nil {
		return nil, apierr
	}

	now := utils.NowUTC()
	sched := &entity.Schedule{
		UserID:          caller.ID,
		ClientID:        req.ClientID,
		Title:           req.Title,
		Description:     optional(req.Description),
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,
		Status:          status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.ScheduleRepo.Save(sched); err != nil {
		log.Errorf("failed to save schedule: %v", err)
		return nil, apierror.InternalServerError
	}
	return toScheduleResponse(sched), nil
}

func (s *DefaultScheduleService) UpdateSchedule(id int, req *ScheduleRequest, sub string) (*ScheduleResponse, apierror.ErrorResponse) {
	caller, apierr := resolveOwner(s.UserRepo, sub)
	if apierr != nil {
		return nil, apierr
	}

	sched, apierr := s.fetchOwned(id, caller.ID)
	if apierr != nil {
		return nil, apierr
	}

	utils.Sanitize(req)
	if err := s.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	if req.ClientID != sched.ClientID {
		if apierr := s.checkClientOwned(req.ClientID, caller.ID); apierr != nil {
			return nil, apierr
		}
	}

	status := req.Status
	if status == "" {
		status = sched.Status
	}

	unlock := s.locks.lock(caller.ID)
	defer unlock()

	// A schedule being cancelled no longer occupies its slot, so only
	// live target states re-run the conflict check.
	if status != entity.ScheduleStatusCancelled {
		if apierr := s.checkSlotFree(caller.ID, req, sched.ID); apierr != nil {
			return nil, apierr
		}
	}

	sched.ClientID = req.ClientID
	sched.Title = req.Title
	sched.Description = optional(req.Description)
	sched.Date = req.Date
	sched.Time = req.Time
	sched.DurationMinutes = req.DurationMinutes
	sched.Status = status
	sched.UpdatedAt = utils.NowUTC()

	if err := s.ScheduleRepo.Save(sched); err != nil {
		log.Errorf("failed to update schedule %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toScheduleResponse(sched), nil
}

func (s *DefaultScheduleService) DeleteSchedule(id int, sub string) apierror.ErrorResponse {
	caller, apierr := resolveOwner(s.UserRepo, sub)
	if apierr != nil {
		return apierr
	}

	sched, apierr := s.fetchOwned(id, caller.ID)
	if apierr != nil {
		return apierr
	}

	if err := s.ScheduleRepo.Delete(sched); err != nil {
		log.Errorf("failed to delete schedule %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

// checkSlotFree fetches the owner's schedules for the requested day and
// runs the conflict checker. excludeID skips the schedule being
// rescheduled so it does not conflict with itself. Fetch or parse
// failures propagate as errors, never as "no conflict".
func (s *DefaultScheduleService) checkSlotFree(ownerID int, req *ScheduleRequest, excludeID int) apierror.ErrorResponse {
	existing, err := s.ScheduleRepo.FindByUserAndDate(ownerID, req.Date)
	if err != nil {
		log.Errorf("failed to fetch schedules for conflict check: %v", err)
		return apierror.InternalServerError
	}

	if excludeID != 0 {
		filtered := existing[:0]
		for _, sched := range existing {
			if sched.ID != excludeID {
				filtered = append(filtered, sched)
			}
		}
		existing = filtered
	}

	candidate := scheduling.Candidate{
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,
	}

	conflict, err := scheduling.HasConflict(candidate, existing)
	if err != nil {
		log.Errorf("conflict check failed for owner %d: %v", ownerID, err)
		return apierror.InternalServerError
	}

	if conflict && !req.Force {
		return apierror.ScheduleConflictError
	}
	return nil
}

func (s *DefaultScheduleService) fetchOwned(id, ownerID int) (*entity.Schedule, apierror.ErrorResponse) {
	sched, err := s.ScheduleRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch schedule %d: %v", id, err)
		return nil, apierror.InternalServerError
	}
	if sched == nil || sched.UserID != ownerID {
		return nil, apierror.ScheduleNotFoundError
	}
	return sched, nil
}

func (s *DefaultScheduleService) checkClientOwned(clientID, ownerID int) apierror.ErrorResponse {
	client, err := s.ClientRepo.FindByID(clientID)
	if err != nil {
		log.Errorf("failed to fetch client %d: %v", clientID, err)
		return apierror.InternalServerError
	}
	if client == nil || client.UserID != ownerID {
		return apierror.ClientNotFoundError
	}
	return nil
}

func toScheduleResponse(sched *entity.Schedule) *ScheduleResponse {
	return &ScheduleResponse{
		ID:              sched.ID,
		ClientID:        sched.ClientID,
		Title:           sched.Title,
		Description:     strOrEmpty(sched.Description),
		Date:            sched.Date,
		Time:            sched.Time,
		DurationMinutes: sched.DurationMinutes,
		DurationDisplay: utils.FormatDuration(sched.DurationMinutes),
		Status:          sched.Status,
		CreatedAt:       utils.FormatEpoch(sched.CreatedAt),
		UpdatedAt:       utils.FormatEpoch(sched.UpdatedAt),
	}
}
