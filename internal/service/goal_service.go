package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"financas/internal/dto"
	"financas/internal/models"
	"financas/internal/repository"

	"go.uber.org/zap"
)

// GoalCategory is returned on every savings goal; the table carries no
// category column.
const GoalCategory = "Outros"

type GoalService struct {
	goalRepo *repository.SavingsGoalRepository
	logger   *zap.Logger
}

func NewGoalService(goalRepo *repository.SavingsGoalRepository, logger *zap.Logger) *GoalService {
	return &GoalService{
		goalRepo: goalRepo,
		logger:   logger,
	}
}

func (s *GoalService) List(ctx context.Context, userID int64) (*dto.GoalsResponse, error) {
	goals, err := s.goalRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.GoalsResponse{Goals: make([]dto.GoalResponse, 0, len(goals))}
	for _, g := range goals {
		resp.Goals = append(resp.Goals, mapGoal(g))
	}
	return resp, nil
}

func (s *GoalService) Create(ctx context.Context, userID int64, req *dto.GoalRequest) (*dto.GoalResponse, error) {
	if req.Nome == "" || req.ValorObjetivo == nil || req.Prazo == "" {
		return nil, ErrValidation
	}

	deadline, err := time.Parse(dateLayout, req.Prazo)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid deadline", ErrValidation)
	}

	goal := &models.SavingsGoal{
		UserID:       userID,
		Name:         req.Nome,
		TargetAmount: *req.ValorObjetivo,
		Deadline:     deadline,
	}
	if req.ValorAtual != nil {
		goal.CurrentAmount = *req.ValorAtual
	}

	if err := s.goalRepo.Create(ctx, goal); err != nil {
		return nil, err
	}

	resp := mapGoal(*goal)
	return &resp, nil
}

func (s *GoalService) Update(ctx context.Context, userID, goalID int64, req *dto.GoalRequest) (*dto.GoalResponse, error) {
	if err := s.checkOwnership(ctx, userID, goalID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Nome != "" {
		fields["name"] = req.Nome
	}
	if req.ValorObjetivo != nil {
		fields["target_amount"] = *req.ValorObjetivo
	}
	if req.ValorAtual != nil {
		fields["current_amount"] = *req.ValorAtual
	}
	if req.Prazo != "" {
		deadline, err := time.Parse(dateLayout, req.Prazo)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid deadline", ErrValidation)
		}
		fields["deadline"] = deadline
	}
	if len(fields) == 0 {
		return nil, ErrValidation
	}

	goal, err := s.goalRepo.Update(ctx, goalID, fields)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	resp := mapGoal(*goal)
	return &resp, nil
}

func (s *GoalService) Delete(ctx context.Context, userID, goalID int64) error {
	if err := s.checkOwnership(ctx, userID, goalID); err != nil {
		return err
	}
	return s.goalRepo.Delete(ctx, goalID)
}

func (s *GoalService) checkOwnership(ctx context.Context, userID, goalID int64) error {
	goal, err := s.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if goal.UserID != userID {
		return ErrForbidden
	}
	return nil
}

func mapGoal(g models.SavingsGoal) dto.GoalResponse {
	return dto.GoalResponse{
		ID:            g.ID,
		Nome:          g.Name,
		ValorAtual:    g.CurrentAmount,
		ValorObjetivo: g.TargetAmount,
		Prazo:         g.Deadline.Format(dateLayout),
		Categoria:     GoalCategory,
	}
}

// PublicGoals is the read-only /ws listing.
func (s *GoalService) PublicGoals(ctx context.Context, userID int64) (*dto.PublicGoalsResponse, error) {
	goals, err := s.goalRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.PublicGoalsResponse{
		UserID: userID,
		Total:  len(goals),
		Goals:  make([]dto.PublicGoal, 0, len(goals)),
	}
	for _, g := range goals {
		resp.Goals = append(resp.Goals, dto.PublicGoal{
			ID:            g.ID,
			Nome:          g.Name,
			ValorObjetivo: g.TargetAmount,
			ValorAtual:    g.CurrentAmount,
			Prazo:         g.Deadline.Format(dateLayout),
		})
	}
	return resp, nil
}
