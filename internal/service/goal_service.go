package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/apperrors"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/model"
	"github.com/jdehaan/Net-Worth-Tracker-Backend/internal/repository"
)

// GoalService handles savings goal operations inside the aggregate. Goals
// have no valuation dependency.
type GoalService struct {
	repo *repository.PortfolioRepository
}

// NewGoalService creates a new GoalService.
func NewGoalService(repo *repository.PortfolioRepository) *GoalService {
	return &GoalService{repo: repo}
}

// GoalUpdate carries the partial fields of a goal update. Nil fields are
// left unchanged. ClearDeadline removes an existing deadline; it takes
// precedence over Deadline.
type GoalUpdate struct {
	Name          *string
	TargetAmount  *float64
	CurrentAmount *float64
	Deadline      *string
	ClearDeadline bool
}

// AddGoal assigns a fresh id and appends the goal to the aggregate.
func (s *GoalService) AddGoal(ctx context.Context, userID string, goal model.SavingsGoal) (model.SavingsGoal, error) {
	goal.ID = uuid.New().String()

	_, err := mutatePortfolio(ctx, s.repo, userID, func(p *model.Portfolio) error {
		p.Goals = append(p.Goals, goal)
		return nil
	})
	if err != nil {
		return model.SavingsGoal{}, err
	}

	return goal, nil
}

// UpdateGoal applies a partial update to an existing goal. Returns
// apperrors.ErrGoalNotFound for an unknown id.
func (s *GoalService) UpdateGoal(ctx context.Context, userID, goalID string, update GoalUpdate) (model.SavingsGoal, error) {
	var updated model.SavingsGoal

	_, err := mutatePortfolio(ctx, s.repo, userID, func(p *model.Portfolio) error {
		i, ok := p.FindGoal(goalID)
		if !ok {
			return apperrors.ErrGoalNotFound
		}

		goal := p.Goals[i]
		if update.Name != nil {
			goal.Name = *update.Name
		}
		if update.TargetAmount != nil {
			goal.TargetAmount = *update.TargetAmount
		}
		if update.CurrentAmount != nil {
			goal.CurrentAmount = *update.CurrentAmount
		}
		if update.ClearDeadline {
			goal.Deadline = ""
		} else if update.Deadline != nil {
			goal.Deadline = *update.Deadline
		}

		p.Goals[i] = goal
		updated = goal
		return nil
	})
	if err != nil {
		return model.SavingsGoal{}, err
	}

	return updated, nil
}

// DeleteGoal removes a goal from the aggregate. Returns
// apperrors.ErrGoalNotFound for an unknown id.
func (s *GoalService) DeleteGoal(ctx context.Context, userID, goalID string) error {
	_, err := mutatePortfolio(ctx, s.repo, userID, func(p *model.Portfolio) error {
		i, ok := p.FindGoal(goalID)
		if !ok {
			return apperrors.ErrGoalNotFound
		}
		p.Goals = append(p.Goals[:i], p.Goals[i+1:]...)
		return nil
	})
	return err
}
