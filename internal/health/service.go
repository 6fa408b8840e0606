package health

import (
	"context"

	"github.com/coraxie-ca/comp3005-project/internal/logger"
	"github.com/coraxie-ca/comp3005-project/internal/member"
	"github.com/coraxie-ca/comp3005-project/internal/metrics"
)

// Notifier queues goal-achieved mail; satisfied by email.Service.
type Notifier interface {
	SendGoalAchieved(ctx context.Context, to, name string, completedGoals int) error
}

type Service interface {
	LogMetric(ctx context.Context, memberID int, req LogMetricRequest) (*LogMetricResponse, error)
	SetGoal(ctx context.Context, memberID int, req SetGoalRequest) (*FitnessGoal, error)
	ListGoals(ctx context.Context, memberID int) ([]FitnessGoal, error)
	ListMetrics(ctx context.Context, memberID int) ([]HealthMetric, error)
}

type service struct {
	repo       Repository
	memberRepo member.Repository
	notifier   Notifier
}

func NewService(repo Repository, memberRepo member.Repository, notifier Notifier) Service {
	return &service{
		repo:       repo,
		memberRepo: memberRepo,
		notifier:   notifier,
	}
}

func (s *service) LogMetric(ctx context.Context, memberID int, req LogMetricRequest) (*LogMetricResponse, error) {
	metric, completed, err := s.repo.LogMetric(ctx, memberID, req.Weight, req.Height, req.HeartRate)
	if err != nil {
		return nil, err
	}

	if len(completed) > 0 {
		metrics.RecordGoalsCompleted(len(completed))
		s.notifyGoalAchieved(ctx, memberID, len(completed))
	}

	return &LogMetricResponse{
		Metric:         *metric,
		CompletedGoals: completed,
	}, nil
}

func (s *service) SetGoal(ctx context.Context, memberID int, req SetGoalRequest) (*FitnessGoal, error) {
	return s.repo.CreateGoal(ctx, memberID, req.TargetBodyWeight, req.TargetBodyFat)
}

func (s *service) ListGoals(ctx context.Context, memberID int) ([]FitnessGoal, error) {
	return s.repo.ListGoals(ctx, memberID)
}

func (s *service) ListMetrics(ctx context.Context, memberID int) ([]HealthMetric, error) {
	return s.repo.ListMetrics(ctx, memberID)
}

func (s *service) notifyGoalAchieved(ctx context.Context, memberID, completedGoals int) {
	if s.notifier == nil {
		return
	}

	m, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		logger.Errorf("Goal completed but member %d lookup failed: %v", memberID, err)
		return
	}

	if err := s.notifier.SendGoalAchieved(ctx, m.Email, m.Name, completedGoals); err != nil {
		logger.Errorf("Failed to queue goal-achieved email for member %d: %v", memberID, err)
	}
}
