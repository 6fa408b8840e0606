package health

import "context"

type Repository interface {
	LogMetric(ctx context.Context, memberID int, weight, height float64, heartRate int) (*HealthMetric, []int, error)
	CreateGoal(ctx context.Context, memberID int, targetWeight, targetFat float64) (*FitnessGoal, error)
	ListGoals(ctx context.Context, memberID int) ([]FitnessGoal, error)
	ListMetrics(ctx context.Context, memberID int) ([]HealthMetric, error)
}
