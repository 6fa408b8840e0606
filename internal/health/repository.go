package health

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// LogMetric inserts the metric and completes qualifying active goals in the
// same transaction, so a reader never observes the metric without the goal
// update. Returns the IDs of goals the entry completed.
func (r *repository) LogMetric(ctx context.Context, memberID int, weight, height float64, heartRate int) (*HealthMetric, []int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	var metric HealthMetric
	err = tx.GetContext(ctx, &metric, `
		INSERT INTO healthmetric (member_id, weight, height, heart_rate)
		VALUES ($1, $2, $3, $4)
		RETURNING record_id, member_id, date, weight, height, heart_rate
	`, memberID, weight, height, heartRate)
	if err != nil {
		return nil, nil, err
	}

	var completed []int
	err = tx.SelectContext(ctx, &completed, `
		UPDATE fitnessgoal
		SET status = 'Completed'
		WHERE member_id = $1 AND status = 'Active' AND target_body_weight >= $2
		RETURNING goal_id
	`, memberID, weight)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}

	return &metric, completed, nil
}

func (r *repository) CreateGoal(ctx context.Context, memberID int, targetWeight, targetFat float64) (*FitnessGoal, error) {
	query := `
		INSERT INTO fitnessgoal (member_id, target_body_weight, target_body_fat, status)
		VALUES ($1, $2, $3, 'Active')
		RETURNING goal_id, member_id, date, target_body_weight, target_body_fat, status
	`

	var goal FitnessGoal
	err := r.db.GetContext(ctx, &goal, query, memberID, targetWeight, targetFat)
	if err != nil {
		return nil, err
	}

	return &goal, nil
}

func (r *repository) ListGoals(ctx context.Context, memberID int) ([]FitnessGoal, error) {
	query := `
		SELECT goal_id, member_id, date, target_body_weight, target_body_fat, status
		FROM fitnessgoal
		WHERE member_id = $1
		ORDER BY goal_id
	`

	var goals []FitnessGoal
	err := r.db.SelectContext(ctx, &goals, query, memberID)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *repository) ListMetrics(ctx context.Context, memberID int) ([]HealthMetric, error) {
	query := `
		SELECT record_id, member_id, date, weight, height, heart_rate
		FROM healthmetric
		WHERE member_id = $1
		ORDER BY record_id DESC
	`

	var records []HealthMetric
	err := r.db.SelectContext(ctx, &records, query, memberID)
	if err != nil {
		return nil, err
	}

	return records, nil
}
