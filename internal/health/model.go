package health

import "time"

type HealthMetric struct {
	RecordID  int       `db:"record_id" json:"record_id"`
	MemberID  int       `db:"member_id" json:"member_id"`
	Date      time.Time `db:"date" json:"date"`
	Weight    float64   `db:"weight" json:"weight"`
	Height    float64   `db:"height" json:"height"`
	HeartRate int       `db:"heart_rate" json:"heart_rate"`
}

const (
	GoalStatusActive    = "Active"
	GoalStatusCompleted = "Completed"
)

type FitnessGoal struct {
	GoalID           int       `db:"goal_id" json:"goal_id"`
	MemberID         int       `db:"member_id" json:"member_id"`
	Date             time.Time `db:"date" json:"date"`
	TargetBodyWeight float64   `db:"target_body_weight" json:"target_body_weight"`
	TargetBodyFat    float64   `db:"target_body_fat" json:"target_body_fat"`
	Status           string    `db:"status" json:"status"`
}

type LogMetricRequest struct {
	Weight    float64 `json:"weight" binding:"required,gt=0"`
	Height    float64 `json:"height" binding:"required,gt=0"`
	HeartRate int     `json:"heart_rate" binding:"required,gt=0"`
}

type SetGoalRequest struct {
	TargetBodyWeight float64 `json:"target_body_weight" binding:"required,gt=0"`
	TargetBodyFat    float64 `json:"target_body_fat" binding:"required,gt=0"`
}

// LogMetricResponse reports the metric plus any goals the entry completed.
type LogMetricResponse struct {
	Metric         HealthMetric `json:"metric"`
	CompletedGoals []int        `json:"completed_goals,omitempty"`
}
