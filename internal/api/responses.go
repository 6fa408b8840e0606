package api

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeInfo    = "info"
)

// Result is the uniform envelope every operation returns to the caller.
type Result struct {
	Outcome string      `json:"outcome" example:"success"`
	Message string      `json:"message" example:"PT session booked"`
	Payload interface{} `json:"payload,omitempty"`
}

func Success(message string, payload interface{}) Result {
	return Result{Outcome: OutcomeSuccess, Message: message, Payload: payload}
}

func Error(message string) Result {
	return Result{Outcome: OutcomeError, Message: message}
}

func Info(message string) Result {
	return Result{Outcome: OutcomeInfo, Message: message}
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
