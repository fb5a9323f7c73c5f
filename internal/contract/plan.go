package contract

import "github.com/alexanderramin/steward/internal/app"

type PlanRequest = app.PlanRequest

func NewPlanRequest(text string) PlanRequest {
	return app.PlanRequest{Text: text}
}

type PlanResponse = app.PlanResponse
