package contract

import "github.com/alexanderramin/steward/internal/app"

type ExecuteRequest = app.ExecuteRequest

func NewExecuteRequest(planID, token string) ExecuteRequest {
	return app.ExecuteRequest{PlanID: planID, ConfirmationToken: token}
}

type ExecuteResponse = app.ExecuteResponse
