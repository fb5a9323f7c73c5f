package app

import "context"

type PlanUseCase interface {
	Plan(ctx context.Context, req PlanRequest) PlanResponse
}

type ExecuteUseCase interface {
	Execute(ctx context.Context, req ExecuteRequest) ExecuteResponse
}

type StatusUseCase interface {
	Status(ctx context.Context) StatusResponse
}

// Assistant is the full command pipeline as seen by a transport.
type Assistant interface {
	PlanUseCase
	ExecuteUseCase
	StatusUseCase
}
