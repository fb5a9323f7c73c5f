package app

import "github.com/alexanderramin/steward/internal/domain"

type PlanRequest struct {
	Text string `json:"text"`
}

type PlanResponse struct {
	Success   bool         `json:"success"`
	Plan      *domain.Plan `json:"plan,omitempty"`
	Error     string       `json:"error,omitempty"`
	ErrorCode ErrorCode    `json:"error_code,omitempty"`
}
