package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/steward/internal/app"
	"github.com/alexanderramin/steward/internal/audit"
	"github.com/alexanderramin/steward/internal/domain"
	"github.com/alexanderramin/steward/internal/intelligence"
	"github.com/alexanderramin/steward/internal/policy"
	"github.com/alexanderramin/steward/internal/registry"
	"go.opentelemetry.io/otel/attribute"
)

// PlanExecutor runs a consumed plan.
type PlanExecutor interface {
	Execute(ctx context.Context, plan domain.Plan) (domain.ExecutionResult, error)
}

// AuditRecorder records one outcome per consumed plan. Record must not fail.
type AuditRecorder interface {
	Record(ctx context.Context, planID string, kind domain.IntentKind, outcome domain.Outcome, details map[string]any) domain.AuditRecord
	Status(ctx context.Context) audit.Status
}

type assistantService struct {
	classifier intelligence.Classifier
	policy     *policy.Engine
	plans      registry.Registry
	executor   PlanExecutor
	audit      AuditRecorder
	observer   UseCaseObserver
}

// NewAssistantService wires the pipeline stages into the plan, execute and
// status use cases.
func NewAssistantService(
	classifier intelligence.Classifier,
	engine *policy.Engine,
	plans registry.Registry,
	executor PlanExecutor,
	recorder AuditRecorder,
	observers ...UseCaseObserver,
) app.Assistant {
	return &assistantService{
		classifier: classifier,
		policy:     engine,
		plans:      plans,
		executor:   executor,
		audit:      recorder,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *assistantService) Plan(ctx context.Context, req app.PlanRequest) app.PlanResponse {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	ctx, span := startSpan(ctx, "assistant.plan")
	var err error
	defer func() {
		endSpan(span, err)
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "plan",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	text := strings.TrimSpace(req.Text)
	if text == "" {
		err = fmt.Errorf("text is required: %w", app.ErrInvalidInput)
		return planFailure(err, err.Error())
	}

	intent, ok := s.classifier.Classify(text)
	if !ok {
		err = domain.ErrUnrecognized
		return planFailure(err, intelligence.UnrecognizedHint)
	}
	intelligence.EnforceConfirmation(&intent)
	fields["intent"] = intent.Kind
	span.SetAttributes(attribute.String("intent.kind", string(intent.Kind)))

	if err = s.policy.CheckIntent(intent); err != nil {
		return planFailure(err, err.Error())
	}

	var plan domain.Plan
	plan, err = s.plans.Issue(ctx, intent)
	if err != nil {
		err = fmt.Errorf("issuing plan: %w", err)
		return planFailure(err, err.Error())
	}
	fields["plan_id"] = plan.ID
	span.SetAttributes(attribute.String("plan.id", plan.ID))

	return app.PlanResponse{Success: true, Plan: &plan}
}

func planFailure(err error, message string) app.PlanResponse {
	return app.PlanResponse{Error: message, ErrorCode: app.CodeFor(err)}
}

func (s *assistantService) Execute(ctx context.Context, req app.ExecuteRequest) (resp app.ExecuteResponse) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"plan_id": req.PlanID}
	ctx, span := startSpan(ctx, "assistant.execute", attribute.String("plan.id", req.PlanID))
	var err error
	defer func() {
		endSpan(span, err)
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "execute",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if strings.TrimSpace(req.PlanID) == "" || strings.TrimSpace(req.ConfirmationToken) == "" {
		err = fmt.Errorf("plan id and confirmation token are required: %w", app.ErrInvalidInput)
		return executeFailure(err)
	}

	var plan domain.Plan
	plan, err = s.plans.Consume(ctx, req.PlanID, req.ConfirmationToken)
	if err != nil {
		return executeFailure(err)
	}
	fields["intent"] = plan.Intent.Kind
	span.SetAttributes(attribute.String("intent.kind", string(plan.Intent.Kind)))

	// From here on the plan is spent and must leave an audit record,
	// even if the caller has gone away.
	auditCtx := context.WithoutCancel(ctx)

	result, execErr := s.runPlan(ctx, plan)
	if execErr != nil {
		err = execErr
		details := map[string]any{"error": execErr.Error()}
		if errors.Is(execErr, domain.ErrPolicyDenied) {
			details["denied"] = true
		}
		rec := s.audit.Record(auditCtx, plan.ID, plan.Intent.Kind, domain.OutcomeFailure, details)
		fields["outcome"] = domain.OutcomeFailure
		fields["audit_id"] = rec.ID
		span.SetAttributes(attribute.String("outcome", string(domain.OutcomeFailure)))
		resp = executeFailure(execErr)
		resp.AuditID = rec.ID
		return resp
	}

	rec := s.audit.Record(auditCtx, plan.ID, plan.Intent.Kind, domain.OutcomeSuccess, map[string]any{"summary": result.Message})
	fields["outcome"] = domain.OutcomeSuccess
	fields["audit_id"] = rec.ID
	span.SetAttributes(attribute.String("outcome", string(domain.OutcomeSuccess)))

	return app.ExecuteResponse{
		Success: true,
		Result:  result.Result,
		Message: result.Message,
		AuditID: rec.ID,
	}
}

// runPlan executes a consumed plan, turning a panicking action into an
// execution failure so the plan is still audited.
func (s *assistantService) runPlan(ctx context.Context, plan domain.Plan) (result domain.ExecutionResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = domain.ExecutionResult{}
			err = domain.NewExecutionError(plan.Intent.Kind, fmt.Errorf("action panicked: %v", r))
		}
	}()
	return s.executor.Execute(ctx, plan)
}

func executeFailure(err error) app.ExecuteResponse {
	return app.ExecuteResponse{Error: err.Error(), ErrorCode: app.CodeFor(err)}
}

// Status reports the sandbox, the whitelist and the health of both backends.
func (s *assistantService) Status(ctx context.Context) app.StatusResponse {
	kinds := s.policy.Whitelist.Kinds()
	allowed := make([]string, len(kinds))
	for i, k := range kinds {
		allowed[i] = string(k)
	}
	return app.StatusResponse{
		Root:           s.policy.Root.Path(),
		AllowedActions: allowed,
		Audit:          s.audit.Status(ctx),
		Registry:       registryStatus(ctx, s.plans),
	}
}

func registryStatus(ctx context.Context, plans registry.Registry) app.RegistryStatus {
	st := app.RegistryStatus{Backend: fmt.Sprintf("%T", plans), Available: true}
	if named, ok := plans.(interface{ Backend() string }); ok {
		st.Backend = named.Backend()
	}
	if counter, ok := plans.(interface{ Len() int }); ok {
		n := counter.Len()
		st.ActivePlans = &n
	}
	if pinger, ok := plans.(interface{ Ping(context.Context) error }); ok {
		if err := pinger.Ping(ctx); err != nil {
			st.Available = false
			st.Error = err.Error()
		}
	}
	return st
}
