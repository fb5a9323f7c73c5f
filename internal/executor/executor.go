package executor

import (
	"context"
	"log/slog"

	"github.com/alexanderramin/steward/internal/domain"
	"github.com/alexanderramin/steward/internal/policy"
)

const (
	// MaxListEntries caps how many names LIST_FILES returns.
	MaxListEntries = 50
	// MaxOpenLines caps how many lines OPEN_FILE returns.
	MaxOpenLines = 50
	// MaxReadBytes bounds how much of a file OPEN_FILE reads.
	MaxReadBytes = 1 << 20
	// TruncationMarker is appended when OPEN_FILE drops lines.
	TruncationMarker = "\n... (truncated)"
)

// dependencyCacheDir is never listed.
const dependencyCacheDir = "node_modules"

// Executor runs confirmed plans. Every action is read-only; nothing here
// writes, deletes or spawns processes.
type Executor struct {
	root   policy.Root
	logger *slog.Logger
}

// New creates an Executor confined to root.
func New(root policy.Root, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Executor{root: root, logger: logger}
}

type handler func(e *Executor, ctx context.Context, intent domain.Intent) (domain.ExecutionResult, error)

// handlers maps every dispatchable kind to its action. A kind that is
// classified but absent here fails with ErrUnknownIntent.
var handlers = map[domain.IntentKind]handler{
	domain.IntentListFiles:           (*Executor).listFiles,
	domain.IntentOpenFile:            (*Executor).openFile,
	domain.IntentRunTests:            (*Executor).runTests,
	domain.IntentSearchCode:          (*Executor).searchCode,
	domain.IntentInstallDependencies: (*Executor).installDependencies,
}

// Execute dispatches plan to the handler for its intent kind. Failures are
// always *domain.ExecutionError.
func (e *Executor) Execute(ctx context.Context, plan domain.Plan) (domain.ExecutionResult, error) {
	kind := plan.Intent.Kind
	h, ok := handlers[kind]
	if !ok {
		return domain.ExecutionResult{}, domain.NewExecutionError(kind, domain.ErrUnknownIntent)
	}
	if err := ctx.Err(); err != nil {
		return domain.ExecutionResult{}, domain.NewExecutionError(kind, err)
	}

	res, err := h(e, ctx, plan.Intent)
	if err != nil {
		e.logger.WarnContext(ctx, "action failed", "plan_id", plan.ID, "intent", kind, "error", err)
		return domain.ExecutionResult{}, domain.NewExecutionError(kind, err)
	}
	e.logger.DebugContext(ctx, "action completed", "plan_id", plan.ID, "intent", kind)
	return res, nil
}

// Supports reports whether kind has a handler.
func Supports(kind domain.IntentKind) bool {
	_, ok := handlers[kind]
	return ok
}
