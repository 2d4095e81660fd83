package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "storeradar/internal/delivery/context"
	"storeradar/internal/domain/catalog"
	"storeradar/internal/domain/constants"
	"storeradar/internal/domain/entity"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/repository"
	"storeradar/internal/domain/service"
	"storeradar/internal/usecase"
	"storeradar/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const isoDateLayout = "2006-01-02"

type assignmentService struct {
	storeRepo      repository.StoreRepository
	assignmentRepo repository.AssignmentRepository
	publisher      service.EventPublisher
	exporter       service.ReportExporter
	logger         *slog.Logger
}

// AssignmentServiceParams holds dependencies for AssignmentService, injected by Fx.
type AssignmentServiceParams struct {
	fx.In

	StoreRepo      repository.StoreRepository
	AssignmentRepo repository.AssignmentRepository
	Publisher      service.EventPublisher
	Exporter       service.ReportExporter
	Logger         *slog.Logger
}

// NewAssignmentService creates the visit planning use case.
func NewAssignmentService(params AssignmentServiceParams) usecase.AssignmentUsecase {
	return &assignmentService{
		storeRepo:      params.StoreRepo,
		assignmentRepo: params.AssignmentRepo,
		publisher:      params.Publisher,
		exporter:       params.Exporter,
		logger:         params.Logger,
	}
}

func (srv *assignmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Assign schedules the known stores among the tokens for one agent and date.
// Unknown tokens and rows that fail to write are skipped.
func (srv *assignmentService) Assign(ctx context.Context, assignedBy uuid.UUID, input *usecase.AssignInput) (*usecase.AssignOutput, error) {
	if input.UserID == uuid.Nil || len(input.StoreTokens) == 0 || input.AssignedDate.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("userId, storeTokens and assignedDate are required")
	}

	stores, err := srv.storeRepo.FindByTokens(ctx, input.StoreTokens)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find stores by token")
	}
	known := make(map[string]struct{}, len(stores))
	for _, store := range stores {
		known[store.Token] = struct{}{}
	}

	out := &usecase.AssignOutput{
		Assignments:   make([]*entity.Assignment, 0, len(known)),
		SkippedTokens: []string{},
		FailedTokens:  []string{},
	}
	seen := make(map[string]struct{}, len(input.StoreTokens))
	for _, token := range input.StoreTokens {
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}

		if _, ok := known[token]; !ok {
			srv.log(ctx).Debug("Skipping unknown store token", slog.String("token", token))
			out.SkippedTokens = append(out.SkippedTokens, token)

			continue
		}

		assignment := &entity.Assignment{
			UserID:       input.UserID,
			StoreToken:   token,
			AssignedDate: input.AssignedDate,
			Status:       constants.AssignmentStatusPending,
			Notes:        input.Notes,
			AssignedBy:   &assignedBy,
		}
		if err := srv.assignmentRepo.Upsert(ctx, assignment); err != nil {
			srv.log(ctx).Error("Failed to assign store", slog.String("token", token), slog.Any("error", err))
			out.FailedTokens = append(out.FailedTokens, token)

			continue
		}
		out.Assignments = append(out.Assignments, assignment)
	}
	out.Requested = len(seen)

	if len(out.Assignments) > 0 {
		srv.publishAssigned(ctx, assignedBy, input, out.Assignments)
	}

	out.Message = fmt.Sprintf("%d stores assigned successfully", len(out.Assignments))
	if n := len(out.Assignments); n < out.Requested {
		srv.log(ctx).Info("Assignment partially applied",
			slog.Int("assigned", n),
			slog.Int("requested", out.Requested),
			slog.Int("skipped", len(out.SkippedTokens)),
			slog.Int("failed", len(out.FailedTokens)),
		)
	}

	return out, nil
}

// publishAssigned notifies the agent. A failed publish does not undo the assignment.
func (srv *assignmentService) publishAssigned(ctx context.Context, assignedBy uuid.UUID, input *usecase.AssignInput, assignments []*entity.Assignment) {
	event := &service.AssignmentEvent{
		Type:         constants.EventAssignmentCreated,
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		UserID:       input.UserID.String(),
		AssignedBy:   assignedBy.String(),
		AssignedDate: input.AssignedDate.Format(isoDateLayout),
	}
	for _, a := range assignments {
		event.AssignmentIDs = append(event.AssignmentIDs, a.ID)
		event.StoreTokens = append(event.StoreTokens, a.StoreToken)
	}

	if err := srv.publisher.PublishAssignmentEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish assignment event", slog.Any("error", err))
	}
}

// List returns assignments with their canonical store records, one per store token.
func (srv *assignmentService) List(ctx context.Context, filter entity.AssignmentFilter) ([]usecase.AssignedStore, error) {
	if filter.Status != nil && strings.TrimSpace(*filter.Status) == "" {
		filter.Status = nil
	}

	rows, err := srv.assignmentRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list assignments")
	}

	rows = catalog.DedupByToken(rows)
	out := make([]usecase.AssignedStore, 0, len(rows))
	for _, row := range rows {
		out = append(out, usecase.AssignedStore{
			Assignment: row.Assignment,
			Store:      catalog.Normalize(row.Store),
			User:       row.User,
		})
	}

	return out, nil
}

// Export renders the listed assignments as a spreadsheet.
func (srv *assignmentService) Export(ctx context.Context, filter entity.AssignmentFilter) ([]byte, error) {
	assigned, err := srv.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows := make([]service.AssignmentReportRow, 0, len(assigned))
	for _, a := range assigned {
		row := service.AssignmentReportRow{
			AssignmentID: a.Assignment.ID,
			AssignedDate: util.JalaliDate(a.Assignment.AssignedDate),
			VisitDate:    util.JalaliDatePtr(a.Assignment.VisitDate),
			Status:       a.Assignment.Status,
			Notes:        deref(a.Assignment.Notes),
			Store:        a.Store,
		}
		if a.User != nil {
			row.Username = a.User.Username
			row.FullName = deref(a.User.FullName)
		}
		rows = append(rows, row)
	}

	report, err := srv.exporter.AssignmentsXLSX(rows)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render assignment report")
	}
	srv.log(ctx).Info("Assignment report exported", slog.Int("rows", len(rows)), slog.String("size", util.FormatBytes(int64(len(report)))))

	return report, nil
}
