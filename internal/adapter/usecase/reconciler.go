package usecase

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"mesa-campaigns/internal/core/domain"
	"mesa-campaigns/internal/core/port"
	"mesa-campaigns/internal/core/retry"
)

// Reconciler changes a resource's status and re-reads it to find out what
// the platform actually applied.
type Reconciler struct {
	platform port.AdPlatformClient
	exec     *retry.Executor
	tracer   trace.Tracer
}

// NewReconciler returns a reconciler calling platform through exec. A nil
// tracer disables tracing.
func NewReconciler(platform port.AdPlatformClient, exec *retry.Executor, tracer trace.Tracer) *Reconciler {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("reconciler")
	}
	return &Reconciler{platform: platform, exec: exec, tracer: tracer}
}

// UpdateAndVerify sends the status change, then fetches the resource and
// compares requested and observed status. A mismatch sets Warning; it is not
// an error.
func (r *Reconciler) UpdateAndVerify(ctx context.Context, ref domain.ResourceRef, requested domain.ResourceStatus) (*domain.StatusUpdateResult, error) {
	const op = "reconciler.UpdateAndVerify"
	if ref.ID == "" {
		return nil, domain.Validation(op, "resource id is required")
	}
	if !requested.Valid() {
		return nil, domain.Validation(op, "unsupported status %q", requested)
	}
	get, err := r.getter(ref.Type)
	if err != nil {
		return nil, err
	}

	ctx, span := r.tracer.Start(ctx, "reconciler.update_and_verify", trace.WithAttributes(
		attribute.String("resource.type", string(ref.Type)),
		attribute.String("resource.id", ref.ID),
		attribute.String("status.requested", string(requested)),
	))
	defer span.End()

	err = r.exec.Execute(ctx, "platform.UpdateStatus", func(ctx context.Context) error {
		return r.platform.UpdateStatus(ctx, ref, requested)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, notFound(err, ref)
	}

	state, err := retry.Do(ctx, r.exec, "platform.Get", func(ctx context.Context) (domain.ResourceState, error) {
		return get(ctx, ref.ID)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, notFound(err, ref)
	}

	res := &domain.StatusUpdateResult{
		ResourceID:      ref.ID,
		ResourceType:    ref.Type,
		RequestedStatus: requested,
		ActualStatus:    state.Status,
		SecondaryStatus: state.SecondaryStatus,
		Warning:         requested != state.Status,
	}
	res.IsEffectivelyActive = state.Status == domain.StatusEnabled && !domain.IsOverrideMarker(state.SecondaryStatus)
	span.SetAttributes(
		attribute.String("status.actual", string(res.ActualStatus)),
		attribute.Bool("status.warning", res.Warning),
	)
	return res, nil
}

func (r *Reconciler) getter(t domain.ResourceType) (func(context.Context, string) (domain.ResourceState, error), error) {
	switch t {
	case domain.ResourceCampaign:
		return r.platform.GetCampaign, nil
	case domain.ResourceAdGroup:
		return r.platform.GetAdGroup, nil
	case domain.ResourceAd:
		return r.platform.GetAd, nil
	}
	return nil, domain.Validation("reconciler", "status of %q resources cannot be changed", t)
}

// notFound tags a missing target with the resource it refers to.
func notFound(err error, ref domain.ResourceRef) error {
	if !domain.IsKind(err, domain.KindNotFound) {
		return err
	}
	return &domain.Error{
		Kind:    domain.KindNotFound,
		Op:      "reconciler",
		Message: fmt.Sprintf("%s %s not found", ref.Type, ref.ID),
		Err:     err,
	}
}
