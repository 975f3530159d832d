package suggestion

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// SuggestTasks generates a short list of actionable tasks for an event.
	SuggestTasks(ctx context.Context, input SuggestTasksInput) (SuggestTasksOutput, error)
	// ResolveVendors suggests vendors for a single task of an event.
	ResolveVendors(ctx context.Context, input ResolveVendorsInput) (VendorResolution, error)
}
