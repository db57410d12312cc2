package exemption

import "context"

type ExemptionService interface {
	CreateExemption(ctx context.Context, req CreateExemptionRequest) (ExemptionResponse, error)
	ApproveExemption(ctx context.Context, id string) (ExemptionResponse, error)
	RejectExemption(ctx context.Context, req RejectExemptionRequest) (ExemptionResponse, error)
	EndExemptionEarly(ctx context.Context, req EndEarlyRequest) (ExemptionResponse, error)
	ListMyExemptions(ctx context.Context) ([]ExemptionResponse, error)
}
