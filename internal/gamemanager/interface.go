package gamemanager

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	ExecuteVoIP(ctx context.Context, task VoIPTask) (ExecuteOutput, error)
	ExecuteVR(ctx context.Context, task VRTask) (ExecuteOutput, error)
	ExecuteIoT(ctx context.Context, task IoTTask) (ExecuteOutput, error)
	ExecuteGeospatial(ctx context.Context, task GeospatialTask) (ExecuteOutput, error)

	ListExecutions(ctx context.Context, input ListExecutionsInput) (ListExecutionsOutput, error)
}
