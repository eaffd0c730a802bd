package driveloop_test

//go:generate mockgen -destination mocks_test.go -source operation_test.go -package driveloop_test

import "context"

// StringOperation is the string instance of driveloop.Operation, used to generate a gomock double.
type StringOperation interface {
	Do(ctx context.Context, v string) bool
}
