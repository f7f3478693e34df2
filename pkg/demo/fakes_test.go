package demo

import (
	"context"

	"github.com/dskvich/ai-core-examples/pkg/domain"
)

type fakeObjectGenerator struct {
	result domain.ObjectResult
	err    error
	calls  []domain.ObjectRequest
}

func (f *fakeObjectGenerator) GenerateObject(_ context.Context, req domain.ObjectRequest) (domain.ObjectResult, error) {
	f.calls = append(f.calls, req)
	return f.result, f.err
}

type fakeTextGenerator struct {
	result domain.TextResult
	err    error
	calls  []domain.TextRequest
}

func (f *fakeTextGenerator) GenerateText(_ context.Context, req domain.TextRequest) (domain.TextResult, error) {
	f.calls = append(f.calls, req)
	return f.result, f.err
}
