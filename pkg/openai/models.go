package openai

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/dskvich/ai-core-examples/pkg/domain"
)

func mapFinishReason(r goopenai.FinishReason) domain.FinishReason {
	switch r {
	case goopenai.FinishReasonStop:
		return domain.FinishReasonStop
	case goopenai.FinishReasonLength:
		return domain.FinishReasonLength
	case goopenai.FinishReasonContentFilter:
		return domain.FinishReasonContentFilter
	case goopenai.FinishReasonToolCalls, goopenai.FinishReasonFunctionCall:
		return domain.FinishReasonToolCalls
	default:
		return domain.FinishReasonOther
	}
}

func mapUsage(u goopenai.Usage) domain.Usage {
	return domain.Usage{
		PromptTokens:     u.PromptTokens,
		CompletionTokens: u.CompletionTokens,
		TotalTokens:      u.TotalTokens,
	}
}

// classifyError tags an SDK error with its category without altering it.
func classifyError(op string, err error) error {
	var (
		apiErr *goopenai.APIError
		reqErr *goopenai.RequestError
		urlErr *url.Error
		netErr net.Error
	)

	kind := domain.ErrorKindProvider
	switch {
	case errors.As(err, &apiErr):
		if isAuthStatus(apiErr.HTTPStatusCode) {
			kind = domain.ErrorKindAuth
		}
	case errors.As(err, &reqErr):
		if isAuthStatus(reqErr.HTTPStatusCode) {
			kind = domain.ErrorKindAuth
		}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		kind = domain.ErrorKindTransport
	case errors.As(err, &urlErr), errors.As(err, &netErr):
		kind = domain.ErrorKindTransport
	}

	return &domain.GenerationError{Kind: kind, Op: op, Err: err}
}

func isAuthStatus(code int) bool {
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}
