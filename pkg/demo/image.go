package demo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"

	"github.com/dskvich/ai-core-examples/pkg/domain"
	"github.com/dskvich/ai-core-examples/pkg/output"
)

const (
	ImageModel       = "gpt-4-vision-preview"
	ImageMaxTokens   = 512
	ImageInstruction = "Describe the image in detail."
	ImageURL         = "https://github.com/vercel/ai/blob/main/examples/ai-core/data/comic-cat.png?raw=true"
)

type TextGenerator interface {
	GenerateText(ctx context.Context, req domain.TextRequest) (domain.TextResult, error)
}

func DescribeImageRequest() (domain.TextRequest, error) {
	imageURL, err := url.Parse(ImageURL)
	if err != nil {
		return domain.TextRequest{}, fmt.Errorf("parsing image url: %w", err)
	}

	return domain.TextRequest{
		Model: ImageModel,
		Messages: []domain.Message{
			domain.UserMessage(
				domain.TextPart(ImageInstruction),
				domain.ImageURLPart(imageURL),
			),
		},
		Settings: domain.Settings{MaxTokens: ImageMaxTokens},
	}, nil
}

// DescribeImage asks the model to describe a remote image and writes the
// answer to w verbatim. Nothing is written when the request fails.
func DescribeImage(ctx context.Context, gen TextGenerator, w io.Writer) error {
	req, err := DescribeImageRequest()
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "Describing image", "model", req.Model, "maxTokens", req.MaxTokens, "url", ImageURL)

	res, err := gen.GenerateText(ctx, req)
	if err != nil {
		return fmt.Errorf("describing image: %w", err)
	}

	writer := output.TextWriter{}
	return writer.Write(w, res.Text)
}
