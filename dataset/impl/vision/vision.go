package vision

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	gax "github.com/googleapis/gax-go/v2"
)

// Client is an interface for the vision.ImageAnnotatorClient
// Ref: https://pkg.go.dev/cloud.google.com/go/vision/apiv1
// This interface is used for mocking the vision.ImageAnnotatorClient in unit tests.
type Client interface {
	DetectDocumentText(ctx context.Context, image *visionpb.Image, imageContext *visionpb.ImageContext, opts ...gax.CallOption) (*visionpb.TextAnnotation, error)
}

// FirstLine runs document text detection on an encoded image and returns the first recognized line.
// An image without any detected text yields an empty string.
func FirstLine(ctx context.Context, client Client, content []byte, languageHints ...string) (string, error) {
	var imageContext *visionpb.ImageContext
	if len(languageHints) > 0 {
		imageContext = &visionpb.ImageContext{LanguageHints: languageHints}
	}

	annotation, err := client.DetectDocumentText(ctx, &visionpb.Image{Content: content}, imageContext)
	if err != nil {
		return "", fmt.Errorf("failed to detect text: %w", err)
	}

	line, _, _ := strings.Cut(strings.TrimSpace(annotation.GetText()), "\n")
	return strings.TrimSpace(line), nil
}
