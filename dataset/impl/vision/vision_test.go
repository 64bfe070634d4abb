package vision

import (
	"context"
	"errors"
	"slices"
	"testing"

	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	gax "github.com/googleapis/gax-go/v2"
)

type fakeClient struct {
	annotation *visionpb.TextAnnotation
	err        error
	hints      []string
}

func (f *fakeClient) DetectDocumentText(ctx context.Context, image *visionpb.Image, imageContext *visionpb.ImageContext, opts ...gax.CallOption) (*visionpb.TextAnnotation, error) {
	f.hints = imageContext.GetLanguageHints()
	return f.annotation, f.err
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		name       string
		annotation *visionpb.TextAnnotation
		want       string
	}{
		{"multi line", &visionpb.TextAnnotation{Text: "quick brown fox\njumps over\n"}, "quick brown fox"},
		{"leading blank lines", &visionpb.TextAnnotation{Text: "\n\n  lazy dog  \nend"}, "lazy dog"},
		{"single line", &visionpb.TextAnnotation{Text: "hello"}, "hello"},
		{"no text", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FirstLine(context.Background(), &fakeClient{annotation: tt.annotation}, []byte("png"))
			if err != nil {
				t.Fatalf("FirstLine() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FirstLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFirstLineLanguageHints(t *testing.T) {
	client := &fakeClient{annotation: &visionpb.TextAnnotation{Text: "x"}}
	if _, err := FirstLine(context.Background(), client, []byte("png"), "en"); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(client.hints, []string{"en"}) {
		t.Errorf("language hints = %v, want [en]", client.hints)
	}
}

func TestFirstLineError(t *testing.T) {
	cause := errors.New("quota exceeded")
	_, err := FirstLine(context.Background(), &fakeClient{err: cause}, []byte("png"))
	if !errors.Is(err, cause) {
		t.Errorf("FirstLine() error = %v, want wrapping %v", err, cause)
	}
}
