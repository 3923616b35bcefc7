package classifier_test

import (
	"testing"

	"github.com/breedsense/breedsense/pkg/domain/model/config"
	"github.com/breedsense/breedsense/pkg/service/classifier"
	"github.com/m-mizutani/gt"
)

func TestGateAccept(t *testing.T) {
	gate := classifier.NewGate(config.DefaultClassifierConfig())

	cases := []struct {
		name        string
		filename    string
		contentType string
		want        bool
	}{
		{
			name:        "keyword filename with jpeg type",
			filename:    "jersey_cow.jpg",
			contentType: "image/jpeg",
			want:        true,
		},
		{
			name:        "breed name counts as keyword",
			filename:    "holstein1.png",
			contentType: "image/png",
			want:        true,
		},
		{
			name:        "content type is matched case-insensitively",
			filename:    "CATTLE.JPG",
			contentType: "IMAGE/JPEG",
			want:        true,
		},
		{
			name:        "missing content type",
			filename:    "cow.jpg",
			contentType: "",
			want:        false,
		},
		{
			name:        "unrecognized content type",
			filename:    "cow.jpg",
			contentType: "image/gif",
			want:        false,
		},
		{
			name:        "no filename rejects even with valid type",
			filename:    "",
			contentType: "image/png",
			want:        false,
		},
		{
			name:        "no cattle keyword",
			filename:    "sunset.jpg",
			contentType: "image/jpeg",
			want:        false,
		},
		{
			name:        "disallowed extension despite valid type",
			filename:    "cow.bmp",
			contentType: "image/png",
			want:        false,
		},
		{
			name:        "no extension at all",
			filename:    "cow",
			contentType: "image/png",
			want:        false,
		},
		{
			name:        "webp passes",
			filename:    "my-calf-photo.webp",
			contentType: "image/webp",
			want:        true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Value(t, gate.Accept(tc.filename, tc.contentType)).Equal(tc.want)
		})
	}

	t.Run("pure function", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			gt.Bool(t, gate.Accept("jersey_cow.jpg", "image/jpeg")).True()
			gt.Bool(t, gate.Accept("sunset.jpg", "image/jpeg")).False()
		}
	})
}
