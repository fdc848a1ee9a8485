package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"studyhub/config"
)

func TestStudyImageURLBuilder(t *testing.T) {
	builder := NewStudyImageURLBuilder(&config.Config{
		Assets: &config.AssetsConfig{
			StudyImageBaseURL: "https://img.studyhub.example/studies/",
		},
	})

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{
			name: "relative reference",
			ref:  "2024/03/go-study.png",
			want: "https://img.studyhub.example/studies/2024/03/go-study.png",
		},
		{
			name: "leading slash reference",
			ref:  "/2024/03/go-study.png",
			want: "https://img.studyhub.example/studies/2024/03/go-study.png",
		},
		{
			name: "already absolute",
			ref:  "https://cdn.example.com/pic.jpg",
			want: "https://cdn.example.com/pic.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, builder.StudyImageURL(tt.ref))
		})
	}
}
