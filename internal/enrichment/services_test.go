package enrichment

import (
	"testing"

	"dental-site/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestHighlightServices(t *testing.T) {
	defaults := []models.Service{{Title: "D1"}, {Title: "D2"}, {Title: "D3"}, {Title: "D4"}}

	tests := []struct {
		name    string
		catalog []models.Service
		want    []string
	}{
		{
			name:    "two custom padded from defaults",
			catalog: []models.Service{{Title: "C1"}, {Title: "C2"}},
			want:    []string{"C1", "C2", "D1", "D2"},
		},
		{
			name:    "long catalog truncated",
			catalog: []models.Service{{Title: "A"}, {Title: "B"}, {Title: "C"}, {Title: "D"}, {Title: "E"}},
			want:    []string{"A", "B", "C", "D"},
		},
		{
			name:    "padding skips duplicate titles",
			catalog: []models.Service{{Title: "D1"}},
			want:    []string{"D1", "D2", "D3", "D4"},
		},
		{
			name:    "empty catalog",
			catalog: nil,
			want:    []string{"D1", "D2", "D3", "D4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HighlightServices(tt.catalog, defaults, HighlightCount)
			titles := make([]string, 0, len(got))
			for _, s := range got {
				titles = append(titles, s.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestHighlightServices_DefaultsExhausted(t *testing.T) {
	got := HighlightServices([]models.Service{{Title: "X"}}, []models.Service{{Title: "Y"}}, 4)
	assert.Len(t, got, 2)
	assert.Empty(t, HighlightServices(nil, nil, 0))
}

func TestDefaultServices(t *testing.T) {
	catalog := DefaultServices()
	assert.GreaterOrEqual(t, len(catalog), HighlightCount)
	for _, s := range catalog {
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Icon)
	}
}
