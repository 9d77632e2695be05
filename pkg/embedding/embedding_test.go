package embedding

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestCosineSimilarityIdentical(t *testing.T) {
	a := []float32{1, 2, 3}
	got := CosineSimilarity(a, a)
	if math.Abs(got-1.0) > 0.0001 {
		t.Errorf("Expected 1.0, got %f", got)
	}
}

func TestCosineSimilarityOrthogonal(t *testing.T) {
	got := CosineSimilarity([]float32{1, 0}, []float32{0, 1})
	if math.Abs(got) > 0.0001 {
		t.Errorf("Expected 0.0, got %f", got)
	}
}

func TestCosineSimilarityMismatch(t *testing.T) {
	if got := CosineSimilarity([]float32{1, 2}, []float32{1, 2, 3}); got != 0.0 {
		t.Errorf("Dimension mismatch should score 0.0, got %f", got)
	}
	if got := CosineSimilarity(nil, nil); got != 0.0 {
		t.Errorf("Empty vectors should score 0.0, got %f", got)
	}
	if got := CosineSimilarity([]float32{0, 0}, []float32{1, 1}); got != 0.0 {
		t.Errorf("Zero magnitude should score 0.0, got %f", got)
	}
}

func TestNormalize(t *testing.T) {
	v := []float32{3, 4}
	Normalize(v)

	length := math.Sqrt(float64(v[0]*v[0] + v[1]*v[1]))
	if math.Abs(length-1.0) > 0.0001 {
		t.Errorf("Expected unit length, got %f", length)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	v := []float32{0, 0, 0}
	Normalize(v)
	for i, x := range v {
		if x != 0 {
			t.Errorf("Zero vector should stay zero at %d, got %f", i, x)
		}
	}
}

func TestProviderFunc(t *testing.T) {
	p := ProviderFunc(func(ctx context.Context, text string) ([]float32, error) {
		if text == "" {
			return nil, errors.New("empty text")
		}
		return []float32{float32(len(text))}, nil
	})

	vec, err := p.Embed(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(vec) != 1 || vec[0] != 5 {
		t.Errorf("Expected [5], got %v", vec)
	}

	if _, err := p.Embed(context.Background(), ""); err == nil {
		t.Error("Expected error for empty text")
	}
}
