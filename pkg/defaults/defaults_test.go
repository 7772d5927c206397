package defaults

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		{"ConfigMapWriteTimeout", ConfigMapWriteTimeout, 5 * time.Second, 60 * time.Second},
		{"ConfigMapReadTimeout", ConfigMapReadTimeout, 5 * time.Second, 60 * time.Second},
		{"OCIPushTimeout", OCIPushTimeout, 30 * time.Second, 10 * time.Minute},
		{"HTTPClientTimeout", HTTPClientTimeout, 10 * time.Second, 60 * time.Second},
		{"ProgressLogInterval", ProgressLogInterval, 100 * time.Millisecond, 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) exceeds maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestGenerationBounds(t *testing.T) {
	if MinSampledIngredients > MaxSampledIngredients {
		t.Fatalf("ingredient draw bounds inverted: %d > %d", MinSampledIngredients, MaxSampledIngredients)
	}
	if OilProbability <= 0 || OilProbability >= 1 {
		t.Errorf("OilProbability = %v, want (0,1)", OilProbability)
	}
	if len(Servings) != 3 {
		t.Errorf("Servings = %v, want three sizes", Servings)
	}
}
