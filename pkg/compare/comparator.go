package compare

import (
	"fmt"

	"github.com/41008896/treediff/pkg/models"
)

// Comparator measures how much two line sequences differ
type Comparator interface {
	// Compare returns the difference metric of a against b. It returns 0
	// if and only if the sequences are element-wise identical.
	Compare(a, b []string) int

	// Name returns the name of the metric
	Name() string
}

// New returns the comparator for a metric
func New(metric models.Metric) (Comparator, error) {
	switch metric {
	case models.MetricUnified, "":
		return NewUnifiedComparator(), nil
	case models.MetricChanged:
		return NewChangedComparator(), nil
	default:
		return nil, fmt.Errorf("unsupported metric: %s (use: unified, changed)", metric)
	}
}
