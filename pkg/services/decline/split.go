package decline

import "fmt"

// Split partitions s into exactly n contiguous groups whose sizes differ by
// at most one, earlier groups taking the extra element when the length does
// not divide evenly. The groups share s's backing array; concatenated in
// order they reproduce s.
func Split(s []float64, n int) ([][]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: group count must be positive, got %d", ErrInvalidArgument, n)
	}

	size, extra := len(s)/n, len(s)%n
	groups := make([][]float64, n)
	start := 0
	for i := range groups {
		end := start + size
		if i < extra {
			end++
		}
		groups[i] = s[start:end]
		start = end
	}
	return groups, nil
}
