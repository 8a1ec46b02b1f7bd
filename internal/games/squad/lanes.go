package squad

import (
	"math"

	"github.com/vovakirdan/squad-arcade/internal/config"
)

// BridgeWidth returns the play-field width for a wave.
// It grows linearly with the wave and is capped at the configured maximum.
func BridgeWidth(wave int, cfg config.SquadLanes) float64 {
	if wave < 1 {
		wave = 1
	}
	return math.Min(cfg.BaseWidth+float64(wave-1)*cfg.GrowthPerWave, cfg.MaxWidth)
}

// BridgeBounds returns the left edge and width of the bridge, centered in the world.
func BridgeBounds(wave int, cfg config.SquadLanes) (left, width float64) {
	width = BridgeWidth(wave, cfg)
	return (WorldWidth - width) / 2, width
}

// Lanes returns the centers of count equal-width lanes across [left, left+width).
func Lanes(count int, left, width float64) []float64 {
	if count <= 0 {
		return nil
	}
	laneW := width / float64(count)
	centers := make([]float64, count)
	for i := range centers {
		centers[i] = left + laneW*float64(i) + laneW/2
	}
	return centers
}

// NearestLane returns the index of the lane center closest to x.
// Ties go to the lowest index. Returns -1 when there are no lanes.
func NearestLane(x float64, lanes []float64) int {
	if len(lanes) == 0 {
		return -1
	}
	best := 0
	bestDist := math.Abs(x - lanes[0])
	for i := 1; i < len(lanes); i++ {
		if d := math.Abs(x - lanes[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// SnapToLane returns the lane center nearest to x, or x itself with no lanes.
func SnapToLane(x float64, lanes []float64) float64 {
	i := NearestLane(x, lanes)
	if i < 0 {
		return x
	}
	return lanes[i]
}
