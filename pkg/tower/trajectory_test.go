package tower

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

// 默认参数下的示例：槽位 7 → (11.0, 0.8)，起跳点 (12, 0)
func TestPlan_ReferenceScenario(t *testing.T) {
	tr, err := Plan(Point{X: 12, Y: 0}, Point{X: 11.0, Y: 0.8}, 0.4, 1.8, 9.8)
	require.NoError(t, err)

	assert.InDelta(t, -2.5, tr.Vx, tolerance)
	assert.InDelta(t, 8.46, tr.Vy, tolerance)

	end := tr.PositionAt(0.4)
	assert.InDelta(t, 11.0, end.X, tolerance)
	// 竖直方向包含额外高度，落点由着陆吸附修正为 0.8
	assert.InDelta(t, 2.6, end.Y, tolerance)
}

func TestPlan_StartAndEndpoints(t *testing.T) {
	tests := []struct {
		name   string
		start  Point
		target Point
		T      float64
		g      float64
	}{
		{"leftward flat", Point{X: 5, Y: 0}, Point{X: 1, Y: 0}, 0.4, 9.8},
		{"leftward up", Point{X: 12, Y: -1}, Point{X: 10.5, Y: 2.4}, 0.7, 9.8},
		{"leftward down", Point{X: 3, Y: 4}, Point{X: -2, Y: 0}, 1.2, 20},
		{"vertical only", Point{X: 2, Y: 0}, Point{X: 2, Y: 1.6}, 0.3, 9.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := Plan(tt.start, tt.target, tt.T, 0, tt.g)
			require.NoError(t, err)

			// t=0 精确等于起点
			assert.Equal(t, tt.start, tr.PositionAt(0))

			end := tr.PositionAt(tt.T)
			assert.InDelta(t, tt.target.X, end.X, 1e-4)
			assert.InDelta(t, tt.target.Y, end.Y, 1e-4)
		})
	}
}

func TestPlan_ExtraHeightRaisesEndpoint(t *testing.T) {
	start := Point{X: 4, Y: 0}
	target := Point{X: 2, Y: 0.8}

	tr, err := Plan(start, target, 0.5, 1.5, 9.8)
	require.NoError(t, err)

	end := tr.PositionAt(0.5)
	assert.InDelta(t, target.Y+1.5, end.Y, 1e-9)
}

func TestPlan_LeftwardOnly(t *testing.T) {
	for _, targetX := range []float64{-10, 0, 4.99, 5, 5.01, 20} {
		tr, err := Plan(Point{X: 5, Y: 0}, Point{X: targetX, Y: 1}, 0.4, 1.8, 9.8)
		require.NoError(t, err)
		assert.LessOrEqual(t, tr.Vx, 0.0, "targetX=%v", targetX)
	}

	// 目标在右侧时沿镜像方向向左跳
	tr, err := Plan(Point{X: 5, Y: 0}, Point{X: 7, Y: 0}, 0.5, 0, 9.8)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, tr.PositionAt(0.5).X, tolerance)
}

func TestPlan_InvalidParameters(t *testing.T) {
	tests := []struct {
		name    string
		T, h, g float64
		wantErr error
	}{
		{"zero duration", 0, 1, 9.8, ErrInvalidDuration},
		{"negative duration", -0.4, 1, 9.8, ErrInvalidDuration},
		{"zero gravity", 0.4, 1, 0, ErrInvalidGravity},
		{"negative gravity", 0.4, 1, -9.8, ErrInvalidGravity},
		{"negative extra height", 0.4, -1, 9.8, ErrInvalidExtraHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Plan(Point{X: 1}, Point{}, tt.T, tt.h, tt.g)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestTrajectory_PositionAtClamps(t *testing.T) {
	tr, err := Plan(Point{X: 3, Y: 0}, Point{X: 1, Y: 0}, 0.4, 0, 9.8)
	require.NoError(t, err)

	assert.Equal(t, tr.PositionAt(0), tr.PositionAt(-1))
	assert.Equal(t, tr.PositionAt(0.4), tr.PositionAt(10))
}
