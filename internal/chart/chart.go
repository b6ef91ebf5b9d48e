// Package chart renders budget breakdowns as images.
package chart

import (
	"errors"
	"fmt"
	"io"

	"github.com/finiq/backend/internal/budget"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var ErrEmptyBreakdown = errors.New("the breakdown is empty, there is nothing to draw")

// Size is the width and height of rendered charts in pixels.
const Size = 512

// RenderPie writes the breakdown as a PNG donut chart to w. Every slice is
// filled with the color of its entry.
func RenderPie(w io.Writer, b budget.Breakdown) error {
	if b.IsEmpty() {
		return ErrEmptyBreakdown
	}

	values := make([]chart.Value, 0, len(b))
	for _, e := range b {
		amount, _ := e.Amount.Float64()
		values = append(values, chart.Value{
			Label: e.Category,
			Value: amount,
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex(e.Color),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
				FontColor:   drawing.ColorWhite,
				FontSize:    9,
			},
		})
	}

	donut := chart.DonutChart{
		Width:  Size,
		Height: Size,
		Values: values,
	}

	if err := donut.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("could not render breakdown chart: %w", err)
	}

	return nil
}
