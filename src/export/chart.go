//Package export turns finished runs into artifacts: a PNG chart of the
//change history and an MJPEG video of the grid evolution.
package export

import (
	"fmt"
	"math"
	"os"

	"github.com/wcharczuk/go-chart/v2"
)

//WriteChart renders the change scalar series as a PNG line chart.
//With logScale the plotted values are compressed with log(1+v) to tame the
//dynamic range, the series itself stays raw.
func WriteChart(path string, history []int, logScale bool) error {
	if len(history) < 2 {
		return fmt.Errorf("chart needs at least two history entries, got %v", len(history))
	}

	xs := make([]float64, len(history))
	ys := make([]float64, len(history))
	for i, h := range history {
		xs[i] = float64(i + 1)
		if logScale {
			ys[i] = math.Log1p(float64(h))
		} else {
			ys[i] = float64(h)
		}
	}

	yName := "Total 1s in second-order diff"
	if logScale {
		yName = "log(1 + total 1s in second-order diff)"
	}

	graph := chart.Chart{
		Title: "Second-order change over time",
		XAxis: chart.XAxis{
			Name: "Step",
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name: yName,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "second-order change",
				XValues: xs,
				YValues: ys,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2.0},
			},
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
