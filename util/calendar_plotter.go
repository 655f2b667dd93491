package util

import (
	"fmt"
	"io"
	"time"

	"campus-client/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var weekdayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// RenderMonthHeatmap renders a month's availability as a weekday-by-week
// heat map page. Cell values are the booked percentage (0-100); days the
// room is closed are left blank.
func RenderMonthHeatmap(w io.Writer, spaceID, year, month int, data models.MonthAvailability) error {
	firstDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	weekCount := ((int(firstDay.Weekday()) + daysInMonth(year, month)) + 6) / 7

	weeks := make([]string, weekCount)
	for i := range weeks {
		weeks[i] = fmt.Sprintf("Week %d", i+1)
	}

	var cells []opts.HeatMapData
	for dateKey, agg := range data {
		day, err := time.Parse("2006-01-02", dateKey)
		if err != nil {
			continue
		}
		if agg.Status == models.DayStatusNoRoom || agg.Status == models.DayStatusLoading {
			continue
		}
		week := (int(firstDay.Weekday()) + day.Day() - 1) / 7
		cells = append(cells, opts.HeatMapData{
			Value: [3]interface{}{week, int(day.Weekday()), int(agg.Percentage * 100)},
		})
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Availability Calendar",
			Width:     "800px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Space %d - %04d-%02d booked %%", spaceID, year, month),
		}),
		// The labels ride in the axis option itself: a later SetXAxis call
		// does not survive a global XAxis override.
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			Data:      weeks,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			Data:      weekdayLabels,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        100,
			InRange: &opts.VisualMapInRange{
				Color: []string{"#50a3ba", "#eac736", "#d94e5d"},
			},
		}),
	)

	hm.AddSeries("booked", cells)

	return hm.Render(w)
}

func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
