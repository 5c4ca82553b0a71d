// Package report renders a forecast series for the terminal: the four
// headline metrics and the detailed hourly table, with the original tool's
// German labels and display rounding.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/solartools/pv-forecast/internal/domain"
)

// WriteSummary prints the headline metrics block. Rounding follows the
// original display: power to one decimal, energy and cloud cover to whole
// numbers, with the sunny-share complement next to the cloud average.
func WriteSummary(w io.Writer, days int, s domain.Summary) error {
	_, err := fmt.Fprintf(w,
		"Statistik (%d Tage)\n"+
			"  Max. Leistung:  %.1f kW\n"+
			"  Ø Leistung:     %.1f kW\n"+
			"  Gesamtertrag:   %.0f kWh\n"+
			"  Ø Wolkendecke:  %.0f%% (%.0f%% sonnig)\n",
		days, s.MaxPowerKW, s.MeanPowerKW, s.TotalEnergyKWh,
		s.MeanCloudCover, 100-s.MeanCloudCover)
	return err
}

// WriteTable prints one row per forecast point with localized headers.
// Power is rounded to two decimals, cloud cover to a whole percentage,
// temperature to one decimal. Irradiance proxies are shown to one decimal;
// the raw values live in the CSV export.
func WriteTable(w io.Writer, series domain.ForecastSeries) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "Zeit\tLeistung (kW)\tWolken (%)\tTemp (°C)\tDNI\tDHI")
	for _, p := range series.Points {
		fmt.Fprintf(tw, "%s\t%.2f\t%d\t%.1f\t%.1f\t%.1f\n",
			p.Time.Format("2006-01-02 15:04"),
			p.PowerKW,
			p.CloudCoverPercent,
			p.TemperatureC,
			p.DNI,
			p.DHI,
		)
	}

	return tw.Flush()
}
