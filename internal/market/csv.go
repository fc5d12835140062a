package market

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV writes one row per board item.
func WriteCSV(w io.Writer, items []BoardItem) error {
	cw := csv.NewWriter(w)

	head := []string{"project", "bucket", "stage", "score_total", "confidence"}
	head = append(head, FactorNames()...)
	head = append(head, "TVL_3d", "VolMcap_1d", "actions")
	if err := cw.Write(head); err != nil {
		return err
	}
	for _, it := range items {
		row := []string{
			it.Project, string(it.Bucket), string(it.Stage),
			formatF(float64(it.ScoreTotal)), formatF(float64(it.Confidence)),
		}
		for _, f := range factors {
			row = append(row, strconv.Itoa(it.Agents[f.Name]))
		}
		row = append(row, formatF(float64(it.Metrics.TVL3d)), formatF(float64(it.Metrics.VolMcap1d)), it.Actions)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatF(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
