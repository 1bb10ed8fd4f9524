package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"icptargets/internal"
)

// WriteReport writes one "org,values" line per record. The values field joins
// entries with "\n" and is wrapped in double quotes only when it spans lines.
// Nothing else is escaped: downstream loaders read this exact shape.
func WriteReport(w io.Writer, records []internal.OrganizationRecord) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		field := strings.Join(rec.DomainsIPs, "\n")
		if strings.Contains(field, "\n") {
			field = `"` + field + `"`
		}
		if _, err := fmt.Fprintf(bw, "%s,%s\n", rec.Organization, field); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func ReportFileName(now time.Time) string {
	return fmt.Sprintf("targets-%s-%d.csv", now.Format("20060102"), now.Unix())
}

// ExportReport writes records to dir/targets-YYYYMMDD-<unix>.csv and returns the path.
func ExportReport(records []internal.OrganizationRecord, dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	outputPath := filepath.Join(dir, ReportFileName(now))
	f, err := os.Create(outputPath)
	if err != nil {
		return "", err
	}
	if err := WriteReport(f, records); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write %s: %w", outputPath, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return outputPath, nil
}
