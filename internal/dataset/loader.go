package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"net/url"
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"clinical-risk-go/internal/catalog"
	"clinical-risk-go/internal/logger"
	"clinical-risk-go/internal/types"
)

type Options struct {
	FetchTimeout    time.Duration
	FetchMaxElapsed time.Duration
	RetryInterval   time.Duration
	Logger          *logger.Logger
}

func (o Options) withDefaults() Options {
	if o.FetchTimeout <= 0 {
		o.FetchTimeout = 15 * time.Second
	}
	if o.FetchMaxElapsed <= 0 {
		o.FetchMaxElapsed = 30 * time.Second
	}
	if o.RetryInterval <= 0 {
		o.RetryInterval = 500 * time.Millisecond
	}
	if o.Logger == nil {
		o.Logger = logger.New()
	}
	return o
}

// Load reads the patient table from a local .csv/.xlsx file or an http(s) URL.
// Any failure is returned to the caller, which decides whether to run degraded.
func Load(ctx context.Context, src string, opts Options) ([]types.PatientRecord, Stats, error) {
	opts = opts.withDefaults()
	log := opts.Logger.Component("dataset.loader").WithField("source", src)

	var (
		raw []byte
		err error
	)
	name := src
	if isRemote(src) {
		log.Info("fetching remote dataset")
		raw, err = Fetch(ctx, src, opts)
		if u, perr := url.Parse(src); perr == nil {
			name = u.Path
		}
	} else {
		raw, err = os.ReadFile(src)
	}
	if err != nil {
		log.WithError(err).Warn("dataset read failed")
		return nil, Stats{Source: src}, fmt.Errorf("read dataset: %w", err)
	}

	format := formatOf(name)
	rows, err := readRows(bytes.NewReader(raw), format)
	if err != nil {
		log.WithError(err).Warn("dataset decode failed")
		return nil, Stats{Source: src, Format: format}, err
	}
	records, stats, err := parseRows(rows)
	stats.Source = src
	stats.Format = format
	if err != nil {
		log.WithError(err).Warn("dataset rejected")
		return nil, stats, err
	}
	stats.log(log)
	return records, stats, nil
}

func isRemote(src string) bool {
	l := strings.ToLower(src)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

func formatOf(name string) string {
	if strings.EqualFold(path.Ext(name), ".xlsx") {
		return "xlsx"
	}
	return "csv"
}

func readRows(r io.Reader, format string) ([][]string, error) {
	if format == "xlsx" {
		return readXLSX(r)
	}
	return readCSV(r)
}

func readCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return rows, nil
}

type column int

const (
	colDisease column = iota
	colAgeBin
	colGender
	colBloodType
	colTestResult
	colMedication
	colBilling
	numColumns
)

var columnNames = [numColumns]string{
	colDisease:    "Disease",
	colAgeBin:     "Age_Bin",
	colGender:     "Gender",
	colBloodType:  "Blood Type",
	colTestResult: "Test Result",
	colMedication: "Medication",
	colBilling:    "Billing Amount",
}

const requiredColumns = colTestResult + 1

// normalizeHeader ignores case, spaces and underscores so "Blood Type",
// "blood_type" and "BloodType" all resolve to the same column.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "")
	return strings.ReplaceAll(h, "_", "")
}

func detectColumns(header []string) ([numColumns]int, error) {
	var idx [numColumns]int
	for i := range idx {
		idx[i] = -1
	}
	for i, h := range header {
		n := normalizeHeader(h)
		for c, name := range columnNames {
			if idx[c] == -1 && n == normalizeHeader(name) {
				idx[c] = i
			}
		}
	}
	for c := column(0); c < requiredColumns; c++ {
		if idx[c] == -1 {
			return idx, fmt.Errorf("missing required column %q", columnNames[c])
		}
	}
	return idx, nil
}

func parseRows(rows [][]string) ([]types.PatientRecord, Stats, error) {
	if len(rows) <= 1 {
		return nil, Stats{}, fmt.Errorf("no data rows")
	}
	idx, err := detectColumns(rows[0])
	if err != nil {
		return nil, Stats{}, err
	}
	stats := Stats{Columns: idx}

	out := make([]types.PatientRecord, 0, len(rows)-1)
	for _, r := range rows[1:] {
		if isBlank(r) {
			continue
		}
		rec, ok := parseRecord(r, idx)
		if !ok {
			stats.Skipped++
			continue
		}
		out = append(out, rec)
	}
	stats.Rows = len(out)
	if len(out) == 0 {
		return nil, stats, fmt.Errorf("no valid data rows (%d skipped)", stats.Skipped)
	}
	return out, stats, nil
}

func parseRecord(r []string, idx [numColumns]int) (types.PatientRecord, bool) {
	var codes [requiredColumns]int
	for c := column(0); c < requiredColumns; c++ {
		v, ok := intCell(r, idx[c])
		if !ok {
			return types.PatientRecord{}, false
		}
		codes[c] = v
	}
	rec := types.PatientRecord{
		Disease:    catalog.Condition(codes[colDisease]),
		AgeBin:     catalog.AgeBucket(codes[colAgeBin]),
		Gender:     catalog.Gender(codes[colGender]),
		BloodType:  catalog.BloodType(codes[colBloodType]),
		TestResult: catalog.TestResult(codes[colTestResult]),
	}
	// optional columns: blank or garbage counts as zero
	if v, ok := intCell(r, idx[colMedication]); ok {
		rec.Medication = catalog.Medication(v)
	}
	if v, ok := floatCell(r, idx[colBilling]); ok {
		rec.BillingAmount = v
	}
	return rec, true
}

func floatCell(r []string, i int) (float64, bool) {
	if i < 0 || i >= len(r) {
		return 0, false
	}
	s := strings.TrimSpace(r[i])
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// intCell accepts "3" as well as the "3.0" that spreadsheet exports produce.
// Fractional codes such as "1.7" are rejected.
func intCell(r []string, i int) (int, bool) {
	f, ok := floatCell(r, i)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func isBlank(r []string) bool {
	for _, c := range r {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
