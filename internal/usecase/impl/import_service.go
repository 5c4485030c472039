package impl

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"lightmap/internal/domain/entity"
	"lightmap/internal/domain/service"
	"lightmap/internal/errors"
	"lightmap/internal/infra/metrics"
	"lightmap/internal/usecase"
)

// CSV columns. latitude and longitude are optional; rows without them are
// geocoded. Other columns, such as the observation date, are ignored.
const (
	columnAddress     = "address"
	columnCity        = "city"
	columnState       = "state"
	columnIlluminated = "illuminated"
	columnLatitude    = "latitude"
	columnLongitude   = "longitude"
)

// Import row results, used as the metrics "result" label.
const (
	rowCreated = "created"
	rowMerged  = "merged"
	rowSkipped = "skipped"
	rowFailed  = "failed"
)

var errRowHasNoLocation = errors.New("row has neither coordinates nor an address")

type importService struct {
	submissions usecase.SubmissionUsecase
	geocoder    service.Geocoder
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

// NewImportService creates the CSV import service. A nil geocoder skips rows without coordinates.
func NewImportService(
	submissions usecase.SubmissionUsecase,
	geocoder service.Geocoder,
	m *metrics.Metrics,
	logger *slog.Logger,
) usecase.ImportUsecase {
	return &importService{
		submissions: submissions,
		geocoder:    geocoder,
		metrics:     m,
		logger:      logger,
	}
}

type importRow struct {
	line        int
	address     string
	illuminated bool
	coordinate  *entity.Coordinate
}

// Import submits every row through the submission service so imported
// observations merge exactly like live ones.
func (s *importService) Import(ctx context.Context, r io.Reader) (*usecase.ImportReport, error) {
	start := time.Now()
	report := &usecase.ImportReport{}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV header")
	}

	columns, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	lineNum := 1
	for {
		if err := ctx.Err(); err != nil {
			report.Duration = time.Since(start)

			return report, err
		}

		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		lineNum++
		report.Total++

		if readErr != nil {
			s.count(report, rowSkipped)
			s.logger.Warn("Skipping malformed CSV line", slog.Int("line", lineNum), slog.Any("error", readErr))

			continue
		}

		row, parseErr := parseImportRow(record, columns, lineNum)
		if parseErr != nil {
			s.count(report, rowSkipped)
			s.logger.Warn("Skipping invalid CSV row", slog.Int("line", lineNum), slog.Any("error", parseErr))

			continue
		}

		s.count(report, s.importRow(ctx, row))
	}

	report.Duration = time.Since(start)
	s.logger.Info("CSV import finished",
		slog.Int("total", report.Total),
		slog.Int("created", report.Created),
		slog.Int("merged", report.Merged),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
		slog.Duration("duration", report.Duration),
	)

	return report, nil
}

// importRow resolves the row's coordinate and submits it, returning the row result.
func (s *importService) importRow(ctx context.Context, row *importRow) string {
	coordinate := row.coordinate
	if coordinate == nil {
		if s.geocoder == nil || row.address == "" {
			s.logger.Warn("Skipping row without location", slog.Int("line", row.line), slog.Any("error", errRowHasNoLocation))

			return rowSkipped
		}

		geocoded, err := s.geocoder.Geocode(ctx, row.address)
		if err != nil {
			s.logger.Warn("Skipping row that could not be geocoded",
				slog.Int("line", row.line),
				slog.String("address", row.address),
				slog.Any("error", err),
			)

			return rowSkipped
		}
		coordinate = &geocoded
	}

	marker, err := s.submissions.AddObservation(ctx, &usecase.SubmitObservationInput{
		Latitude:    coordinate.Latitude,
		Longitude:   coordinate.Longitude,
		Illuminated: row.illuminated,
	})
	if err != nil {
		s.logger.Error("Failed to import row", slog.Int("line", row.line), slog.Any("error", err))

		return rowFailed
	}

	// A fresh marker has no sub-markers; a merge always returns the parent with at least one.
	if len(marker.SubMarkerIDs) > 0 {
		return rowMerged
	}

	return rowCreated
}

func (s *importService) count(report *usecase.ImportReport, result string) {
	switch result {
	case rowCreated:
		report.Created++
	case rowMerged:
		report.Merged++
	case rowSkipped:
		report.Skipped++
	case rowFailed:
		report.Failed++
	}
	s.metrics.IncImportRows(result)
}

func indexColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	if _, ok := columns[columnIlluminated]; !ok {
		return nil, errors.Errorf("CSV header is missing the %q column", columnIlluminated)
	}

	_, hasLat := columns[columnLatitude]
	_, hasLng := columns[columnLongitude]
	_, hasAddress := columns[columnAddress]
	if !(hasLat && hasLng) && !hasAddress {
		return nil, errors.New("CSV header needs either latitude and longitude or address columns")
	}

	return columns, nil
}

func parseImportRow(record []string, columns map[string]int, lineNum int) (*importRow, error) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}

		return strings.TrimSpace(record[idx])
	}

	illuminated, err := parseIlluminated(field(columnIlluminated))
	if err != nil {
		return nil, errors.Wrapf(err, "line %d", lineNum)
	}

	row := &importRow{
		line:        lineNum,
		illuminated: illuminated,
		address:     joinAddress(field(columnAddress), field(columnCity), field(columnState)),
	}

	latRaw, lngRaw := field(columnLatitude), field(columnLongitude)
	if latRaw == "" && lngRaw == "" {
		return row, nil
	}

	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "line %d: invalid latitude %q", lineNum, latRaw)
	}
	lng, err := strconv.ParseFloat(lngRaw, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "line %d: invalid longitude %q", lineNum, lngRaw)
	}

	coordinate, err := entity.NewCoordinate(lat, lng)
	if err != nil {
		return nil, errors.Wrapf(err, "line %d", lineNum)
	}
	row.coordinate = &coordinate

	return row, nil
}

func parseIlluminated(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.Errorf("invalid illuminated value %q", raw)
	}

	return value, nil
}

func joinAddress(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}

	return strings.Join(nonEmpty, ", ")
}
