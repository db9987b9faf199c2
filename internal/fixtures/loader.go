// Oceanus - Vessel and Commodity Movement Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oceanus

package fixtures

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/tomtom215/oceanus/internal/aggregate"
	"github.com/tomtom215/oceanus/internal/catalog"
	"github.com/tomtom215/oceanus/internal/config"
	"github.com/tomtom215/oceanus/internal/logging"
	"github.com/tomtom215/oceanus/internal/metrics"
	"github.com/tomtom215/oceanus/internal/models"
	"github.com/tomtom215/oceanus/internal/validation"
)

// Collection names, used in logs and the fixture_* metric labels.
const (
	CollectionGraph         = "graph"
	CollectionTransport     = "transport_events"
	CollectionMovements     = "movements"
	CollectionHarbor        = "harbor_movements"
	CollectionDistributions = "distributions"
	CollectionPairs         = "pairs"
	CollectionUnions        = "unions"
	CollectionGeography     = "geography"
	CollectionCoordinates   = "coordinates"
)

// ErrGraphMissing is returned when the required graph fixture does not exist.
var ErrGraphMissing = errors.New("knowledge graph fixture not found")

// Dataset is the loaded reference data. It is never modified after Load
// returns.
type Dataset struct {
	Graph   models.Graph
	Catalog *catalog.Catalog

	// TransportEvents are vessel stays with start and end times.
	TransportEvents []models.TransportEvent
	// Movements are the daily vessel movements the views aggregate.
	Movements       []models.MovementRecord
	HarborMovements []models.MovementRecord
	Distributions   []models.DistributionRecord
	Pairs           []models.VesselCommodityPair
	Unions          []models.DateLocationUnion

	Geography   json.RawMessage
	Coordinates map[string][2]float64
}

type loader struct {
	cfg     config.DataConfig
	catalog *catalog.Catalog
}

// Load reads the fixtures under cfg.Dir.
func Load(ctx context.Context, cfg config.DataConfig) (*Dataset, error) {
	l := &loader{cfg: cfg}
	ds := &Dataset{}

	found, err := l.readJSON(cfg.GraphFile, &ds.Graph)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrGraphMissing, l.path(cfg.GraphFile))
	}
	ds.Catalog = catalog.New(ds.Graph.Nodes)
	l.catalog = ds.Catalog
	metrics.RecordFixtureLoad(CollectionGraph, len(ds.Graph.Nodes)+len(ds.Graph.Links), 0)
	logging.Info().
		Int("nodes", len(ds.Graph.Nodes)).
		Int("links", len(ds.Graph.Links)).
		Msg("Loaded knowledge graph")

	steps := []func(context.Context, *Dataset) error{
		l.loadTransport,
		l.loadHarbor,
		l.loadDistributions,
		l.loadPairs,
		l.loadUnions,
		l.loadGeography,
		l.loadCoordinates,
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("fixture load canceled: %w", err)
		}
		if err := step(ctx, ds); err != nil {
			return nil, err
		}
	}

	return ds, nil
}

func (l *loader) path(name string) string {
	return filepath.Join(l.cfg.Dir, name)
}

// readJSON decodes the named file into v. It reports found=false without
// error when the name is empty or the file does not exist.
func (l *loader) readJSON(name string, v interface{}) (bool, error) {
	if name == "" {
		return false, nil
	}
	path := l.path(name)
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator configuration
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return true, nil
}

// transportRow is one entry of the transport file, which holds either
// stays (start_time/end_time) or daily movements (date).
type transportRow struct {
	models.MovementRecord
	StartTime models.Timestamp `json:"start_time"`
	EndTime   models.Timestamp `json:"end_time"`
}

func (l *loader) loadTransport(_ context.Context, ds *Dataset) error {
	var rows []transportRow
	found, err := l.readJSON(l.cfg.TransportFile, &rows)
	if err != nil {
		return err
	}

	if found {
		var events []models.TransportEvent
		var movements []models.MovementRecord
		for _, row := range rows {
			if !row.StartTime.IsZero() || !row.EndTime.IsZero() {
				events = append(events, models.TransportEvent{
					VesselID:   row.VesselID,
					LocationID: row.LocationID,
					StartTime:  row.StartTime,
					EndTime:    row.EndTime,
				})
				continue
			}
			movements = append(movements, row.MovementRecord)
		}

		if ds.TransportEvents, err = keepValid(l, CollectionTransport, events); err != nil {
			return err
		}
		if ds.Movements, err = keepValid(l, CollectionMovements, movements); err != nil {
			return err
		}
	} else if l.cfg.DeriveMissingTables {
		ds.TransportEvents = TransportEventsFromGraph(&ds.Graph)
	}

	if len(ds.Movements) == 0 && len(ds.TransportEvents) > 0 {
		ds.Movements = aggregate.SplitTransportEvents(ds.TransportEvents)
	}
	for i := range ds.Movements {
		if ds.Movements[i].VesselType == "" {
			ds.Movements[i].VesselType = l.catalog.VesselType(ds.Movements[i].VesselID)
		}
	}

	recordLoaded(CollectionTransport, len(ds.TransportEvents), found)
	recordLoaded(CollectionMovements, len(ds.Movements), found)
	return nil
}

func (l *loader) loadHarbor(_ context.Context, ds *Dataset) error {
	var rows []models.MovementRecord
	found, err := l.readJSON(l.cfg.HarborFile, &rows)
	if err != nil {
		return err
	}
	switch {
	case found:
		ds.HarborMovements, err = keepValid(l, CollectionHarbor, rows)
	case l.cfg.DeriveMissingTables:
		ds.HarborMovements = HarborMovementsFromGraph(&ds.Graph, l.catalog)
	}
	recordLoaded(CollectionHarbor, len(ds.HarborMovements), found)
	return err
}

func (l *loader) loadDistributions(_ context.Context, ds *Dataset) error {
	var rows []models.DistributionRecord
	found, err := l.readJSON(l.cfg.DistributionsFile, &rows)
	if err != nil {
		return err
	}
	switch {
	case found:
		ds.Distributions, err = keepValid(l, CollectionDistributions, rows)
	case l.cfg.DeriveMissingTables:
		ds.Distributions = DistributionsFromGraph(&ds.Graph, l.catalog)
	}
	recordLoaded(CollectionDistributions, len(ds.Distributions), found)
	return err
}

func (l *loader) loadPairs(_ context.Context, ds *Dataset) error {
	var rows []models.VesselCommodityPair
	found, err := l.readJSON(l.cfg.PairsFile, &rows)
	if err != nil {
		return err
	}
	if found {
		ds.Pairs, err = keepValid(l, CollectionPairs, rows)
	}
	if ds.Pairs == nil {
		ds.Pairs = []models.VesselCommodityPair{}
	}
	recordLoaded(CollectionPairs, len(ds.Pairs), found)
	return err
}

func (l *loader) loadUnions(_ context.Context, ds *Dataset) error {
	found, err := l.readJSON(l.cfg.UnionsFile, &ds.Unions)
	if err != nil {
		return err
	}
	if !found && l.cfg.DeriveMissingTables {
		ds.Unions = aggregate.VesselCommodityUnion(ds.Distributions, ds.HarborMovements)
	}
	if ds.Unions == nil {
		ds.Unions = []models.DateLocationUnion{}
	}
	recordLoaded(CollectionUnions, len(ds.Unions), found)
	return nil
}

func (l *loader) loadGeography(_ context.Context, ds *Dataset) error {
	found, err := l.readJSON(l.cfg.GeographyFile, &ds.Geography)
	if err != nil {
		return err
	}
	if !found {
		ds.Geography = json.RawMessage(`{"type":"FeatureCollection","features":[]}`)
	}
	logging.Info().
		Str("collection", CollectionGeography).
		Bool("from_file", found).
		Int("bytes", len(ds.Geography)).
		Msg("Loaded fixture collection")
	return nil
}

func (l *loader) loadCoordinates(_ context.Context, ds *Dataset) error {
	found, err := l.readJSON(l.cfg.CoordinatesFile, &ds.Coordinates)
	if err != nil {
		return err
	}
	if ds.Coordinates == nil {
		ds.Coordinates = map[string][2]float64{}
	}
	recordLoaded(CollectionCoordinates, len(ds.Coordinates), found)
	return nil
}

// keepValid returns the records that pass validation. With
// SkipInvalidRecords unset the first invalid record is an error.
func keepValid[T any](l *loader, collection string, records []T) ([]T, error) {
	valid := make([]T, 0, len(records))
	rejected := 0
	for i := range records {
		if err := validation.ValidateRecord(&records[i]); err != nil {
			if !l.cfg.SkipInvalidRecords {
				return nil, fmt.Errorf("%s record %d: %w", collection, i, err)
			}
			rejected++
			logging.Warn().
				Str("collection", collection).
				Int("index", i).
				Err(err).
				Msg("Skipping invalid fixture record")
			continue
		}
		valid = append(valid, records[i])
	}
	metrics.RecordFixtureLoad(collection, len(valid), rejected)
	return valid, nil
}

func recordLoaded(collection string, n int, fromFile bool) {
	source := "derived"
	if fromFile {
		source = "file"
	}
	metrics.FixtureRecordsLoaded.WithLabelValues(collection).Set(float64(n))
	logging.Info().
		Str("collection", collection).
		Str("source", source).
		Int("records", n).
		Msg("Loaded fixture collection")
}
