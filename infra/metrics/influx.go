package metrics

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/SimranYelave/Car-Rental-System/core/metrics"
	"github.com/SimranYelave/Car-Rental-System/infra/logger"
)

// InfluxSink writes rental transactions to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and falls back to a
// NopSink when the health check fails, so a missing database never blocks
// rentals.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.MetricsSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordRental writes the rent transaction as a point.
func (s *InfluxSink) RecordRental(r coremetrics.RentalRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("rental_event").
		AddTag("vehicle_id", r.VehicleID).
		AddTag("class", r.Class).
		AddTag("tier", r.Tier).
		AddTag("insurance", strconv.FormatBool(r.Insurance)).
		AddField("days", r.Days).
		AddField("total_cost", r.TotalCost).
		SetTime(r.StartedAt)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordReturn writes the return transaction as a point.
func (s *InfluxSink) RecordReturn(r coremetrics.ReturnRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("return_event").
		AddTag("vehicle_id", r.VehicleID).
		AddTag("class", r.Class).
		AddField("late_days", r.LateDays).
		AddField("late_fee", r.LateFee).
		SetTime(r.ReturnedAt)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() {
	s.client.Close()
}
