package service

import (
	"time"

	"shipment-validator/internal/features/validation/domain"
)

// Aggregate evaluates every shipment against the same instant and builds the
// batch report. Results keep input order.
func Aggregate(shipments []domain.Shipment, now time.Time) *domain.Report {
	results := make([]domain.ShipmentResult, len(shipments))
	for i, s := range shipments {
		results[i] = Evaluate(s, now)
	}
	return buildReport(results)
}

// buildReport tallies evaluated results into a report.
func buildReport(results []domain.ShipmentResult) *domain.Report {
	report := &domain.Report{
		Shipments: results,
	}
	if report.Shipments == nil {
		report.Shipments = make([]domain.ShipmentResult, 0)
	}

	for _, r := range report.Shipments {
		if r.Status == domain.ShipmentValid {
			report.Summary.ValidShipments++
		} else {
			report.Summary.InvalidShipments++
		}
		for _, a := range r.Anomalies {
			report.AnomalySummary.Add(a.Type)
		}
	}

	report.Summary.TotalShipments = len(report.Shipments)
	report.Summary.AnomaliesDetected = report.AnomalySummary.Total()

	return report
}
