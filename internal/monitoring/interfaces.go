// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package monitoring

type MonitorInterface interface {
	GetService() string
	SetResponseTimeMetric(map[string]string, float64) error
	SetDependencyAvailability(map[string]string, float64) error
	// AddDeletedRows accumulates the rows removed by a tenant deletion, labelled by table
	AddDeletedRows(map[string]string, float64) error
}
