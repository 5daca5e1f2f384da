package handlers

// HandlerBundle groups the per-domain handlers so route registration takes a
// single argument.
type HandlerBundle struct {
	Catalog   *CatalogHandler
	Bookings  *BookingHandler
	Occupancy *OccupancyHandler
	Alerts    *AlertHandler
	Stats     *StatsHandler
	Users     *UserHandler
	Telemetry *TelemetryHandler
}
