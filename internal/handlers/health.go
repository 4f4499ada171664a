package handlers

import "net/http"

// HealthCheck answers 200 "OK" whenever the process is up. It deliberately
// does not touch the database, so a dead store never fails the probe.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
