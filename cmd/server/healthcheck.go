package cmd

import (
	"fmt"
	"log"
	"net/http"
)

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, err := fmt.Fprintf(w, "OK\nboard checks: %d\nempty boards: %d\n", a.counter.Checks(), a.counter.Empty())
	if err != nil {
		log.Println("error writing healthcheck response")
	}
}

func (a *App) AddHealthCheckEndpoint() {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", a.healthHandler)

	go func() {
		err := http.ListenAndServe(a.healthAddress, mux)
		if err != nil {
			log.Printf("Health check server failed: %v", err)
		}
	}()
}
