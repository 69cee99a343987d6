package main

import (
	"flag"
	"log"
	"net/http"
	"strconv"

	"github.com/kingreatwill/html_bench_demo/go_html/internal/page"
)

func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Length", "0")
		w.WriteHeader(http.StatusOK)
	})
	// "GET /{$}" matches the root path only, so /missing falls through
	// to the mux's default 404.
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", page.ContentType)
		w.Header().Set("Content-Length", strconv.Itoa(len(page.Body)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(page.Body)
	})
	return mux
}

func main() {
	addr := flag.String("addr", "127.0.0.1:28080", "listen address")
	flag.Parse()

	srv := &http.Server{
		Addr:    *addr,
		Handler: newMux(),
	}

	log.Printf("listening on %s", *addr)
	log.Fatal(srv.ListenAndServe())
}
