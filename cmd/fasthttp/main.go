package main

import (
	"flag"
	"log"

	"github.com/valyala/fasthttp"

	"github.com/kingreatwill/html_bench_demo/go_html/internal/page"
)

func requestHandler(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/health":
		ctx.SetStatusCode(fasthttp.StatusOK)
	case "/":
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.Response.Header.SetBytesKV([]byte("Content-Type"), []byte(page.ContentType))
		ctx.SetBody(page.Body)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
	}
}

func newServer() *fasthttp.Server {
	return &fasthttp.Server{
		Handler:                       requestHandler,
		Name:                          "fasthttp",
		NoDefaultServerHeader:         true,
		NoDefaultDate:                 true,
		NoDefaultContentType:          true,
		DisableHeaderNamesNormalizing: true,
	}
}

func main() {
	addr := flag.String("addr", "127.0.0.1:28081", "listen address")
	flag.Parse()

	srv := newServer()

	log.Printf("listening on %s", *addr)
	log.Fatal(srv.ListenAndServe(*addr))
}
