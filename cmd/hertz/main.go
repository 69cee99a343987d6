package main

import (
	"context"
	"flag"
	"log"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/config"

	"github.com/kingreatwill/html_bench_demo/go_html/internal/page"
)

func newServer(opts ...config.Option) *server.Hertz {
	h := server.New(opts...)

	h.GET("/health", func(_ context.Context, ctx *app.RequestContext) {
		ctx.Status(200)
	})

	h.GET("/", func(_ context.Context, ctx *app.RequestContext) {
		ctx.Data(200, page.ContentType, page.Body)
	})

	return h
}

func main() {
	addr := flag.String("addr", "127.0.0.1:28082", "listen address")
	flag.Parse()

	h := newServer(server.WithHostPorts(*addr))

	log.Printf("listening on %s", *addr)
	h.Spin()
}
