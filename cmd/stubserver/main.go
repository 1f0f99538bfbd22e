package main

import (
	"flag"
	"log"
	"net/http"

	"go.uber.org/zap"

	"servicemonitor/internal/stubserver"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:8080", "listen address")
	key := flag.String("key", "", "API key for the /secure routes (empty disables the check)")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	srv := stubserver.NewServer(logger, *key)

	logger.Info("stub_listen", zap.String("addr", *addr))
	if err := http.ListenAndServe(*addr, srv.Router()); err != nil {
		log.Fatal(err)
	}
}
