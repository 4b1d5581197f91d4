// mevclid — serves an interactive mevcli session over SSH.
// Usage: go run ./cmd/mevclid [--config FILE] [--listen ADDR]
package main

import (
	"flag"
	"log"
)

func main() {
	cfgPath := flag.String("config", "", "Path to YAML config file")
	listen := flag.String("listen", "", "Listen address (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if *listen != "" {
		cfg.Listen = *listen
	}

	if err := initLogger(cfg.LogDir); err != nil {
		log.Fatal(err)
	}
	if err := runServer(cfg); err != nil {
		log.Fatal(err)
	}
}
