package main

import (
	"flag"
	"log"
	"time"

	"MySketchPad/internal/beautify"
	localnet "MySketchPad/internal/net"
	"MySketchPad/internal/state"
	"MySketchPad/internal/ui"
)

func main() {
	service := flag.String("service", "", "beautify service endpoint URL (default: discover via mDNS)")
	timeout := flag.Duration("timeout", 2*time.Minute, "beautify request timeout")
	load := flag.String("load", "", "image file or URL to load onto the canvas at startup")
	flag.Parse()

	endpoint := *service
	if endpoint == "" {
		if ip, err := localnet.OutgoingIP(); err == nil {
			log.Printf("Looking for a beautify service on the local network (from %s)", ip)
		}
		found, err := localnet.DiscoverService(3 * time.Second)
		if err != nil {
			log.Printf("Service discovery: %v", err)
		} else {
			log.Printf("Discovered beautify service at %s", found)
			endpoint = found
		}
	}

	var client *beautify.Client
	if endpoint != "" {
		client = beautify.NewClient(endpoint, *timeout)
	}

	board := ui.NewSketchWidget()
	board.OnStroke = func(p state.Path) {
		log.Printf("Committed stroke %s (%d points)", p.ID, len(p.Points))
	}
	if *load != "" {
		src := *load
		go func() {
			time.Sleep(500 * time.Millisecond) // Give UI time to launch
			board.LoadRasterImage(src)
		}()
	}

	ui.RunApp(board, client)
}
