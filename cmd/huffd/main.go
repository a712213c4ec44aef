package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"

	"github.com/masonwr/huffman-encoding/internal/config"
	"github.com/masonwr/huffman-encoding/internal/handler"
	"github.com/masonwr/huffman-encoding/internal/logger"
	"github.com/masonwr/huffman-encoding/internal/router"
	"github.com/masonwr/huffman-encoding/internal/service"
)

const progName = "huffd"

var log = logging.MustGetLogger(progName)

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
	os.Exit(1)
}

func main() {
	// config and logging
	leveled := logger.Start(progName)
	cfg, err := config.Load()
	if err != nil {
		exitError(err)
	}
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		exitError(err)
	}
	leveled.SetLevel(level, "")
	if level != logging.DEBUG {
		gin.SetMode(gin.ReleaseMode)
	}

	// dependencies
	codecSvc := service.NewCodecService(cfg.TreeCache, cfg.MaxOutput, log)
	codecH := handler.NewCodecHandler(codecSvc)

	r := gin.Default()
	router.Register(r, router.Dependencies{
		CodecHandler: codecH,
		MaxBody:      cfg.MaxBody,
	})

	log.Infof("starting server at %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		exitError(err)
	}
}
