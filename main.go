package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/equinor/workload-analyzer/api"
	analysisApi "github.com/equinor/workload-analyzer/api/analysis"
	analysisControllers "github.com/equinor/workload-analyzer/api/controllers/analysis"
	instanceControllers "github.com/equinor/workload-analyzer/api/controllers/instances"
	jobControllers "github.com/equinor/workload-analyzer/api/controllers/jobs"
	platformControllers "github.com/equinor/workload-analyzer/api/controllers/platforms"
	instanceApi "github.com/equinor/workload-analyzer/api/instances"
	jobApi "github.com/equinor/workload-analyzer/api/jobs"
	platformApi "github.com/equinor/workload-analyzer/api/platforms"
	"github.com/equinor/workload-analyzer/models"
	"github.com/equinor/workload-analyzer/pkg/fileservice"
	"github.com/equinor/workload-analyzer/pkg/jobservice"
	"github.com/equinor/workload-analyzer/pkg/llm"
	"github.com/equinor/workload-analyzer/router"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	_ = godotenv.Load()

	config, err := models.NewConfigFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
		return
	}
	initLogger(config)

	runAPIServer(config)
}

func runAPIServer(config *models.Config) {
	fs := initializeFlagSet()
	var (
		port = fs.StringP("port", "p", config.Port, "Port where API will be served")
	)
	parseFlagsFromArgs(fs)

	errsChan := make(chan error)
	go func() {
		log.Info().Msgf("Workload analyzer API is serving on port %s", *port)
		err := http.ListenAndServe(fmt.Sprintf(":%s", *port), router.NewServer(config, getControllers(config)...))
		errsChan <- err
	}()

	sigTerm := make(chan os.Signal, 1)
	signal.Notify(sigTerm, syscall.SIGTERM)
	signal.Notify(sigTerm, syscall.SIGINT)

	select {
	case <-sigTerm:
	case err := <-errsChan:
		if err != nil {
			log.Fatal().Err(err).Msg("Workload analyzer API server crashed")
		}
	}
}

func getControllers(config *models.Config) []api.Controller {
	jobServiceClient := jobservice.New(config)
	fileServiceClient := fileservice.New(config)
	llmClient := llm.New(config)

	return []api.Controller{
		jobControllers.New(jobApi.New(jobServiceClient, fileServiceClient)),
		instanceControllers.New(instanceApi.New(jobServiceClient)),
		platformControllers.New(platformApi.New(jobServiceClient)),
		analysisControllers.New(analysisApi.New(llmClient)),
	}
}

func initLogger(config *models.Config) {
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

func initializeFlagSet() *pflag.FlagSet {
	// Flag domain.
	fs := pflag.NewFlagSet("default", pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, "DESCRIPTION\n")
		fmt.Fprint(os.Stderr, "Workload analyzer API server.\n")
		fmt.Fprint(os.Stderr, "\n")
		fmt.Fprint(os.Stderr, "FLAGS\n")
		fs.PrintDefaults()
	}
	return fs
}

func parseFlagsFromArgs(fs *pflag.FlagSet) {
	err := fs.Parse(os.Args[1:])
	switch {
	case err == pflag.ErrHelp:
		os.Exit(0)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %s\n\n", err.Error())
		fs.Usage()
		os.Exit(2)
	}
}
