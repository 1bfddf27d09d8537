package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/devpopsdotin/logdeck/internal/config"
	"github.com/devpopsdotin/logdeck/internal/dig"
	"github.com/devpopsdotin/logdeck/internal/flow"
	"github.com/devpopsdotin/logdeck/internal/k8s"
	"github.com/devpopsdotin/logdeck/internal/logger"
	"github.com/devpopsdotin/logdeck/internal/queue"
	"github.com/devpopsdotin/logdeck/internal/stream"
	"github.com/devpopsdotin/logdeck/internal/target"
	"github.com/devpopsdotin/logdeck/internal/ui"
)

var (
	flagContext         string
	flagNamespace       string
	flagPodQuery        string
	flagContainerStates []string
	flagLogTimeout      int
	flagRenderInterval  int
	flagQueueCapacity   int
	flagTailLines       int
	flagConfigPath      string
)

var rootCmd = &cobra.Command{
	Use:   "logdeck",
	Short: "Stream and dig through Kubernetes container logs",
	Long: `logdeck tails the logs of every container whose pod name contains the
given query, multiplexes them into one live view, and can dig up recent
history across all targets on demand.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd)
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flagContext, "context", "", "kubeconfig context (default: current context)")
	f.StringVarP(&flagNamespace, "namespace", "n", "", "namespace (default: context namespace)")
	f.StringVarP(&flagPodQuery, "pod-query", "p", "", "substring to match against pod names")
	f.StringSliceVar(&flagContainerStates, "container-states", nil, "container states to tail (all, running, waiting, terminated)")
	f.IntVar(&flagLogTimeout, "log-retrieval-timeout", 0, "per-read timeout in milliseconds")
	f.IntVar(&flagRenderInterval, "render-interval", 0, "render tick interval in milliseconds")
	f.IntVarP(&flagQueueCapacity, "queue-capacity", "q", 0, "bounded line queue capacity")
	f.IntVar(&flagTailLines, "tail-lines", 0, "lines per target fetched in dig mode")
	f.StringVar(&flagConfigPath, "config", "", "config file path")
}

// buildConfig overlays explicit flags on the file config. Zero means the
// flag was not set; validation catches genuinely invalid values after.
func buildConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("context") {
		cfg.Context = flagContext
	}
	if cmd.Flags().Changed("namespace") {
		cfg.Namespace = flagNamespace
	}
	if cmd.Flags().Changed("pod-query") {
		cfg.PodQuery = flagPodQuery
	}
	if cmd.Flags().Changed("container-states") {
		cfg.ContainerStates = flagContainerStates
	}
	if cmd.Flags().Changed("log-retrieval-timeout") {
		cfg.LogRetrievalTimeoutMillis = flagLogTimeout
	}
	if cmd.Flags().Changed("render-interval") {
		cfg.RenderIntervalMillis = flagRenderInterval
	}
	if cmd.Flags().Changed("queue-capacity") {
		cfg.QueueCapacity = flagQueueCapacity
	}
	if cmd.Flags().Changed("tail-lines") {
		cfg.TailLines = flagTailLines
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	kubeContext, err := k8s.DetectContext(cfg.Context)
	if err != nil {
		return err
	}
	namespace, err := k8s.DetectNamespace(cfg.Namespace, kubeContext)
	if err != nil {
		return err
	}
	slog.Info("starting", "context", kubeContext, "namespace", namespace, "podQuery", cfg.PodQuery)

	client, err := k8s.NewClientGoClient(kubeContext)
	if err != nil {
		return err
	}

	matcher, err := target.NewStateMatcher(cfg.ContainerStates)
	if err != nil {
		return err
	}
	resolver := target.NewResolver(client, namespace, cfg.PodQuery, matcher)

	buf := queue.NewBuffer(cfg.QueueCapacity)
	supervisor := stream.NewSupervisor(client, resolver, buf, cfg.LogRetrievalTimeout())
	digger := dig.NewDigger(client, buf, int64(cfg.TailLines))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := supervisor.Start(ctx); err != nil {
		return fmt.Errorf("starting log streams: %w", err)
	}
	defer supervisor.Stop()

	var program *tea.Program
	controller := flow.NewController(buf, cfg.RenderInterval(), func(lines []queue.LogLine) {
		program.Send(ui.LinesMsg(lines))
	})

	model := ui.New(supervisor, controller, digger, buf, namespace, cfg.PodQuery)
	program = tea.NewProgram(model, tea.WithAltScreen())

	go controller.Run(ctx)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
