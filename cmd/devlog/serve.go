// FILE: lixenwraith/devlog/cmd/devlog/serve.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/panjf2000/gnet/v2"
	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/devlog"
	"github.com/lixenwraith/devlog/compat"
)

var (
	serveTCPAddr  string
	serveHTTPAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a gnet echo server and a fasthttp server logging through devlog",
	Long: `Runs a gnet TCP echo server and a fasthttp server side by side. Both
engines log through compat adapters; request handlers log through the
same devlog logger. Stops on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveTCPAddr, "tcp", "tcp://127.0.0.1:9000", "gnet echo server address")
	serveCmd.Flags().StringVar(&serveHTTPAddr, "http", "127.0.0.1:8080", "fasthttp listen address")
}

// echoServer echoes every inbound packet and logs its size
type echoServer struct {
	gnet.BuiltinEventEngine
	logger *devlog.Logger
	engine chan gnet.Engine
}

func (es *echoServer) OnBoot(eng gnet.Engine) gnet.Action {
	es.engine <- eng
	return gnet.None
}

func (es *echoServer) OnOpen(c gnet.Conn) ([]byte, gnet.Action) {
	es.logger.Debug("connection opened", c.RemoteAddr().String())
	return nil, gnet.None
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, err := c.Next(-1)
	if err != nil {
		es.logger.WithError(err).Error("read failed")
		return gnet.Close
	}
	es.logger.Verbose("echo", len(buf), "bytes")
	if _, err := c.Write(buf); err != nil {
		es.logger.WithError(err).Error("write failed")
		return gnet.Close
	}
	return gnet.None
}

// httpHandler answers with the request path and logs the request
type httpHandler struct {
	logger *devlog.Logger
}

func (h *httpHandler) serve(ctx *fasthttp.RequestCtx) {
	h.logger.Info(string(ctx.Method()), string(ctx.Path()))
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "devlog: %s\n", ctx.Path())
}

// fasthttpLevel maps fasthttp's own messages before keyword detection
func fasthttpLevel(msg string) (devlog.Severity, bool) {
	if strings.Contains(msg, "connection cannot be served") {
		return devlog.SeverityWarn, true
	}
	if strings.Contains(msg, "error when serving connection") {
		return devlog.SeverityError, true
	}
	return compat.DetectLogLevel(msg)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Shutdown(5 * time.Second)

	adapters := compat.NewBuilder().WithLogger(logger)
	gnetLogger, err := adapters.BuildStructuredGnet()
	if err != nil {
		return err
	}
	httpLogger, err := adapters.BuildFastHTTP(compat.WithLevelDetector(fasthttpLevel))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	echo := &echoServer{logger: logger, engine: make(chan gnet.Engine, 1)}
	server := &fasthttp.Server{
		Handler:      (&httpHandler{logger: logger}).serve,
		Logger:       httpLogger,
		Name:         "devlog",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return gnet.Run(echo, serveTCPAddr, gnet.WithMulticore(true), gnet.WithLogger(gnetLogger))
	})
	g.Go(func() error {
		return server.ListenAndServe(serveHTTPAddr)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Tag("Serve").Info("stopping")

		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var stopErr error
		select {
		case eng := <-echo.engine:
			stopErr = eng.Stop(stopCtx)
		default:
		}
		if err := server.ShutdownWithContext(stopCtx); err != nil && stopErr == nil {
			stopErr = err
		}
		return stopErr
	})

	logger.Tag("Serve").Info("listening", serveTCPAddr, serveHTTPAddr)
	if err := g.Wait(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
