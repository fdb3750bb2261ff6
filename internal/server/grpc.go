package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/go-cash-card/internal/config"
	myGRPC "github.com/MKhiriev/go-cash-card/internal/handler/grpc"
	"github.com/MKhiriev/go-cash-card/internal/logger"
	"github.com/MKhiriev/go-cash-card/internal/workers"

	"google.golang.org/grpc"
)

const healthProbeInterval = 10 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	// probes publish store health; probeCtx bounds them.
	probes    *workers.Workers
	probeCtx  context.Context
	stopProbe context.CancelFunc

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryServerInterceptor))
	handler.Register(server)

	probes := workers.NewWorkers(workers.NewTicker(healthProbeInterval, func(ctx context.Context) {
		handler.Probe(ctx)
	}))
	probeCtx, stopProbe := context.WithCancel(context.Background())

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		probes:          probes,
		probeCtx:        probeCtx,
		stopProbe:       stopProbe,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	go g.probes.Run(g.probeCtx)

	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server is listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.stopProbe()
	g.handler.Shutdown()
	g.server.GracefulStop()
}
