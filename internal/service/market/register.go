package market

import (
	"google.golang.org/grpc"

	"github.com/oggyb/barter-match/internal/app"
	pb "github.com/oggyb/barter-match/internal/proto/market"
)

// Registrar ties the Market service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the Market service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the Market service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	pb.RegisterMarketServiceServer(s, NewMarketService(r.appCtx))
}
