// Package market holds the generated protobuf messages and gRPC stubs of
// market.MarketService.
package market

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative market.proto
