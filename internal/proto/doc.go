// Package proto contains the protobuf definitions of the authentication
// service and the committed generated bindings.
//
// To regenerate after editing authentication.proto:
//
//	protoc --go_out=. --go_opt=paths=source_relative \
//	       --go-grpc_out=. --go-grpc_opt=paths=source_relative \
//	       internal/proto/authentication.proto
package proto
