// api/proto/generate.go

// Package proto holds the service definitions. Generated Go code lands
// under each version's generated/ directory.
package proto

//go:generate protoc --proto_path=. --go_out=module=github.com/daybook-app/daybook/api/proto:. --go-grpc_out=module=github.com/daybook-app/daybook/api/proto:. task/v1/task.proto
