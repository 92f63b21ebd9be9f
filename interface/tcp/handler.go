package tcp

import (
	"context"
	"net"
)

// Handler 表示TCP连接的处理器，由具体服务实现
type Handler interface {
	Handle(ctx context.Context, conn net.Conn)
	Close() error
}
