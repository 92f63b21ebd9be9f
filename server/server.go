package server

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"zlist/config"
	"zlist/connection"
	"zlist/logger"
	"zlist/store"
)

// Handler 实现了tcp.Handler，作为zlist的服务处理器
// 每个连接一个goroutine，逐行读取命令并交给store执行
type Handler struct {
	activeConn sync.Map
	clients    atomic.Int32
	store      *store.Store
	closing    atomic.Bool
}

func NewHandler() *Handler {
	return &Handler{
		store: store.NewStore(),
	}
}

func (h *Handler) closeClient(client *connection.Connection) {
	_ = client.Close()
	h.activeConn.Delete(client)
	h.clients.Add(-1)
}

func (h *Handler) Close() error {
	logger.Info("handler is shutting down...")
	h.closing.Store(true)
	h.activeConn.Range(func(key, value any) bool {
		client := key.(*connection.Connection)
		_ = client.Close()
		return true
	})
	return nil
}

// Handle 接收和执行zlist命令，连接关闭或读取出错时退出
func (h *Handler) Handle(ctx context.Context, conn net.Conn) {
	if h.closing.Load() {
		_ = conn.Close()
		return
	}

	client := connection.NewConnection(conn)
	h.activeConn.Store(client, struct{}{})

	// 检查是否超出最大客户端数量
	max := config.Config.MaxClients
	if n := h.clients.Add(1); max > 0 && int(n) > max {
		client.SetExceedMaxClients(true)
	}

	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				logger.Warn(err)
			}
			h.closeClient(client)
			logger.Info("connection closed: " + client.RemoteAddr())
			return
		}

		tokens := bytes.Fields([]byte(strings.TrimSpace(line)))
		if len(tokens) == 0 {
			continue
		}
		logger.Infof("cmd: %s", strings.TrimSpace(line))

		reply := h.store.Exec(client, tokens)
		if _, err := client.Write(reply.ToBytes()); err != nil {
			h.closeClient(client)
			logger.Info("connection closed: " + client.RemoteAddr())
			return
		}
	}
}
