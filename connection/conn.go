package connection

import (
	"net"
	"sync"
	"time"
	"zlist/lib/sync/wait"
)

// Connection 表示与zlist客户端的一个连接
type Connection struct {
	conn net.Conn

	// 等待直到发送完数据，用于连接的优雅关闭
	sendingData wait.Wait

	// 服务端发送响应时的锁
	mu sync.Mutex

	// 表示是否超出最大连接数，如果是，该字段被置为true，无法执行任何命令
	exceedMaxClients bool
}

func NewConnection(conn net.Conn) *Connection {
	return &Connection{conn: conn}
}

func (c *Connection) Write(bytes []byte) (int, error) {
	if len(bytes) == 0 {
		return 0, nil
	}
	c.sendingData.Add(1)
	defer c.sendingData.Done()
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.conn.Write(bytes)
}

func (c *Connection) Close() error {
	c.sendingData.WaitWithTimeout(10 * time.Second)
	_ = c.conn.Close()
	return nil
}

func (c *Connection) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}

func (c *Connection) SetExceedMaxClients(b bool) {
	c.exceedMaxClients = b
}

func (c *Connection) CheckExceedMaxClients() bool {
	return c.exceedMaxClients
}

func (c *Connection) Name() string {
	if c.conn != nil {
		return c.conn.RemoteAddr().String()
	}
	return ""
}
