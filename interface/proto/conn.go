package proto

// Reply 表示服务端发给客户端的一条响应
type Reply interface {
	ToBytes() []byte
}

// Connection 表示zlist客户端的连接
type Connection interface {
	Write([]byte) (int, error)
	Close() error
	RemoteAddr() string

	SetExceedMaxClients(b bool)
	CheckExceedMaxClients() bool

	Name() string
}
