package protocol

// ArgNumErrReply 表示命令参数数量错误
type ArgNumErrReply struct {
	Cmd string
}

func (r *ArgNumErrReply) ToBytes() []byte {
	return []byte("-ERR wrong number of arguments for '" + r.Cmd + "' command\r\n")
}

func (r *ArgNumErrReply) Error() string {
	return "ERR wrong number of arguments for '" + r.Cmd + "' command"
}

func NewArgNumErrReply(cmd string) *ArgNumErrReply {
	return &ArgNumErrReply{
		Cmd: cmd,
	}
}

// UnknownCommandErrReply 表示未知命令
type UnknownCommandErrReply struct {
	cmdName string
}

func (u *UnknownCommandErrReply) Error() string {
	return "ERR unknown command " + "'" + u.cmdName + "'"
}

func (u *UnknownCommandErrReply) ToBytes() []byte {
	return []byte("-ERR unknown command " + "'" + u.cmdName + "'\r\n")
}

func NewUnknownCommandErrReply(cmdName string) *UnknownCommandErrReply {
	return &UnknownCommandErrReply{cmdName: cmdName}
}

var (
	ErrorUnknownReply    = NewErrorReply("ERR unknown")
	ErrorSyntaxReply     = NewErrorReply("ERR syntax error")
	ErrorNotIntegerReply = NewErrorReply("ERR value is not an integer or out of range")
	ErrorListExistsReply = NewErrorReply("ERR list already exists")
)
