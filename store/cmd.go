package store

import (
	"strings"
	"zlist/interface/proto"
)

var cmdTable = make(map[string]*command)

const (
	tagWrite = 1 << iota
	tagRead
)

// ExecFunc 命令处理函数，args为去掉命令名的参数
type ExecFunc func(s *Store, args [][]byte) proto.Reply

type command struct {
	name     string
	executor ExecFunc

	// 表示命令参数数量限制(包括命令名)，如果arity < 0，则表示参数数量大于等于-arity
	// 例如 len命令 arity为2; ping命令 arity为-1
	arity int
	tags  int
}

// registerCommand 注册一个命令
func registerCommand(name string, executor ExecFunc, arity, tags int) *command {
	name = strings.ToLower(name)
	cmd := &command{
		name:     name,
		executor: executor,
		arity:    arity,
		tags:     tags,
	}
	cmdTable[name] = cmd
	return cmd
}

// validateArity 校验参数数量，argNum包括命令名
func validateArity(arity int, argNum int) bool {
	if arity >= 0 {
		return argNum == arity
	}
	return argNum >= -arity
}
