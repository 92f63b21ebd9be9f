package store

import (
	"runtime/debug"
	"strings"
	"sync"
	"zlist/datastruct/sllist"
	"zlist/interface/proto"
	"zlist/logger"
	"zlist/protocol"
)

// Store 保存所有命名链表并执行用户命令
// 链表引擎本身不做并发保护，Store用一把读写锁串行化所有写命令
type Store struct {
	mu    sync.RWMutex
	lists map[string]*sllist.SLList
}

func NewStore() *Store {
	return &Store{
		lists: make(map[string]*sllist.SLList),
	}
}

// Exec 执行一条命令，cmdLine的第一个token是命令名
func (s *Store) Exec(c proto.Connection, cmdLine [][]byte) (res proto.Reply) {
	defer func() {
		if err := recover(); err != nil {
			logger.Errorf("error occurs: %v\n%s", err, string(debug.Stack()))
			res = protocol.ErrorUnknownReply
		}
	}()

	if c != nil && c.CheckExceedMaxClients() {
		return protocol.NewErrorReply("ERR max number of clients reached")
	}

	cmdName := strings.ToLower(string(cmdLine[0]))
	// 所有命令处理函数，传的都是去掉命令名称的cmdArgs
	cmdArgs := cmdLine[1:]

	cmd, ok := cmdTable[cmdName]
	if !ok {
		return protocol.NewUnknownCommandErrReply(cmdName)
	}
	if !validateArity(cmd.arity, len(cmdLine)) {
		return protocol.NewArgNumErrReply(cmdName)
	}

	if cmd.tags&tagWrite != 0 {
		s.mu.Lock()
		defer s.mu.Unlock()
	} else {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	return cmd.executor(s, cmdArgs)
}

/* ---- 数据访问方法，调用方需持有锁 ---- */

// getList 返回name对应的链表，不存在返回nil
func (s *Store) getList(name string) *sllist.SLList {
	return s.lists[name]
}

func (s *Store) putList(name string, l *sllist.SLList) {
	s.lists[name] = l
}

func (s *Store) removeList(name string) {
	delete(s.lists, name)
}

// ForEach 遍历所有链表，consumer返回false停止遍历
func (s *Store) ForEach(consumer func(name string, l *sllist.SLList) bool) {
	for name, l := range s.lists {
		if !consumer(name, l) {
			break
		}
	}
}

// Count 返回当前链表数量
func (s *Store) Count() int {
	return len(s.lists)
}
