package store

import (
	"fmt"
	"time"
	"zlist/config"
	"zlist/datastruct/sllist"
	"zlist/interface/proto"
	"zlist/lib/wildcard"
	"zlist/protocol"
)

// PingCommand 探活命令
// PING [message]
// 不带参数返回PONG，带参数原样返回message
func PingCommand(s *Store, args [][]byte) proto.Reply {
	if len(args) == 0 {
		return protocol.PongReplyConst
	}
	return protocol.NewSingleReply(string(args[0]))
}

// KeysCommand 返回pattern匹配的所有链表名，pattern为通配符
// KEYS pattern
func KeysCommand(s *Store, args [][]byte) proto.Reply {
	pattern, err := wildcard.CompilePattern(string(args[0]))
	if err != nil {
		return protocol.NewErrorReply("ERR pattern is not a valid expression")
	}
	names := make([][]byte, 0)
	s.ForEach(func(name string, l *sllist.SLList) bool {
		if pattern.IsMatch(name) {
			names = append(names, []byte(name))
		}
		return true
	})
	return protocol.NewMultiLineReply(names)
}

// InfoCommand 返回服务运行信息
// INFO
func InfoCommand(s *Store, args [][]byte) proto.Reply {
	uptime := int64(time.Since(config.EachTimeServerInfo.StartUpTime).Seconds())
	lines := [][]byte{
		[]byte(fmt.Sprintf("run_id:%s", config.Config.RunId)),
		[]byte(fmt.Sprintf("uptime_in_seconds:%d", uptime)),
		[]byte(fmt.Sprintf("lists:%d", s.Count())),
	}
	return protocol.NewMultiLineReply(lines)
}

func init() {
	registerCommand("ping", PingCommand, -1, tagRead)
	registerCommand("keys", KeysCommand, 2, tagRead)
	registerCommand("info", InfoCommand, 1, tagRead)
}
