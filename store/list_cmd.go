package store

import (
	"bytes"
	"strings"
	"zlist/datastruct/sllist"
	"zlist/interface/proto"
	"zlist/protocol"

	"github.com/duke-git/lancet/v2/mathutil"
	"github.com/duke-git/lancet/v2/strutil"
)

// 单个元素在PRINT响应中最多显示的字符数
const maxDisplayLen = 64

// trimPayload 去掉payload尾部的补0字节
func trimPayload(payload []byte) []byte {
	return bytes.TrimRight(payload, "\x00")
}

// displayElement PRINT命令使用的display回调，超长内容截断
func displayElement(payload []byte) string {
	text := string(trimPayload(payload))
	if len(text) > maxDisplayLen {
		text = strutil.Substring(text, 0, maxDisplayLen) + "..."
	}
	return text + " -> "
}

// CreateCommand 新建一个链表，elemSize为每个元素占用的字节数
// CREATE name elemSize
// name已存在，返回错误
// elemSize不是整数，返回错误；elemSize为0或负数时按0处理，节点payload为空
func CreateCommand(s *Store, args [][]byte) proto.Reply {
	name := string(args[0])
	size, err := parseInt(args[1])
	if err != nil {
		return protocol.ErrorNotIntegerReply
	}
	if s.getList(name) != nil {
		return protocol.ErrorListExistsReply
	}
	s.putList(name, sllist.New(size))
	return protocol.OKReplyConst
}

// DropCommand 销毁链表，释放所有节点后移除
// DROP name
// name不存在，返回0
func DropCommand(s *Store, args [][]byte) proto.Reply {
	name := string(args[0])
	l := s.getList(name)
	if l == nil {
		return protocol.ZeroReplyConst
	}
	l.Clear()
	s.removeList(name)
	return protocol.OneReplyConst
}

// InsertFCommand 在表头插入元素
// INSERTF name value
// name不存在，不执行任何操作，返回0
func InsertFCommand(s *Store, args [][]byte) proto.Reply {
	l := s.getList(string(args[0]))
	if l == nil {
		return protocol.ZeroReplyConst
	}
	return protocol.NewIntReply(int64(l.InsertFirst(args[1])))
}

// InsertECommand 在表尾插入元素
// INSERTE name value
// name不存在，不执行任何操作，返回0
func InsertECommand(s *Store, args [][]byte) proto.Reply {
	l := s.getList(string(args[0]))
	if l == nil {
		return protocol.ZeroReplyConst
	}
	return protocol.NewIntReply(int64(l.InsertLast(args[1])))
}

// InsertAtCommand 在指定位置插入元素，index从0开始
// INSERTAT name index value
// index等于当前长度时等价于INSERTE
// index大于当前长度时不插入，返回0，不做截断处理
func InsertAtCommand(s *Store, args [][]byte) proto.Reply {
	index, err := parseInt(args[1])
	if err != nil {
		return protocol.ErrorNotIntegerReply
	}
	l := s.getList(string(args[0]))
	if l == nil {
		return protocol.ZeroReplyConst
	}
	return protocol.NewIntReply(int64(l.Insert(index, args[2])))
}

// RemoveFCommand 移除表头元素
// REMOVEF name
// name不存在或链表为空，返回0
func RemoveFCommand(s *Store, args [][]byte) proto.Reply {
	l := s.getList(string(args[0]))
	if l == nil {
		return protocol.ZeroReplyConst
	}
	return protocol.NewIntReply(int64(l.RemoveFirst()))
}

// RemoveECommand 移除表尾元素
// REMOVEE name
// name不存在或链表为空，返回0
func RemoveECommand(s *Store, args [][]byte) proto.Reply {
	l := s.getList(string(args[0]))
	if l == nil {
		return protocol.ZeroReplyConst
	}
	return protocol.NewIntReply(int64(l.RemoveLast()))
}

// RemoveAtCommand 移除指定位置元素，index从0开始
// REMOVEAT name index
// index处没有节点时不移除，返回0
func RemoveAtCommand(s *Store, args [][]byte) proto.Reply {
	index, err := parseInt(args[1])
	if err != nil {
		return protocol.ErrorNotIntegerReply
	}
	l := s.getList(string(args[0]))
	if l == nil {
		return protocol.ZeroReplyConst
	}
	return protocol.NewIntReply(int64(l.Remove(index)))
}

// LenCommand 返回链表长度
// LEN name
// name不存在返回0
func LenCommand(s *Store, args [][]byte) proto.Reply {
	l := s.getList(string(args[0]))
	return protocol.NewIntReply(int64(l.Length()))
}

// ExistsCommand 判断链表是否存在
// EXISTS name
func ExistsCommand(s *Store, args [][]byte) proto.Reply {
	if s.getList(string(args[0])) == nil {
		return protocol.ZeroReplyConst
	}
	return protocol.OneReplyConst
}

// RangeCommand 返回索引区间内的元素
// RANGE name start stop
// 索引可为负数，-1表示最后一个元素
// start和stop都包括，索引越界不报错
// 如果start大于链表长度，返回空结果；stop大于长度时认为到末尾结束
func RangeCommand(s *Store, args [][]byte) proto.Reply {
	start, err := parseInt(args[1])
	if err != nil {
		return protocol.ErrorNotIntegerReply
	}
	end, err := parseInt(args[2])
	if err != nil {
		return protocol.ErrorNotIntegerReply
	}

	l := s.getList(string(args[0]))
	length := l.Length()
	if length == 0 {
		return protocol.EmptyMultiLineReplyConst
	}

	if start < 0 {
		start = length + start
		if start < 0 {
			start = 0
		}
	}
	if end < 0 {
		end = length + end
		if end < 0 {
			end = 0
		}
	}

	end = mathutil.Min(length-1, end)
	if start > length-1 || start > end {
		return protocol.EmptyMultiLineReplyConst
	}

	res := make([][]byte, 0)
	l.ForEach(func(index int, payload []byte) bool {
		if index > end {
			return false
		}
		if index >= start {
			res = append(res, trimPayload(payload))
		}
		return true
	})
	return protocol.NewMultiLineReply(res)
}

// PrintCommand 打印遍历整个链表
// PRINT name
// 每个元素后输出" -> "，最后输出结束标记NULL
// name不存在或链表为空时只输出NULL
func PrintCommand(s *Store, args [][]byte) proto.Reply {
	l := s.getList(string(args[0]))
	sb := strings.Builder{}
	l.PrintTo(&sb, displayElement)
	return protocol.NewSingleReply(sb.String())
}

func init() {
	registerCommand("create", CreateCommand, 3, tagWrite)
	registerCommand("drop", DropCommand, 2, tagWrite)
	registerCommand("insertf", InsertFCommand, 3, tagWrite)
	registerCommand("inserte", InsertECommand, 3, tagWrite)
	registerCommand("insertat", InsertAtCommand, 4, tagWrite)
	registerCommand("removef", RemoveFCommand, 2, tagWrite)
	registerCommand("removee", RemoveECommand, 2, tagWrite)
	registerCommand("removeat", RemoveAtCommand, 3, tagWrite)
	registerCommand("len", LenCommand, 2, tagRead)
	registerCommand("exists", ExistsCommand, 2, tagRead)
	registerCommand("range", RangeCommand, 4, tagRead)
	registerCommand("print", PrintCommand, 2, tagRead)
}
