package protocol

import (
	"bytes"
	"strconv"
)

var (
	CRLF = "\r\n" // zlist文本协议的行分隔符
)

/*
zlist使用面向行的文本协议：

客户端请求为一行，以空白分隔的token组成，第一个token是命令名，例如：
  CREATE nums 4
  INSERTE nums 15

服务端响应有四种类型，以首字节区分：
1. 单行字符串(Single)：首字节为 +，例如 +OK
2. 错误(Error)：首字节为 -，例如 -ERR unknown command
3. 整型(Int)：首字节为 :，例如 :4
4. 多行(MultiLine)：首字节为 *，后跟行数的十进制数，然后每行一个元素，例如KEYS命令的响应：
   *2\r\nnums\r\nwords\r\n

所有响应部分都以CRLF="\r\n"结束
*/

/* ---- 单行字符串 ---- */

// SingleReply 表示单行字符串响应
type SingleReply struct {
	text string
}

func (r *SingleReply) ToBytes() []byte {
	return []byte("+" + r.text + CRLF)
}

func NewSingleReply(text string) *SingleReply {
	return &SingleReply{text: text}
}

/* ---- 错误 ---- */

type ErrorReply interface {
	Error() string
	ToBytes() []byte
}

type StandardErrorReply struct {
	text string
}

func (r *StandardErrorReply) Error() string {
	return r.text
}

func (r *StandardErrorReply) ToBytes() []byte {
	return []byte("-" + r.text + CRLF)
}

func NewErrorReply(text string) *StandardErrorReply {
	return &StandardErrorReply{text: text}
}

/* ---- 整型 ---- */

type IntReply struct {
	number int64
}

func (r *IntReply) ToBytes() []byte {
	return []byte(":" + strconv.FormatInt(r.number, 10) + CRLF)
}

func NewIntReply(number int64) *IntReply {
	return &IntReply{number: number}
}

/* ---- 多行 ---- */

// MultiLineReply 表示多行响应，每行一个元素
type MultiLineReply struct {
	Lines [][]byte
}

func (r *MultiLineReply) ToBytes() []byte {
	var buf bytes.Buffer
	buf.WriteString("*" + strconv.Itoa(len(r.Lines)) + CRLF)
	for _, line := range r.Lines {
		buf.Write(line)
		buf.WriteString(CRLF)
	}
	return buf.Bytes()
}

func NewMultiLineReply(lines [][]byte) *MultiLineReply {
	return &MultiLineReply{Lines: lines}
}
