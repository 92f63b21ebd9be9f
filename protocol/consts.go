package protocol

/* ---- okReply ---- */

var okBytes = []byte("+OK\r\n")

type okReply struct{}

func (r *okReply) ToBytes() []byte {
	return okBytes
}

/* ---- pongReply ---- */

type pongReply struct{}

var pongBytes = []byte("+PONG\r\n")

func (r *pongReply) ToBytes() []byte {
	return pongBytes
}

/* ---- zeroReply / oneReply ---- */

type zeroReply struct{}

var zeroBytes = []byte(":0\r\n")

func (r *zeroReply) ToBytes() []byte {
	return zeroBytes
}

type oneReply struct{}

var oneBytes = []byte(":1\r\n")

func (r *oneReply) ToBytes() []byte {
	return oneBytes
}

/* ---- emptyMultiLineReply ---- */

type emptyMultiLineReply struct{}

var emptyMultiLineBytes = []byte("*0\r\n")

func (r *emptyMultiLineReply) ToBytes() []byte {
	return emptyMultiLineBytes
}

var (
	OKReplyConst             = &okReply{}
	PongReplyConst           = &pongReply{}
	ZeroReplyConst           = &zeroReply{}
	OneReplyConst            = &oneReply{}
	EmptyMultiLineReplyConst = &emptyMultiLineReply{}
)
