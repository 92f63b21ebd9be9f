package store

import (
	"bytes"
	"strings"
	"testing"
)

// exec 把一行命令切分成token后交给Store执行，返回响应字符串(去掉末尾CRLF)
func exec(s *Store, line string) string {
	tokens := bytes.Fields([]byte(line))
	reply := s.Exec(nil, tokens)
	return strings.TrimSuffix(string(reply.ToBytes()), "\r\n")
}

func TestCreateInsertPrint(t *testing.T) {
	s := NewStore()
	if resp := exec(s, "CREATE nums 4"); resp != "+OK" {
		t.Errorf("create: %s", resp)
	}
	if resp := exec(s, "CREATE nums 4"); resp != "-ERR list already exists" {
		t.Errorf("duplicate create: %s", resp)
	}
	exec(s, "INSERTE nums 5")
	exec(s, "INSERTE nums 10")
	exec(s, "INSERTE nums 15")
	if resp := exec(s, "LEN nums"); resp != ":3" {
		t.Errorf("len: %s", resp)
	}
	if resp := exec(s, "PRINT nums"); resp != "+5 -> 10 -> 15 -> NULL" {
		t.Errorf("print: %s", resp)
	}
}

func TestInsertFrontOrder(t *testing.T) {
	s := NewStore()
	exec(s, "CREATE l 4")
	exec(s, "INSERTF l a")
	exec(s, "INSERTF l b")
	exec(s, "INSERTF l c")
	if resp := exec(s, "PRINT l"); resp != "+c -> b -> a -> NULL" {
		t.Errorf("print: %s", resp)
	}
}

func TestIndexedOps(t *testing.T) {
	s := NewStore()
	exec(s, "CREATE nums 4")
	exec(s, "INSERTE nums 5")
	exec(s, "INSERTE nums 10")
	exec(s, "INSERTE nums 15")

	if resp := exec(s, "INSERTAT nums 3 20"); resp != ":1" {
		t.Errorf("insert at tail index: %s", resp)
	}
	if resp := exec(s, "INSERTAT nums 0 25"); resp != ":1" {
		t.Errorf("insert at head index: %s", resp)
	}
	if resp := exec(s, "PRINT nums"); resp != "+25 -> 5 -> 10 -> 15 -> 20 -> NULL" {
		t.Errorf("print after inserts: %s", resp)
	}

	if resp := exec(s, "REMOVEAT nums 2"); resp != ":1" {
		t.Errorf("remove at index: %s", resp)
	}
	if resp := exec(s, "PRINT nums"); resp != "+25 -> 5 -> 15 -> 20 -> NULL" {
		t.Errorf("print after remove: %s", resp)
	}
}

func TestOutOfBoundsIsNoOp(t *testing.T) {
	s := NewStore()
	exec(s, "CREATE nums 4")
	exec(s, "INSERTE nums 5")
	exec(s, "INSERTE nums 10")
	before := exec(s, "PRINT nums")

	if resp := exec(s, "INSERTAT nums 7 99"); resp != ":0" {
		t.Errorf("insert beyond length: %s", resp)
	}
	if resp := exec(s, "REMOVEAT nums 2"); resp != ":0" {
		t.Errorf("remove at length: %s", resp)
	}
	if after := exec(s, "PRINT nums"); after != before {
		t.Errorf("list changed by rejected ops: %s != %s", after, before)
	}
	if resp := exec(s, "LEN nums"); resp != ":2" {
		t.Errorf("len: %s", resp)
	}
}

func TestUnknownListIsNoOp(t *testing.T) {
	s := NewStore()
	if resp := exec(s, "INSERTE ghost x"); resp != ":0" {
		t.Errorf("insert into unknown list: %s", resp)
	}
	if resp := exec(s, "REMOVEF ghost"); resp != ":0" {
		t.Errorf("remove from unknown list: %s", resp)
	}
	if resp := exec(s, "LEN ghost"); resp != ":0" {
		t.Errorf("len of unknown list: %s", resp)
	}
	if resp := exec(s, "PRINT ghost"); resp != "+NULL" {
		t.Errorf("print of unknown list: %s", resp)
	}
}

func TestEmptyListOps(t *testing.T) {
	s := NewStore()
	exec(s, "CREATE l 8")
	if resp := exec(s, "REMOVEF l"); resp != ":0" {
		t.Errorf("removef on empty: %s", resp)
	}
	if resp := exec(s, "REMOVEE l"); resp != ":0" {
		t.Errorf("removee on empty: %s", resp)
	}
	if resp := exec(s, "REMOVEAT l 0"); resp != ":0" {
		t.Errorf("removeat on empty: %s", resp)
	}
	if resp := exec(s, "PRINT l"); resp != "+NULL" {
		t.Errorf("print on empty: %s", resp)
	}
}

func TestDrop(t *testing.T) {
	s := NewStore()
	exec(s, "CREATE l 4")
	exec(s, "INSERTE l a")
	if resp := exec(s, "DROP l"); resp != ":1" {
		t.Errorf("drop: %s", resp)
	}
	if resp := exec(s, "EXISTS l"); resp != ":0" {
		t.Errorf("exists after drop: %s", resp)
	}
	if resp := exec(s, "DROP l"); resp != ":0" {
		t.Errorf("double drop: %s", resp)
	}
}

func TestRange(t *testing.T) {
	s := NewStore()
	exec(s, "CREATE nums 4")
	for _, v := range []string{"a", "b", "c", "d", "e"} {
		exec(s, "INSERTE nums "+v)
	}
	if resp := exec(s, "RANGE nums 1 3"); resp != "*3\r\nb\r\nc\r\nd" {
		t.Errorf("range 1 3: %q", resp)
	}
	if resp := exec(s, "RANGE nums 0 -1"); resp != "*5\r\na\r\nb\r\nc\r\nd\r\ne" {
		t.Errorf("range 0 -1: %q", resp)
	}
	if resp := exec(s, "RANGE nums 2 100"); resp != "*3\r\nc\r\nd\r\ne" {
		t.Errorf("range past end: %q", resp)
	}
	if resp := exec(s, "RANGE nums 9 10"); resp != "*0" {
		t.Errorf("range beyond length: %q", resp)
	}
}

func TestArityAndSyntax(t *testing.T) {
	s := NewStore()
	if resp := exec(s, "CREATE nums"); resp != "-ERR wrong number of arguments for 'create' command" {
		t.Errorf("missing arg: %s", resp)
	}
	if resp := exec(s, "CREATE nums four"); resp != "-ERR value is not an integer or out of range" {
		t.Errorf("bad size: %s", resp)
	}
	if resp := exec(s, "NOSUCH x"); resp != "-ERR unknown command 'nosuch'" {
		t.Errorf("unknown command: %s", resp)
	}
}

func TestKeys(t *testing.T) {
	s := NewStore()
	exec(s, "CREATE nums 4")
	exec(s, "CREATE words 8")
	if resp := exec(s, "KEYS n*"); resp != "*1\r\nnums" {
		t.Errorf("keys: %q", resp)
	}
	if resp := exec(s, "KEYS zzz*"); resp != "*0" {
		t.Errorf("keys no match: %q", resp)
	}
}

func TestPing(t *testing.T) {
	s := NewStore()
	if resp := exec(s, "PING"); resp != "+PONG" {
		t.Errorf("ping: %s", resp)
	}
	if resp := exec(s, "PING hello"); resp != "+hello" {
		t.Errorf("ping with message: %s", resp)
	}
}
