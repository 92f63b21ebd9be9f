package main

import (
	"bufio"
	"net"
	"testing"
	"time"
	"zlist/server"
	"zlist/tcp"
)

func sendLine(t *testing.T, conn net.Conn, reader *bufio.Reader, cmd string) string {
	t.Helper()
	if _, err := conn.Write([]byte(cmd + "\r\n")); err != nil {
		t.Fatal(err)
	}
	line, _, err := reader.ReadLine()
	if err != nil {
		t.Fatal(err)
	}
	return string(line)
}

func TestServer(t *testing.T) {
	closeChan := make(chan struct{})
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Error(err)
		return
	}
	addr := listener.Addr().String()
	go tcp.ListenAndServe(listener, server.NewHandler(), closeChan)

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Error(err)
		return
	}
	reader := bufio.NewReader(conn)

	if resp := sendLine(t, conn, reader, "PING"); resp != "+PONG" {
		t.Errorf("ping response: %s", resp)
	}
	if resp := sendLine(t, conn, reader, "CREATE nums 4"); resp != "+OK" {
		t.Errorf("create response: %s", resp)
	}
	sendLine(t, conn, reader, "INSERTE nums 5")
	sendLine(t, conn, reader, "INSERTE nums 10")
	sendLine(t, conn, reader, "INSERTE nums 15")
	if resp := sendLine(t, conn, reader, "INSERTAT nums 3 20"); resp != ":1" {
		t.Errorf("insertat response: %s", resp)
	}
	if resp := sendLine(t, conn, reader, "INSERTAT nums 0 25"); resp != ":1" {
		t.Errorf("insertat response: %s", resp)
	}
	if resp := sendLine(t, conn, reader, "LEN nums"); resp != ":5" {
		t.Errorf("len response: %s", resp)
	}
	if resp := sendLine(t, conn, reader, "PRINT nums"); resp != "+25 -> 5 -> 10 -> 15 -> 20 -> NULL" {
		t.Errorf("print response: %s", resp)
	}
	if resp := sendLine(t, conn, reader, "REMOVEAT nums 2"); resp != ":1" {
		t.Errorf("removeat response: %s", resp)
	}
	if resp := sendLine(t, conn, reader, "PRINT nums"); resp != "+25 -> 5 -> 15 -> 20 -> NULL" {
		t.Errorf("print response: %s", resp)
	}
	if resp := sendLine(t, conn, reader, "DROP nums"); resp != ":1" {
		t.Errorf("drop response: %s", resp)
	}
	if resp := sendLine(t, conn, reader, "NOSUCH cmd"); resp != "-ERR unknown command 'nosuch'" {
		t.Errorf("unknown command response: %s", resp)
	}

	closeChan <- struct{}{}
	time.Sleep(time.Second)
}
