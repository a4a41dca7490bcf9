package server

import (
	"fmt"
	"log"
	"net"
	"time"
)

// Start runs the TCP accept loop. handler is invoked in its own goroutine
// for every accepted connection and owns that connection's lifetime,
// including closing it.
func Start(addr string, handler func(net.Conn)) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("error starting TCP server: %w", err)
	}
	defer listener.Close()

	log.Printf("[INFO] TCP Server listening on %s", addr)

	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Printf("[ERROR] accept error: %v", err)
			continue
		}

		if tcpConn, ok := conn.(*net.TCPConn); ok {
			_ = tcpConn.SetLinger(0)
			_ = tcpConn.SetNoDelay(false)
			_ = tcpConn.SetKeepAlive(true)
			_ = tcpConn.SetKeepAlivePeriod(60 * time.Second)
		}

		if handler != nil {
			go handler(conn)
		} else {
			conn.Close()
		}
	}
}
