package link

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"nmea-svr/nmeadecode"
)

// Configuración del link
var (
	proxyAddr string
	logger    *slog.Logger

	mu   sync.Mutex
	conn net.Conn
)

// Init arranca el cliente TCP hacia socket-tcp-proxy.
// Si addr == "", deja el link deshabilitado.
func Init(addr string, lg *slog.Logger) {
	proxyAddr = addr
	if proxyAddr == "" {
		lg.Info("link: disabled (no proxy address configured)")
		return
	}
	logger = lg.With("component", "link")

	go connectLoop()
}

// -------------------------------------------------------------------
//                        LOOP DE CONEXIÓN
// -------------------------------------------------------------------

func connectLoop() {
	for {
		c, err := net.Dial("tcp", proxyAddr)
		if err != nil {
			if logger != nil {
				logger.Error("link: dial failed", "addr", proxyAddr, "err", err)
			}
			time.Sleep(5 * time.Second)
			continue
		}

		setConn(c)
		if logger != nil {
			logger.Info("link: connected", "remote", c.RemoteAddr().String())
		}

		// leer en este hilo hasta que se caiga
		readLoop(c)

		clearConn(c)
		if logger != nil {
			logger.Warn("link: connection closed, reconnecting...")
		}
		time.Sleep(2 * time.Second)
	}
}

func setConn(c net.Conn) {
	mu.Lock()
	defer mu.Unlock()
	conn = c
}

func clearConn(c net.Conn) {
	mu.Lock()
	defer mu.Unlock()
	if conn == c {
		_ = conn.Close()
		conn = nil
	}
}

func getConn() net.Conn {
	mu.Lock()
	defer mu.Unlock()
	return conn
}

// -------------------------------------------------------------------
//                           LECTURA
// -------------------------------------------------------------------

func readLoop(c net.Conn) {
	r := bufio.NewScanner(c)
	for r.Scan() {
		line := r.Bytes()
		handleIncomingLine(line)
	}
	if err := r.Err(); err != nil && err != io.EOF {
		if logger != nil {
			logger.Warn("link: read error", "err", err)
		}
	}
}

// Por ahora sólo logueamos lo que llega del proxy.
// Más adelante aquí puedes rutear comandos hacia dispatcher / server.
func handleIncomingLine(line []byte) {
	if logger != nil {
		logger.Info("link: incoming line", "line", string(line))
	}
}

// -------------------------------------------------------------------
//                          ENVÍO NDJSON
// -------------------------------------------------------------------

func sendNDJSON(v interface{}) error {
	c := getConn()
	if c == nil {
		return fmt.Errorf("link: not connected")
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = c.Write(append(b, '\n'))
	return err
}

// -------------------------------------------------------------------
//          PAYLOADS DE ALTO NIVEL HACIA EL PROXY (NDJSON)
// -------------------------------------------------------------------

// source_connect
type sourceConnectPayload struct {
	SourceConnect bool   `json:"source_connect"`
	SourceID      string `json:"source_id"`
	RemoteIP      string `json:"remote_ip,omitempty"`
	RemotePort    int    `json:"remote_port,omitempty"`
}

// source_disconnect
type sourceDisconnectPayload struct {
	SourceDisconnect bool   `json:"source_disconnect"`
	SourceID         string `json:"source_id"`
}

// decoded (el mensaje ya decodificado, en su forma JSON nativa)
type decodedPayload struct {
	SourceID string                   `json:"source_id"`
	Kind     string                   `json:"kind"`
	Message  nmeadecode.ParsedMessage `json:"message"`
}

// -------------------------------------------------------------------
//                 FUNCIONES PÚBLICAS PARA EL RESTO
// -------------------------------------------------------------------

// SendSourceConnect se llama cuando se acepta una nueva conexión TCP entrante.
func SendSourceConnect(info SourceInfo) {
	if proxyAddr == "" {
		return
	}
	pl := sourceConnectPayload{
		SourceConnect: true,
		SourceID:      info.SourceID,
		RemoteIP:      info.RemoteIP,
		RemotePort:    info.RemotePort,
	}
	if err := sendNDJSON(pl); err != nil && logger != nil {
		logger.Warn("link: send source_connect failed", "source", info.SourceID, "err", err)
	}
}

// SendSourceDisconnect se llama cuando la conexión se cierra.
func SendSourceDisconnect(sourceID string) {
	if proxyAddr == "" {
		return
	}
	pl := sourceDisconnectPayload{SourceDisconnect: true, SourceID: sourceID}
	if err := sendNDJSON(pl); err != nil && logger != nil {
		logger.Warn("link: send source_disconnect failed", "source", sourceID, "err", err)
	}
}

// SendDecoded envía un mensaje ya decodificado como NDJSON.
func SendDecoded(sourceID string, msg nmeadecode.ParsedMessage) {
	if proxyAddr == "" || msg == nil {
		return
	}
	pl := decodedPayload{SourceID: sourceID, Kind: msg.Kind().String(), Message: msg}
	if err := sendNDJSON(pl); err != nil && logger != nil {
		logger.Warn("link: send decoded failed", "source", sourceID, "err", err)
	}
}
