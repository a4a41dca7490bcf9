package dispatcher

import (
	"bufio"
	"context"
	"log/slog"
	"net"
	"strconv"
	"time"

	"nmea-svr/internal/assemblerstore"
	"nmea-svr/internal/grpcclient"
	"nmea-svr/internal/link"
	"nmea-svr/internal/observability"
	"nmea-svr/internal/utilities"
	"nmea-svr/nmeadecode"
)

// Dispatcher reads newline-delimited NMEA sentences off a connection,
// decodes each with a connection-scoped Assembler and forwards the
// result downstream.
type Dispatcher struct {
	fwd    *grpcclient.GRPCClient
	logger *slog.Logger
}

func New(fwd *grpcclient.GRPCClient, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{fwd: fwd, logger: logger}
}

// HandleConnection owns conn for its whole lifetime: reads sentences,
// decodes, forwards, and closes conn when the peer disconnects.
func (d *Dispatcher) HandleConnection(conn net.Conn) {
	defer conn.Close()

	sourceID := conn.RemoteAddr().String()
	ip, port := splitRemoteAddr(conn)
	link.SendSourceConnect(link.SourceInfo{
		SourceID:   sourceID,
		RemoteIP:   ip,
		RemotePort: port,
		State:      link.ConnectionStateConnect,
	})
	defer link.SendSourceDisconnect(sourceID)

	asm := nmeadecode.NewAssembler()
	if snap, ok := assemblerstore.LoadFragments(sourceID); ok {
		asm.Restore(snap)
	}

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		utilities.CreateLog("RAWNMEA", line)
		d.processLine(sourceID, line, asm)
	}
	if err := scanner.Err(); err != nil {
		d.logger.Warn("dispatcher: read error", "source", sourceID, "err", err)
	}

	assemblerstore.SaveFragments(sourceID, asm.Snapshot())
	d.logger.Info("dispatcher: connection closed", "source", sourceID)
}

func (d *Dispatcher) processLine(sourceID, line string, asm *nmeadecode.Assembler) {
	start := time.Now()
	msg, err := nmeadecode.Parse(line, asm)
	observability.ObserveParseLatency(start)

	if err != nil {
		observability.ParseErrors.Inc()
		if de, ok := err.(*nmeadecode.DecodeError); ok {
			observability.DecodeErrors.WithLabelValues(de.Code.String()).Inc()
		}
		d.logger.Warn("dispatcher: decode failed", "source", sourceID, "sentence", line, "err", err)
		return
	}

	switch m := msg.(type) {
	case nmeadecode.Incomplete:
		observability.FragmentsPending.Set(float64(asm.Pending()))
		return
	case nmeadecode.Unsupported:
		d.logger.Debug("dispatcher: unsupported sentence", "source", sourceID, "kind", m.SentenceOrType)
		return
	case *nmeadecode.VesselStaticData:
		if m.Part24 != "" {
			assemblerstore.SaveStaticPart(m.MMSI, m)
		}
	}

	observability.SentencesTotal.WithLabelValues(msg.Kind().String()).Inc()

	if err := d.fwd.SendDecoded(context.Background(), sourceID, msg); err != nil {
		d.logger.Warn("dispatcher: forward failed", "source", sourceID, "err", err)
	}
	link.SendDecoded(sourceID, msg)
}

func splitRemoteAddr(conn net.Conn) (ip string, port int) {
	host, portStr, err := net.SplitHostPort(conn.RemoteAddr().String())
	if err != nil {
		return conn.RemoteAddr().String(), 0
	}
	port, _ = strconv.Atoi(portStr)
	return host, port
}
