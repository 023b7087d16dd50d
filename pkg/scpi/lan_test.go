package scpi

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// startServer runs handler on the first accepted connection and returns a
// config pointing at the listener.
func startServer(t *testing.T, handler func(conn net.Conn)) Config {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		handler(conn)
	}()

	return Config{
		Kind:    KindLAN,
		Address: "127.0.0.1",
		Port:    ln.Addr().(*net.TCPAddr).Port,
		Timeout: 2 * time.Second,
	}
}

func TestLANIdentification(t *testing.T) {
	cfg := startServer(t, func(conn net.Conn) {
		r := bufio.NewReader(conn)
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		if line != "*IDN?\r\n" {
			return
		}
		conn.Write([]byte("ACME,BOSA400,001,1.0\r\n"))
	})

	tr, err := DialLAN(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("DialLAN() error = %v", err)
	}
	defer tr.Close()

	if err := tr.Send("*IDN?"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	got, err := tr.ReceiveLine(context.Background())
	if err != nil {
		t.Fatalf("ReceiveLine() error = %v", err)
	}
	if got != "ACME,BOSA400,001,1.0\r\n" {
		t.Errorf("ReceiveLine() = %q, want %q", got, "ACME,BOSA400,001,1.0\r\n")
	}
}

func TestLANReceiveLineFragmented(t *testing.T) {
	fragments := []string{"ACME,BO", "SA400,001", ",1.0\r\n"}
	cfg := startServer(t, func(conn net.Conn) {
		for _, f := range fragments {
			conn.Write([]byte(f))
			time.Sleep(20 * time.Millisecond)
		}
	})

	tr, err := DialLAN(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("DialLAN() error = %v", err)
	}
	defer tr.Close()

	got, err := tr.ReceiveLine(context.Background())
	if err != nil {
		t.Fatalf("ReceiveLine() error = %v", err)
	}
	if got != "ACME,BOSA400,001,1.0\r\n" {
		t.Errorf("ReceiveLine() = %q, want the full accumulation", got)
	}
}

func TestLANReceiveExactFragmented(t *testing.T) {
	// 5 points, 80 bytes, delivered as 30+30+20.
	payload := make([]byte, 80)
	for i := range payload {
		payload[i] = byte(i)
	}
	cfg := startServer(t, func(conn net.Conn) {
		for _, bounds := range [][2]int{{0, 30}, {30, 60}, {60, 80}} {
			conn.Write(payload[bounds[0]:bounds[1]])
			time.Sleep(20 * time.Millisecond)
		}
	})

	tr, err := DialLAN(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("DialLAN() error = %v", err)
	}
	defer tr.Close()

	got, err := tr.ReceiveExact(context.Background(), 80)
	if err != nil {
		t.Fatalf("ReceiveExact() error = %v", err)
	}
	if len(got) != 80 {
		t.Fatalf("ReceiveExact() returned %d bytes, want 80", len(got))
	}
	for i := range got {
		if got[i] != payload[i] {
			t.Fatalf("byte %d = %#x, want %#x", i, got[i], payload[i])
		}
	}
}

// recordingConn is a net.Conn that serves a fixed payload and records the
// buffer size handed to every Read call.
type recordingConn struct {
	payload   []byte
	readSizes []int
}

func (c *recordingConn) Read(p []byte) (int, error) {
	c.readSizes = append(c.readSizes, len(p))
	if len(c.payload) == 0 {
		return 0, io.EOF
	}
	n := copy(p, c.payload)
	c.payload = c.payload[n:]
	return n, nil
}

func (c *recordingConn) Write(p []byte) (int, error)      { return len(p), nil }
func (c *recordingConn) Close() error                     { return nil }
func (c *recordingConn) LocalAddr() net.Addr              { return nil }
func (c *recordingConn) RemoteAddr() net.Addr             { return nil }
func (c *recordingConn) SetDeadline(time.Time) error      { return nil }
func (c *recordingConn) SetReadDeadline(time.Time) error  { return nil }
func (c *recordingConn) SetWriteDeadline(time.Time) error { return nil }

func TestLANReceiveExactChunkCap(t *testing.T) {
	// Payload larger than maxChunkSize: every underlying read must be
	// bounded to maxChunkSize and the concatenation must be byte-exact.
	payload := make([]byte, 40000)
	for i := range payload {
		payload[i] = byte(i % 251)
	}
	conn := &recordingConn{payload: append([]byte(nil), payload...)}
	tr := &LANTransport{conn: conn, timeout: time.Second, log: zerolog.Nop()}

	got, err := tr.ReceiveExact(context.Background(), len(payload))
	if err != nil {
		t.Fatalf("ReceiveExact() error = %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatal("ReceiveExact() payload does not match the source bytes")
	}
	if len(conn.readSizes) < 3 {
		t.Fatalf("got %d reads, want at least 3 for %d bytes", len(conn.readSizes), len(payload))
	}
	for i, size := range conn.readSizes {
		if size > maxChunkSize {
			t.Errorf("read %d asked for %d bytes, cap is %d", i, size, maxChunkSize)
		}
	}
}

func TestLANReceiveExactShortClose(t *testing.T) {
	cfg := startServer(t, func(conn net.Conn) {
		conn.Write(make([]byte, 40))
	})

	tr, err := DialLAN(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("DialLAN() error = %v", err)
	}
	defer tr.Close()

	_, err = tr.ReceiveExact(context.Background(), 80)
	if !errors.Is(err, ErrRead) {
		t.Errorf("ReceiveExact() error = %v, want ErrRead", err)
	}
}

func TestLANReceiveLineCancelled(t *testing.T) {
	cfg := startServer(t, func(conn net.Conn) {
		// Never answer.
		time.Sleep(time.Second)
	})

	tr, err := DialLAN(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("DialLAN() error = %v", err)
	}
	defer tr.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = tr.ReceiveLine(ctx)
	if !errors.Is(err, ErrRead) {
		t.Errorf("ReceiveLine() error = %v, want ErrRead", err)
	}
}

func TestLANCloseIdempotent(t *testing.T) {
	cfg := startServer(t, func(conn net.Conn) {})

	tr, err := DialLAN(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("DialLAN() error = %v", err)
	}
	if err := tr.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if err := tr.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
	if err := tr.Send("*IDN?"); !errors.Is(err, ErrWrite) {
		t.Errorf("Send() after Close error = %v, want ErrWrite", err)
	}
}

func TestDialKindDispatch(t *testing.T) {
	cfg := startServer(t, func(conn net.Conn) {
		conn.Write([]byte("ACME,BOSA400,001,1.0\r\n"))
	})

	tr, err := Dial(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	if _, ok := tr.(*LANTransport); !ok {
		t.Fatalf("Dial() = %T, want *LANTransport", tr)
	}
	tr.Close()

	cfg.Kind = Kind("usb")
	if _, err := Dial(cfg, zerolog.Nop()); !errors.Is(err, ErrConnection) {
		t.Errorf("Dial() with unknown kind error = %v, want ErrConnection", err)
	}
}

func TestDialLANRefused(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	cfg := Config{Kind: KindLAN, Address: "127.0.0.1", Port: port, Timeout: time.Second}
	_, err = DialLAN(cfg, zerolog.Nop())
	if !errors.Is(err, ErrConnection) {
		t.Errorf("DialLAN() error = %v, want ErrConnection", err)
	}
}
