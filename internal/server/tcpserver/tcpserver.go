package tcpserver

import (
	"bufio"
	"io"
	"log/slog"
	"net"
	"strings"
	"time"

	rate "github.com/wallstreetcn/rate/redis"

	"github.com/tombowditch/passgen-serv/internal/secret"
	"github.com/tombowditch/passgen-serv/passgen"
)

// Server handles the netcat-friendly TCP interface: one optional request
// line in, one password out.
type Server struct{}

// New creates a new TCP server.
func New() *Server {
	return &Server{}
}

// Serve starts listening on the given address and handles connections.
// This function blocks until the listener fails.
func (s *Server) Serve(addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer l.Close()

	slog.Info("tcp server listening", "addr", addr)

	for {
		conn, err := l.Accept()
		if err != nil {
			slog.Error("error accepting connection", "error", err)
			continue
		}
		go s.handleRequest(conn)
	}
}

func (s *Server) handleRequest(conn net.Conn) {
	defer conn.Close()

	// Check rate limit before reading
	cip := strings.Split(conn.RemoteAddr().String(), ":")[0]
	limiter := rate.NewLimiter(rate.Every(time.Second), 2, "passgen_tcp_rl_"+cip)
	if !limiter.Allow() {
		slog.Warn("rate limit exceeded", "ip", cip)
		conn.Write([]byte("rate limit exceeded (2 requests per second)\r\n"))
		return
	}

	conn.SetReadDeadline(time.Now().Add(time.Second * 5))

	// One request line: "[length] [charset]". A bare connect (EOF or
	// timeout with nothing sent) selects the defaults.
	line, err := bufio.NewReaderSize(conn, 256).ReadString('\n')
	if err != nil && err != io.EOF {
		if netErr, ok := err.(net.Error); !ok || !netErr.Timeout() {
			slog.Error("read error", "error", err, "ip", cip)
			conn.Write([]byte("read err\r\n"))
			return
		}
	}

	req, err := secret.ParseLine(line)
	if err != nil {
		msg := err.Error()
		if ve, ok := err.(*secret.ValidationError); ok {
			msg = ve.Message
		}
		conn.Write([]byte(msg + "\r\n"))
		return
	}

	pw, err := passgen.Generate(req.Alphabet, req.Length)
	if err != nil {
		slog.Error("password generation failed", "error", err, "length", req.Length)
		conn.Write([]byte("error\r\n"))
		return
	}

	slog.Info("generated password via TCP", "length", req.Length, "remote", cip)
	conn.Write([]byte(pw + "\r\n"))
}
