package player

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/interpretive-systems/reelium/internal/log"
	"github.com/rs/zerolog"
)

const (
	dialInterval = 50 * time.Millisecond
	quitTimeout  = 2 * time.Second
)

// MPV controls an mpv process over its JSON IPC socket. The process is
// started lazily on the first Load and reused for every later reel.
type MPV struct {
	path   string
	socket string
	log    zerolog.Logger

	mu     sync.Mutex
	cmd    *exec.Cmd
	exited chan struct{}
	conn   net.Conn
	reader *bufio.Reader
	nextID int64
}

type ipcRequest struct {
	Command   []any `json:"command"`
	RequestID int64 `json:"request_id"`
}

type ipcResponse struct {
	Event     string `json:"event"`
	Error     string `json:"error"`
	RequestID int64  `json:"request_id"`
}

// NewMPV prepares a client for the mpv executable at path.
func NewMPV(path string) *MPV {
	return &MPV{
		path:   path,
		socket: filepath.Join(os.TempDir(), "reelium-"+uuid.NewString()+".sock"),
		log:    log.WithComponent("player"),
	}
}

// LookPath resolves the mpv executable, returning ErrNotRunning when it
// cannot be found.
func LookPath(path string) (string, error) {
	p, err := exec.LookPath(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotRunning, err)
	}
	return p, nil
}

func (m *MPV) Load(ctx context.Context, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ensure(ctx); err != nil {
		return err
	}
	if err := m.command(ctx, "loadfile", url, "replace"); err != nil {
		return err
	}
	return m.command(ctx, "set_property", "pause", false)
}

func (m *MPV) SetPaused(ctx context.Context, paused bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conn == nil {
		return ErrNotRunning
	}
	return m.command(ctx, "set_property", "pause", paused)
}

func (m *MPV) SetMuted(ctx context.Context, muted bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conn == nil {
		return ErrNotRunning
	}
	return m.command(ctx, "set_property", "mute", muted)
}

func (m *MPV) Stop(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conn == nil {
		return nil
	}
	return m.command(ctx, "stop")
}

func (m *MPV) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conn != nil {
		ctx, cancel := context.WithTimeout(context.Background(), quitTimeout)
		if err := m.command(ctx, "quit"); err != nil {
			m.log.Debug().Err(err).Msg("quit command failed")
		}
		cancel()
		m.dropConn()
	}
	if m.cmd != nil {
		select {
		case <-m.exited:
		case <-time.After(quitTimeout):
			_ = m.cmd.Process.Kill()
			<-m.exited
		}
		m.cmd = nil
	}
	_ = os.Remove(m.socket)
	return nil
}

// ensure starts mpv and connects to its socket. Caller holds m.mu.
func (m *MPV) ensure(ctx context.Context) error {
	if m.conn != nil {
		return nil
	}
	if m.cmd == nil {
		cmd := exec.Command(m.path,
			"--idle=yes",
			"--force-window=no",
			"--keep-open=no",
			"--no-terminal",
			"--input-ipc-server="+m.socket,
		)
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("%w: start %s: %v", ErrNotRunning, m.path, err)
		}
		exited := make(chan struct{})
		go func() {
			_ = cmd.Wait()
			close(exited)
		}()
		m.cmd, m.exited = cmd, exited
		m.log.Info().Int("pid", cmd.Process.Pid).Str("socket", m.socket).Msg("mpv started")
	}

	for {
		conn, err := net.Dial("unix", m.socket)
		if err == nil {
			m.attach(conn)
			return nil
		}
		select {
		case <-m.exited:
			m.cmd = nil
			return fmt.Errorf("%w: mpv exited before accepting ipc", ErrNotRunning)
		case <-ctx.Done():
			return fmt.Errorf("%w: dial ipc: %v", ErrNotRunning, ctx.Err())
		case <-time.After(dialInterval):
		}
	}
}

func (m *MPV) attach(conn net.Conn) {
	m.conn = conn
	m.reader = bufio.NewReader(conn)
}

func (m *MPV) dropConn() {
	if m.conn != nil {
		_ = m.conn.Close()
	}
	m.conn, m.reader = nil, nil
}

// command sends one IPC request and waits for its reply, skipping
// asynchronous event lines. Caller holds m.mu.
func (m *MPV) command(ctx context.Context, args ...any) error {
	m.nextID++
	id := m.nextID
	payload, err := json.Marshal(ipcRequest{Command: args, RequestID: id})
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrIPC, err)
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Time{}
	}
	_ = m.conn.SetDeadline(deadline)

	if _, err := m.conn.Write(append(payload, '\n')); err != nil {
		m.dropConn()
		return fmt.Errorf("%w: write: %v", ErrIPC, err)
	}
	for {
		line, err := m.reader.ReadBytes('\n')
		if err != nil {
			m.dropConn()
			return fmt.Errorf("%w: read: %v", ErrIPC, err)
		}
		var resp ipcResponse
		if json.Unmarshal(line, &resp) != nil {
			continue
		}
		if resp.Event != "" || resp.RequestID != id {
			continue
		}
		if resp.Error != "success" {
			return fmt.Errorf("%w: %v: %s", ErrIPC, args[0], resp.Error)
		}
		return nil
	}
}
