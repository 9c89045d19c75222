// Package supervise starts and stops the local helper services that
// accompany a bookmark collection, such as the site server or anything
// else declared in configuration.
package supervise

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/exec"
	"strconv"
	"syscall"
	"time"
)

const (
	portProbeTimeout = time.Second
	stopGracePeriod  = 5 * time.Second
)

// Service declares one managed process.
type Service struct {
	Name string   `yaml:"name"`
	Cmd  []string `yaml:"cmd"`
	Dir  string   `yaml:"dir"`
	Env  []string `yaml:"env"`

	// Port is probed for readiness after start and for liveness in
	// Status. Zero means the service exposes no port and only process
	// liveness is tracked.
	Port int `yaml:"port"`

	// StartupTimeout bounds the wait for the port to open.
	StartupTimeout time.Duration `yaml:"startup_timeout"`
}

// Validate checks that the service declaration is runnable.
func (s Service) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("service name is required")
	}
	if len(s.Cmd) == 0 {
		return fmt.Errorf("service %s has no command", s.Name)
	}
	if s.Port < 0 || s.Port > 65535 {
		return fmt.Errorf("service %s has invalid port %d", s.Name, s.Port)
	}
	return nil
}

// Status describes one service at a point in time.
type Status struct {
	Name    string `json:"name"`
	Port    int    `json:"port,omitempty"`
	Running bool   `json:"running"`
	PID     int    `json:"pid,omitempty"`
}

type process struct {
	cmd  *exec.Cmd
	done chan struct{}
}

// Manager runs a fixed set of services in declaration order and stops
// them in reverse.
type Manager struct {
	services []Service
	procs    map[string]*process
	logger   *slog.Logger

	// dial is swappable so tests can fake port probes.
	dial func(addr string, timeout time.Duration) error
}

// NewManager creates a Manager for the given services.
func NewManager(services []Service, logger *slog.Logger) (*Manager, error) {
	for _, svc := range services {
		if err := svc.Validate(); err != nil {
			return nil, err
		}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		services: services,
		procs:    map[string]*process{},
		logger:   logger,
		dial: func(addr string, timeout time.Duration) error {
			conn, err := net.DialTimeout("tcp", addr, timeout)
			if err != nil {
				return err
			}
			return conn.Close()
		},
	}, nil
}

// StartAll starts every service in order, waiting for each to become
// ready before moving on. The first failure stops everything already
// started and is returned.
func (m *Manager) StartAll(ctx context.Context) error {
	for _, svc := range m.services {
		if err := m.Start(ctx, svc.Name); err != nil {
			m.StopAll()
			return err
		}
	}
	return nil
}

// Start launches one service by name and waits for readiness.
func (m *Manager) Start(ctx context.Context, name string) error {
	svc, ok := m.lookup(name)
	if !ok {
		return fmt.Errorf("unknown service %s", name)
	}
	if m.running(name) {
		m.logger.Warn("service already running", slog.String("service", name))
		return nil
	}
	if svc.Port != 0 && m.portOpen(svc.Port) {
		return fmt.Errorf("port %d for service %s is already in use", svc.Port, name)
	}

	cmd := exec.CommandContext(ctx, svc.Cmd[0], svc.Cmd[1:]...)
	cmd.Dir = svc.Dir
	cmd.Env = append(os.Environ(), svc.Env...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	// Cancellation sends SIGTERM first; SIGKILL stays a last resort.
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = stopGracePeriod

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start service %s: %w", name, err)
	}

	proc := &process{cmd: cmd, done: make(chan struct{})}
	m.procs[name] = proc
	go func() {
		defer close(proc.done)
		if err := cmd.Wait(); err != nil {
			m.logger.Warn("service exited",
				slog.String("service", name),
				slog.String("error", err.Error()))
		}
	}()

	m.logger.Info("service started",
		slog.String("service", name),
		slog.Int("pid", cmd.Process.Pid))

	if svc.Port != 0 {
		if err := m.awaitPort(ctx, svc, proc); err != nil {
			m.stop(name)
			return err
		}
		m.logger.Info("service ready",
			slog.String("service", name),
			slog.Int("port", svc.Port))
	}
	return nil
}

// awaitPort polls the service port until it opens, the process dies, or
// the startup timeout elapses.
func (m *Manager) awaitPort(ctx context.Context, svc Service, proc *process) error {
	timeout := svc.StartupTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if m.portOpen(svc.Port) {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-proc.done:
			return fmt.Errorf("service %s exited before opening port %d", svc.Name, svc.Port)
		case <-time.After(250 * time.Millisecond):
		}
	}
	return fmt.Errorf("service %s did not open port %d within %s", svc.Name, svc.Port, timeout)
}

// Stop terminates one service, escalating from SIGTERM to SIGKILL after
// the grace period.
func (m *Manager) Stop(name string) error {
	if _, ok := m.lookup(name); !ok {
		return fmt.Errorf("unknown service %s", name)
	}
	m.stop(name)
	return nil
}

// StopAll stops every running service in reverse declaration order.
func (m *Manager) StopAll() {
	for i := len(m.services) - 1; i >= 0; i-- {
		m.stop(m.services[i].Name)
	}
}

func (m *Manager) stop(name string) {
	proc, ok := m.procs[name]
	if !ok {
		return
	}
	delete(m.procs, name)

	select {
	case <-proc.done:
		return
	default:
	}

	m.logger.Info("stopping service", slog.String("service", name))
	if err := proc.cmd.Process.Signal(syscall.SIGTERM); err != nil {
		return
	}
	select {
	case <-proc.done:
	case <-time.After(stopGracePeriod):
		m.logger.Warn("service ignored SIGTERM, killing", slog.String("service", name))
		proc.cmd.Process.Kill()
		<-proc.done
	}
}

// StatusAll reports every declared service in order.
func (m *Manager) StatusAll() []Status {
	statuses := make([]Status, 0, len(m.services))
	for _, svc := range m.services {
		status := Status{Name: svc.Name, Port: svc.Port}
		if proc, ok := m.procs[svc.Name]; ok && m.running(svc.Name) {
			status.Running = true
			status.PID = proc.cmd.Process.Pid
		} else if svc.Port != 0 && m.portOpen(svc.Port) {
			// Something not started by us is listening. Report it
			// running without claiming the PID.
			status.Running = true
		}
		statuses = append(statuses, status)
	}
	return statuses
}

func (m *Manager) lookup(name string) (Service, bool) {
	for _, svc := range m.services {
		if svc.Name == name {
			return svc, true
		}
	}
	return Service{}, false
}

func (m *Manager) running(name string) bool {
	proc, ok := m.procs[name]
	if !ok {
		return false
	}
	select {
	case <-proc.done:
		return false
	default:
		return true
	}
}

func (m *Manager) portOpen(port int) bool {
	return m.dial(net.JoinHostPort("localhost", strconv.Itoa(port)), portProbeTimeout) == nil
}
