package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/younwookim/starship/internal/application/launcher"
	"github.com/younwookim/starship/internal/infrastructure/config"
	"github.com/younwookim/starship/internal/infrastructure/terminal"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = ".ssh/launch_host_key"
)

func main() {
	host := config.GetEnv("LAUNCH_SSH_HOST", defaultHost)
	port := config.GetEnv("LAUNCH_SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("LAUNCH_SSH_HOST_KEY", defaultHostKeyPath)

	cfg, err := config.Default().LoadLaunch()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("SSH config: host=%s port=%s hostKeyPath=%s", host, port, hostKeyPath)

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			launchMiddleware(cfg),
			activeterm.Middleware(),
			logging.Middleware(),
		),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	log.Printf("Starting SSH server on %s", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}

// launchMiddleware streams an independent launch animation to each session.
// There is no audio over SSH.
func launchMiddleware(cfg *config.LaunchConfig) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, _, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}
			wantW, wantH := cfg.Width+2, cfg.Height+terminal.ChromeRows
			if pty.Window.Width < wantW || pty.Window.Height < wantH {
				log.Printf("Small terminal for %s: %dx%d, frame is %dx%d",
					sess.User(), pty.Window.Width, pty.Window.Height, wantW, wantH)
			}

			ctx, cancel := context.WithCancel(sess.Context())
			defer cancel()
			terminal.WatchReader(ctx, sess, cancel)

			runner := launcher.New(cfg, rand.New(rand.NewSource(time.Now().UnixNano())), terminal.NewWriter(sess), nil)
			if err := runner.Run(ctx); err != nil {
				log.Printf("Launch error for %s: %v", sess.User(), err)
			} else if err := terminal.WriteFarewell(sess); err != nil {
				log.Printf("Failed to write farewell to %s: %v", sess.User(), err)
			}

			log.Printf("Session ended: user=%s", sess.User())
			next(sess)
		}
	}
}
