package main

import (
	"bufio"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"net"
	"os"

	"golang.org/x/crypto/ssh"

	"github.com/evansm7/mevcli"
)

func loadOrGenHostKey(path string) (ssh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		block, _ := pem.Decode(data)
		if block != nil {
			if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
				return ssh.NewSignerFromKey(key)
			}
		}
	}
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return nil, err
	}
	pem.Encode(f, &pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}) //nolint:errcheck
	f.Close()
	logEvent("INFO", path, "generated new host key")
	return ssh.NewSignerFromKey(key)
}

func makeSSHConfig(signer ssh.Signer) *ssh.ServerConfig {
	// Any credentials get in; the attempt itself is what gets recorded.
	cfg := &ssh.ServerConfig{
		PasswordCallback: func(conn ssh.ConnMetadata, password []byte) (*ssh.Permissions, error) {
			logEvent("AUTH", conn.RemoteAddr().String(),
				fmt.Sprintf("user=%s password=%q", conn.User(), password))
			return &ssh.Permissions{}, nil
		},
		PublicKeyCallback: func(conn ssh.ConnMetadata, key ssh.PublicKey) (*ssh.Permissions, error) {
			logEvent("AUTH", conn.RemoteAddr().String(),
				"user="+conn.User()+" pubkey="+ssh.FingerprintSHA256(key))
			return &ssh.Permissions{}, nil
		},
	}
	cfg.AddHostKey(signer)
	return cfg
}

func runServer(cfg serverConfig) error {
	signer, err := loadOrGenHostKey(cfg.HostKeyFile)
	if err != nil {
		return err
	}
	sshCfg := makeSSHConfig(signer)

	ln, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return err
	}
	logEvent("INFO", cfg.Listen, "listening")

	return acceptLoop(ln, sshCfg, cfg)
}

// acceptLoop hands each connection to its own goroutine, at most
// cfg.MaxConns at a time. Connections over the limit are closed
// immediately rather than left queued in the listen backlog.
func acceptLoop(ln net.Listener, sshCfg *ssh.ServerConfig, cfg serverConfig) error {
	sem := make(chan struct{}, cfg.MaxConns)
	for {
		conn, err := ln.Accept()
		if err != nil {
			return err
		}
		select {
		case sem <- struct{}{}:
			go func() {
				defer func() { <-sem }()
				handleConn(conn, sshCfg, cfg)
			}()
		default:
			logEvent("REJECT", conn.RemoteAddr().String(), "connection limit reached")
			conn.Close()
		}
	}
}

func handleConn(conn net.Conn, sshCfg *ssh.ServerConfig, cfg serverConfig) {
	defer conn.Close()

	sshConn, chans, reqs, err := ssh.NewServerConn(conn, sshCfg)
	if err != nil {
		return
	}
	defer sshConn.Close()
	go ssh.DiscardRequests(reqs)

	ip := sshConn.RemoteAddr().String()
	logEvent("CONNECT", ip, "user="+sshConn.User())

	slog, err := newSessionLogger(cfg.LogDir, ip)
	if err != nil {
		logEvent("ERROR", ip, "session log: "+err.Error())
		return
	}
	defer slog.close()

	for newChan := range chans {
		if newChan.ChannelType() != "session" {
			newChan.Reject(ssh.UnknownChannelType, "unknown channel type") //nolint:errcheck
			continue
		}
		ch, chReqs, err := newChan.Accept()
		if err != nil {
			break
		}
		handleSession(ch, chReqs, ip, slog, cfg)
	}
	logEvent("DISCONNECT", ip, "")
}

func handleSession(ch ssh.Channel, reqs <-chan *ssh.Request, ip string, slog *sessionLogger, cfg serverConfig) {
	defer ch.Close()

	for req := range reqs {
		switch req.Type {
		case "pty-req", "env", "window-change":
			req.Reply(true, nil) //nolint:errcheck
		case "shell":
			req.Reply(true, nil) //nolint:errcheck
			runCLI(ch, ip, slog, cfg)
			return
		default:
			req.Reply(false, nil) //nolint:errcheck
		}
	}
}

// runCLI feeds channel bytes into an engine session one at a time. The
// engine's output callback goes through a buffered writer that is
// flushed once per input byte, so each keystroke's repaint leaves in a
// single channel write. The session ends on the logout command or when
// the channel reaches EOF; control bytes the engine does not bind are
// passed through and ignored there.
func runCLI(ch ssh.Channel, ip string, slog *sessionLogger, cfg serverConfig) {
	done := false
	prompt := cfg.Prompt
	w := bufio.NewWriter(ch)

	sess := mevcli.New(mevcli.Config{
		Prompt:         func() string { return prompt },
		HistoryBytes:   cfg.HistoryBytes,
		HistoryEntries: cfg.HistoryEntries,
		ExtraHelp:      cliExtraHelp,
	}, cliCommands(w, slog, &prompt, &done, cfg.Prompt), mevcli.OutputTo(w))
	w.Flush() //nolint:errcheck

	buf := make([]byte, 1)
	for !done {
		n, err := ch.Read(buf)
		if err != nil {
			break // EOF: client closed the stream, same as logout
		}
		if n == 0 {
			continue
		}
		sess.InputByte(buf[0])
		w.Flush() //nolint:errcheck
	}

	w.WriteString("logout\r\n") //nolint:errcheck
	w.Flush()                   //nolint:errcheck
	logEvent("LOGOUT", ip, "")
}
