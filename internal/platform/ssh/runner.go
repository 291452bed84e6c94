package ssh

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"golang.org/x/crypto/ssh"

	"github.com/skiffhq/skiff/internal/errdefs"
)

const (
	sshPort     = "22"
	dialTimeout = 10 * time.Second
)

// Runner executes commands on one remote server over SSH.
type Runner struct {
	host       string
	user       string
	privateKey []byte
}

// NewRunner creates a runner for host using the given credentials.
func NewRunner(host, user string, privateKey []byte) *Runner {
	return &Runner{host: host, user: user, privateKey: privateKey}
}

// Exec runs command on the remote server and returns its combined output.
// A command that ran but exited non-zero fails with a CommandError carrying
// the exit code and captured output.
func (r *Runner) Exec(ctx context.Context, command string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	signer, err := ssh.ParsePrivateKey(r.privateKey)
	if err != nil {
		return "", &errdefs.ConfigError{Reason: "failed to parse private key", Err: err}
	}

	config := &ssh.ClientConfig{
		User:            r.user,
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), // #nosec G106 -- servers are freshly provisioned, no known_hosts entry exists
		Timeout:         dialTimeout,
	}

	client, err := ssh.Dial("tcp", r.addr(), config)
	if err != nil {
		return "", fmt.Errorf("failed to dial %s: %w", r.host, err)
	}
	defer client.Close()

	session, err := client.NewSession()
	if err != nil {
		return "", fmt.Errorf("failed to open session: %w", err)
	}
	defer session.Close()

	output, err := session.CombinedOutput(command)
	if err != nil {
		var exitErr *ssh.ExitError
		if errors.As(err, &exitErr) {
			return string(output), &errdefs.CommandError{
				Command:  command,
				ExitCode: exitErr.ExitStatus(),
				Output:   string(output),
			}
		}
		return string(output), fmt.Errorf("remote command failed: %w", err)
	}
	return string(output), nil
}

// addr forms the dial address, bracketing IPv6 hosts.
func (r *Runner) addr() string {
	return net.JoinHostPort(r.host, sshPort)
}

// Logs tails the logs of one deployment through the server-local kubectl.
func (r *Runner) Logs(ctx context.Context, deployment string, tail int) (string, error) {
	return r.Exec(ctx, fmt.Sprintf("k3s kubectl logs deployment/%s --tail=%d", deployment, tail))
}
